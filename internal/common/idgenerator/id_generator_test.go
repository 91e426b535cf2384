package idgenerator_test

import (
	"regexp"
	"testing"

	"github.com/kwizera-io/go-momo-etl/internal/common/idgenerator"
	"github.com/stretchr/testify/assert"
)

func TestGenerateID(t *testing.T) {
	t.Run("created new id with prefix", func(t *testing.T) {
		generator := idgenerator.New()
		id := generator.Generate("BATCH")
		t.Log("id", id)
		assert.NotNil(t, id)
		assert.Regexp(t, regexp.MustCompile("BATCH"), id)
	})

	t.Run("created new id without prefix", func(t *testing.T) {
		generator := idgenerator.New()
		id := generator.Generate()
		assert.NotNil(t, id)
	})
}
