package models

import (
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSMSElement_Normalize(t *testing.T) {
	t.Run("child elements win over attributes", func(t *testing.T) {
		var element SMSElement
		raw := `<sms address="ignored" body="ignored" date="0">
			<address>M-Money</address>
			<date>1715351451000</date>
			<body>You have received 2000 RWF.</body>
		</sms>`
		require.NoError(t, xml.Unmarshal([]byte(raw), &element))

		record := element.Normalize(raw)
		assert.Equal(t, "M-Money", record.Address)
		assert.Equal(t, "1715351451000", record.Date)
		assert.Equal(t, "You have received 2000 RWF.", record.Body)
		assert.Equal(t, raw, record.Payload)
	})

	t.Run("attributes fill in when elements are absent", func(t *testing.T) {
		var element SMSElement
		raw := `<sms address="M-Money" date="1715351451000" body="You have received 2000 RWF." readable_date="10 May 2024"/>`
		require.NoError(t, xml.Unmarshal([]byte(raw), &element))

		record := element.Normalize(raw)
		assert.Equal(t, "M-Money", record.Address)
		assert.Equal(t, "You have received 2000 RWF.", record.Body)
		assert.Equal(t, "10 May 2024", record.ReadableDate)
	})
}
