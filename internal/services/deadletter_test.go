package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kwizera-io/go-momo-etl/internal/common"
	"github.com/kwizera-io/go-momo-etl/internal/models"
	"github.com/kwizera-io/go-momo-etl/internal/services"
)

func TestDeadLetterSink_Append(t *testing.T) {
	rejection := models.NewRejection(models.StageNormalize, "<sms/>", "missing amount", common.ErrMissingAmount)

	t.Run("stores the rejection", func(t *testing.T) {
		helper := serviceTestHelper(t)
		defer helper.mockCtrl.Finish()

		helper.mockDeadLetterRepository.EXPECT().
			Append(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entry *models.DeadLetterEntry) (*models.DeadLetterEntry, error) {
				stored := *entry
				stored.ID = 42
				return &stored, nil
			})

		sink := services.NewDeadLetterSink(helper.mockDeadLetterRepository)
		entry := sink.Append(context.Background(), "BATCH-1", rejection)

		assert.Equal(t, int64(42), entry.ID)
		assert.Equal(t, "BATCH-1", entry.BatchID)
		assert.Equal(t, models.StageNormalize, entry.Stage)
		assert.Equal(t, "<sms/>", entry.RawPayload)
		assert.Contains(t, entry.Reason, "missing amount")
	})

	t.Run("store failure falls back to the buffer", func(t *testing.T) {
		helper := serviceTestHelper(t)
		defer helper.mockCtrl.Finish()

		helper.mockDeadLetterRepository.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil, assert.AnError)
		helper.mockDeadLetterRepository.EXPECT().
			ListByBatch(gomock.Any(), "BATCH-1", models.Stage("")).
			Return(nil, assert.AnError)

		sink := services.NewDeadLetterSink(helper.mockDeadLetterRepository)
		entry := sink.Append(context.Background(), "BATCH-1", rejection)
		assert.Equal(t, "BATCH-1", entry.BatchID)

		// the rejection stays observable for this run
		entries, err := sink.ListByBatch(context.Background(), "BATCH-1")
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, models.StageNormalize, entries[0].Stage)
	})
}

func TestDeadLetterSink_ListByBatch(t *testing.T) {
	helper := serviceTestHelper(t)
	defer helper.mockCtrl.Finish()

	stored := []models.DeadLetterEntry{
		{ID: 1, BatchID: "BATCH-1", Stage: models.StageExtract, Reason: "missing message body"},
		{ID: 2, BatchID: "BATCH-1", Stage: models.StageLoad, Reason: "failed to persist transaction"},
	}
	helper.mockDeadLetterRepository.EXPECT().
		ListByBatch(gomock.Any(), "BATCH-1", models.Stage("")).
		Return(stored, nil)

	sink := services.NewDeadLetterSink(helper.mockDeadLetterRepository)
	entries, err := sink.ListByBatch(context.Background(), "BATCH-1")
	require.NoError(t, err)
	assert.Equal(t, stored, entries)
}
