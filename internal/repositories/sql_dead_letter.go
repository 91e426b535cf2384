package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/kwizera-io/go-momo-etl/internal/models"
)

type DeadLetterRepository interface {
	Append(ctx context.Context, entry *models.DeadLetterEntry) (*models.DeadLetterEntry, error)
	ListByBatch(ctx context.Context, batchID string, stage models.Stage) ([]models.DeadLetterEntry, error)
}

type deadLetterRepository sqlRepo

var _ DeadLetterRepository = (*deadLetterRepository)(nil)

// Append implements DeadLetterRepository. Entries are append only; nothing in
// the pipeline updates or deletes them.
func (r *deadLetterRepository) Append(ctx context.Context, entry *models.DeadLetterEntry) (*models.DeadLetterEntry, error) {
	var err error

	db := r.r.extractTxWrite(ctx)

	result := *entry
	err = db.QueryRowContext(ctx, queryDeadLetterAppend,
		entry.BatchID,
		entry.RawPayload,
		entry.Stage,
		entry.Reason,
	).Scan(&result.ID, &result.Timestamp)
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// ListByBatch implements DeadLetterRepository. An empty stage returns every
// entry of the batch.
func (r *deadLetterRepository) ListByBatch(ctx context.Context, batchID string, stage models.Stage) ([]models.DeadLetterEntry, error) {
	db := r.r.extractTxRead(ctx)

	builder := sq.Select(`"id"`, `"batchId"`, `"rawPayload"`, `"stage"`, `"reason"`, `"createdAt"`).
		From(`"dead_letters"`).
		Where(sq.Eq{`"batchId"`: batchID}).
		OrderBy(`"id" ASC`).
		PlaceholderFormat(sq.Dollar)
	if stage != "" {
		builder = builder.Where(sq.Eq{`"stage"`: string(stage)})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.DeadLetterEntry
	for rows.Next() {
		var entry models.DeadLetterEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.BatchID,
			&entry.RawPayload,
			&entry.Stage,
			&entry.Reason,
			&entry.Timestamp,
		); err != nil {
			return nil, err
		}
		result = append(result, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
