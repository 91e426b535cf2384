package models

import "time"

// Stage identifies the pipeline stage a record was rejected at.
type Stage string

const (
	StageExtract    Stage = "extract"
	StageNormalize  Stage = "normalize"
	StageCategorize Stage = "categorize"
	StageLoad       Stage = "load"
)

// DeadLetterEntry is one rejected record, set aside with its original payload
// and failure reason. Entries are append only; the pipeline never mutates or
// deletes them.
type DeadLetterEntry struct {
	ID         int64     `json:"id"`
	BatchID    string    `json:"batchId"`
	RawPayload string    `json:"rawPayload"`
	Stage      Stage     `json:"stage"`
	Reason     string    `json:"reason"`
	Timestamp  time.Time `json:"timestamp"`
}
