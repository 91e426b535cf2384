package models

// BatchResult is the summary emitted once per pipeline run. It is handed to
// the calling CLI and never persisted.
type BatchResult struct {
	BatchID   string `json:"batchId"`
	TotalSeen int    `json:"totalSeen"`
	Loaded    int    `json:"loaded"`
	Rejected  int    `json:"rejected"`
	// Duplicates counts records whose reference was already in the store:
	// neither loaded nor rejected, the no-op of an idempotent re-run.
	Duplicates     int     `json:"duplicates"`
	DeadLetterRefs []int64 `json:"deadLetterRefs"`
}
