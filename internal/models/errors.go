package models

import "fmt"

// DocumentParseError means the input document is not processable at all.
// It is the only failure that aborts a whole batch.
type DocumentParseError struct {
	Err error
}

func (e *DocumentParseError) Error() string {
	return fmt.Sprintf("document is not parseable: %v", e.Err)
}

func (e *DocumentParseError) Unwrap() error { return e.Err }

// StageRejection is a per-record, non-fatal failure. The orchestrator routes
// every rejection to the dead-letter sink and moves on to the next record.
type StageRejection struct {
	Stage      Stage
	Reason     string
	RawPayload string
	Err        error
}

func (e *StageRejection) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("rejected at %s: %s: %v", e.Stage, e.Reason, e.Err)
	}
	return fmt.Sprintf("rejected at %s: %s", e.Stage, e.Reason)
}

func (e *StageRejection) Unwrap() error { return e.Err }

// FullReason is the triage string written to the dead-letter store.
func (e *StageRejection) FullReason() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func NewRejection(stage Stage, payload, reason string, cause error) *StageRejection {
	return &StageRejection{
		Stage:      stage,
		Reason:     reason,
		RawPayload: payload,
		Err:        cause,
	}
}
