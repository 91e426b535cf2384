package repositories

// query to dead_letters database
var (
	queryDeadLetterAppend = `
		INSERT INTO "dead_letters"(
			"batchId", "rawPayload", "stage", "reason", "createdAt"
		)
		VALUES(
			$1, $2, $3, $4, now()
		)
		RETURNING "id", "createdAt";
	`
)
