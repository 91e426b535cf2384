package repositories

// query to transactions database
var (
	queryTransactionUpsert = `
		INSERT INTO "transactions"(
			"fee", "amount", "balance", "initialBalance",
			"senderUserId", "receiverUserId", "transactionDate",
			"categoryId", "reference", "createdAt"
		)
		VALUES(
			$1, $2, $3, $4, $5, $6, $7, $8, $9, now()
		)
		ON CONFLICT ("reference") DO NOTHING
		RETURNING "id";
	`

	queryTransactionGetByReference = `SELECT
		"id", "fee", "amount", "balance", "initialBalance",
		"senderUserId", "receiverUserId", "transactionDate",
		"categoryId", "reference", "createdAt"
	FROM "transactions"
	WHERE "reference" = $1;`

	queryTransactionCountAll = `SELECT COUNT(1) FROM "transactions";`
)
