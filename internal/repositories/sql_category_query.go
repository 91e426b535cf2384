package repositories

// query to transaction_categories database
var (
	queryCategoryGetByTypes = `SELECT
		"id", "transactionType", "paymentType"
	FROM "transaction_categories"
	WHERE "transactionType" = $1 AND "paymentType" = $2;`

	queryCategoryList = `SELECT "id", "transactionType", "paymentType" FROM "transaction_categories" ORDER BY "id" ASC;`

	queryCategoryUpsert = `
		INSERT INTO "transaction_categories"(
			"transactionType", "paymentType"
		)
		VALUES(
			$1, $2
		)
		ON CONFLICT ("transactionType", "paymentType")
			DO UPDATE SET "transactionType" = EXCLUDED."transactionType"
		RETURNING "id", "transactionType", "paymentType";
	`
)
