package repositories

// query to user database
var (
	queryUserGetByPhoneNumber = `SELECT
		"id", "fullName", "phoneNumber", "createdAt"
	FROM "user"
	WHERE "phoneNumber" = $1;`

	// The no-op DO UPDATE makes RETURNING yield the existing row on conflict,
	// which is what turns check-then-insert into one atomic lookup-or-create.
	queryUserLookupOrCreate = `
		INSERT INTO "user"(
			"fullName", "phoneNumber", "createdAt"
		)
		VALUES(
			$1, $2, now()
		)
		ON CONFLICT ("phoneNumber") DO UPDATE SET "phoneNumber" = EXCLUDED."phoneNumber"
		RETURNING "id", "fullName", "phoneNumber", "createdAt";
	`

	queryUserList = `SELECT "id", "fullName", "phoneNumber", "createdAt" FROM "user" ORDER BY "id" ASC;`
)
