package repositories

var (
	queryGetUserBalance = `
	SELECT
		"userId",
		"balance",
		"updatedAt"
	FROM user_balance
	WHERE "userId" = $1`

	queryIncreaseUserBalance = `
	INSERT INTO user_balance ("userId", "balance", "updatedAt")
	VALUES ($1, $2, now())
	ON CONFLICT ("userId") DO UPDATE
	SET
		"balance" = user_balance."balance" + EXCLUDED."balance",
		"updatedAt" = now()`
)
