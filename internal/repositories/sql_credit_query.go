package repositories

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/kasetpay/go-slip-topup/internal/models"
)

var (
	queryInsertCreditRecord = `
	INSERT INTO credit_record (
		"id",
		"userId",
		"provider",
		"amount",
		"transactionRef",
		"senderName",
		"receiverName",
		"referenceId",
		"slipTimestamp",
		"createdAt"
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	queryCreditRecordExists = `
	SELECT EXISTS (
		SELECT 1 FROM credit_record WHERE "transactionRef" = $1
	)`
)

var creditRecordColumns = []string{
	`"id"`,
	`"userId"`,
	`"provider"`,
	`"amount"`,
	`"transactionRef"`,
	`"senderName"`,
	`"receiverName"`,
	`"referenceId"`,
	`"slipTimestamp"`,
	`"createdAt"`,
}

func buildListCreditRecordsQuery(req models.ListCreditRecordsRequest) (sql string, args []interface{}, err error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	query := psql.
		Select(creditRecordColumns...).
		From("credit_record").
		OrderBy(`"createdAt" DESC`)

	if req.UserID != "" {
		query = query.Where(sq.Eq{`"userId"`: req.UserID})
	}

	if req.Limit > 0 {
		query = query.Limit(uint64(req.Limit))
	}

	if req.Offset > 0 {
		query = query.Offset(uint64(req.Offset))
	}

	return query.ToSql()
}
