package query

import (
	"context"
)

const upsertCustomerRefreshNames = `-- name: UpsertCustomerRefreshNames :exec
INSERT INTO gestionale_customer (phone_number, first_name, last_name, numero_prenotazioni)
VALUES ($1, $2, $3, 1)
ON CONFLICT (phone_number) DO UPDATE SET
    first_name = EXCLUDED.first_name,
    last_name = EXCLUDED.last_name,
    numero_prenotazioni = gestionale_customer.numero_prenotazioni + 1
`

func (q *Queries) UpsertCustomerRefreshNames(ctx context.Context, db DBTX, arg UpsertCustomerParams) error {
	_, err := db.Exec(ctx, upsertCustomerRefreshNames, arg.PhoneNumber, arg.FirstName, arg.LastName)
	return err
}

const upsertCustomerKeepNames = `-- name: UpsertCustomerKeepNames :exec
INSERT INTO gestionale_customer (phone_number, first_name, last_name, numero_prenotazioni)
VALUES ($1, $2, $3, 1)
ON CONFLICT (phone_number) DO UPDATE SET
    numero_prenotazioni = gestionale_customer.numero_prenotazioni + 1
`

func (q *Queries) UpsertCustomerKeepNames(ctx context.Context, db DBTX, arg UpsertCustomerParams) error {
	_, err := db.Exec(ctx, upsertCustomerKeepNames, arg.PhoneNumber, arg.FirstName, arg.LastName)
	return err
}
