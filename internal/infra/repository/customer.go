package repository

import (
	"context"

	"braceria-backend/internal/domain/customer"
	"braceria-backend/internal/infra"
	"braceria-backend/internal/infra/query"
)

type CustomerWriteQueries interface {
	UpsertCustomerRefreshNames(ctx context.Context, db query.DBTX, arg query.UpsertCustomerParams) error
	UpsertCustomerKeepNames(ctx context.Context, db query.DBTX, arg query.UpsertCustomerParams) error
}

type CustomerRepository struct {
	queries CustomerWriteQueries
}

func NewCustomerRepository(queries CustomerWriteQueries) *CustomerRepository {
	return &CustomerRepository{
		queries: queries,
	}
}

// Upsert inserts the customer or increments its booking counter atomically.
func (r *CustomerRepository) Upsert(ctx context.Context, tx query.DBTX, c customer.Customer, policy customer.UpsertPolicy) error {
	params := query.UpsertCustomerParams{
		PhoneNumber: c.PhoneNumber,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
	}

	var err error
	if policy.OverwritesNames() {
		err = r.queries.UpsertCustomerRefreshNames(ctx, tx, params)
	} else {
		err = r.queries.UpsertCustomerKeepNames(ctx, tx, params)
	}
	if err != nil {
		return infra.WrapRepoErr("failed to upsert customer", err)
	}
	return nil
}
