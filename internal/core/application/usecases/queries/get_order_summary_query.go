package queries

import (
	"errors"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/pkg/guard"
)

var (
	ErrGetOrderSummaryQueryIsNotConstructed = errors.New(
		"GetOrderSummaryQuery must be created via NewGetOrderSummaryQuery constructor",
	)
)

// GetOrderSummaryQuery asks for the one-line order summary of a delivery.
type GetOrderSummaryQuery struct {
	delivery delivery.Delivery
	guard    guard.ConstructorGuard
}

// NewGetOrderSummaryQuery creates a summary query for d, which must be a constructed delivery.
func NewGetOrderSummaryQuery(d delivery.Delivery) (GetOrderSummaryQuery, error) {
	if err := d.Validate(); err != nil {
		return GetOrderSummaryQuery{}, err
	}
	return GetOrderSummaryQuery{delivery: d, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderSummaryQueryIsNotConstructed)
}

// Delivery returns the delivery to summarize.
func (q GetOrderSummaryQuery) Delivery() delivery.Delivery {
	return q.delivery
}
