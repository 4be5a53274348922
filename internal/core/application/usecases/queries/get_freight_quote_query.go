// Package queries contains read operations over the logistics core.
// Implements the Query pattern for the read side of the CQRS architecture:
// every query is built through a validating constructor and executed by its handler.
package queries

import (
	"errors"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetFreightQuoteQueryIsNotConstructed = errors.New(
		"GetFreightQuoteQuery must be created via NewGetFreightQuoteQuery constructor",
	)
)

// GetFreightQuoteQuery asks for the fee and free shipping status of a delivery.
//
// Example:
//
//	d, _ := delivery.NewDelivery("Fulano", "Rua A, 123", decimal.NewFromInt(5), "EXP")
//	query, err := NewGetFreightQuoteQuery(d)
//	if err != nil {
//	    return err
//	}
//	quote, err := handler.Handle(ctx, query)
//	fmt.Printf("%s costs %s\n", quote.FreightCode, quote.Fee) // EXP costs 17.5
type GetFreightQuoteQuery struct {
	delivery delivery.Delivery
	guard    guard.ConstructorGuard
}

// NewGetFreightQuoteQuery creates a quote query for d, which must be a constructed delivery.
func NewGetFreightQuoteQuery(d delivery.Delivery) (GetFreightQuoteQuery, error) {
	if err := d.Validate(); err != nil {
		return GetFreightQuoteQuery{}, err
	}
	return GetFreightQuoteQuery{delivery: d, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetFreightQuoteQuery) Validate() error {
	return q.guard.Validate(ErrGetFreightQuoteQueryIsNotConstructed)
}

// Delivery returns the delivery to quote.
func (q GetFreightQuoteQuery) Delivery() delivery.Delivery {
	return q.delivery
}

// GetFreightQuoteQueryResponse is the read model of a freight quote.
type GetFreightQuoteQueryResponse struct {
	FreightCode  string
	Fee          decimal.Decimal
	FreeShipping bool
}
