package queries

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/delivery"

	"github.com/shopspring/decimal"
)

// ErrFeeCalculatorIsRequired is returned when a handler is built without a FeeCalculator.
var ErrFeeCalculatorIsRequired = errors.New("fee calculator is required")

// FeeCalculator prices deliveries. services.FreightRegistry satisfies it.
type FeeCalculator interface {
	ComputeFee(d delivery.Delivery) (decimal.Decimal, error)
	IsFree(d delivery.Delivery) (bool, error)
}

// GetFreightQuoteQueryHandler prices a delivery through the freight registry.
type GetFreightQuoteQueryHandler struct {
	fees FeeCalculator
}

// NewGetFreightQuoteQueryHandler creates a handler backed by fees.
func NewGetFreightQuoteQueryHandler(fees FeeCalculator) (GetFreightQuoteQueryHandler, error) {
	if fees == nil {
		return GetFreightQuoteQueryHandler{}, ErrFeeCalculatorIsRequired
	}
	return GetFreightQuoteQueryHandler{fees: fees}, nil
}

// Handle computes the fee and free shipping status of the queried delivery.
// ValidationError and UnsupportedFreightTypeError are returned unchanged.
func (h GetFreightQuoteQueryHandler) Handle(
	_ context.Context,
	query GetFreightQuoteQuery,
) (GetFreightQuoteQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetFreightQuoteQueryResponse{}, err
	}

	d := query.Delivery()

	fee, err := h.fees.ComputeFee(d)
	if err != nil {
		return GetFreightQuoteQueryResponse{}, err
	}

	free, err := h.fees.IsFree(d)
	if err != nil {
		return GetFreightQuoteQueryResponse{}, err
	}

	return GetFreightQuoteQueryResponse{
		FreightCode:  d.FreightCode(),
		Fee:          fee,
		FreeShipping: free,
	}, nil
}
