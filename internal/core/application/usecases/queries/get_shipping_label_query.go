package queries

import (
	"errors"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/pkg/guard"
)

var (
	ErrGetShippingLabelQueryIsNotConstructed = errors.New(
		"GetShippingLabelQuery must be created via NewGetShippingLabelQuery constructor",
	)
)

// GetShippingLabelQuery asks for the printable shipping label of a delivery.
type GetShippingLabelQuery struct {
	delivery delivery.Delivery
	guard    guard.ConstructorGuard
}

// NewGetShippingLabelQuery creates a label query for d, which must be a constructed delivery.
func NewGetShippingLabelQuery(d delivery.Delivery) (GetShippingLabelQuery, error) {
	if err := d.Validate(); err != nil {
		return GetShippingLabelQuery{}, err
	}
	return GetShippingLabelQuery{delivery: d, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShippingLabelQuery) Validate() error {
	return q.guard.Validate(ErrGetShippingLabelQueryIsNotConstructed)
}

// Delivery returns the delivery to label.
func (q GetShippingLabelQuery) Delivery() delivery.Delivery {
	return q.delivery
}
