package freight

import (
	"logistics/internal/core/domain/model/delivery"

	"github.com/shopspring/decimal"
)

var (
	expressRatePerKg = decimal.RequireFromString("1.5")
	expressSurcharge = decimal.NewFromInt(10)
)

// Express prices priority shipping: 1.5 per adjusted kilogram plus a fixed surcharge of 10.
type Express struct{}

// NewExpress creates the Express strategy.
func NewExpress() Express {
	return Express{}
}

// Code returns CodeExpress.
func (Express) Code() Code {
	return CodeExpress
}

// ComputeFee returns adjustedWeight × 1.5 + 10, floored at zero.
func (Express) ComputeFee(d delivery.Delivery) (decimal.Decimal, error) {
	w, err := adjustedWeight(d)
	if err != nil {
		return decimal.Zero, err
	}
	return floorAtZero(w.Mul(expressRatePerKg).Add(expressSurcharge)), nil
}

// IsFree applies the default rule. With the fixed surcharge it never holds.
func (e Express) IsFree(d delivery.Delivery) (bool, error) {
	return IsFreeByFee(e, d)
}
