package freight

import (
	"logistics/internal/core/domain/model/delivery"

	"github.com/shopspring/decimal"
)

var standardRatePerKg = decimal.RequireFromString("1.2")

// Standard prices the regular freight type: 1.2 per adjusted kilogram.
type Standard struct{}

// NewStandard creates the Standard strategy.
func NewStandard() Standard {
	return Standard{}
}

// Code returns CodeStandard.
func (Standard) Code() Code {
	return CodeStandard
}

// ComputeFee returns adjustedWeight × 1.2, floored at zero.
func (Standard) ComputeFee(d delivery.Delivery) (decimal.Decimal, error) {
	w, err := adjustedWeight(d)
	if err != nil {
		return decimal.Zero, err
	}
	return floorAtZero(w.Mul(standardRatePerKg)), nil
}

// IsFree applies the default rule.
func (s Standard) IsFree(d delivery.Delivery) (bool, error) {
	return IsFreeByFee(s, d)
}
