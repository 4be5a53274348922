package freight

import (
	"logistics/internal/core/domain/model/delivery"

	"github.com/shopspring/decimal"
)

var (
	economicRatePerKg   = decimal.RequireFromString("1.1")
	economicDiscount    = decimal.NewFromInt(5)
	economicFreeBelowKg = decimal.NewFromInt(2)
)

// Economic prices the budget freight type. Parcels under 2 adjusted kilograms
// ship for free; heavier ones pay 1.1 per adjusted kilogram minus 5, never below zero.
type Economic struct{}

// NewEconomic creates the Economic strategy.
func NewEconomic() Economic {
	return Economic{}
}

// Code returns CodeEconomic.
func (Economic) Code() Code {
	return CodeEconomic
}

// ComputeFee returns 0 under the free threshold, otherwise max(0, adjustedWeight × 1.1 − 5).
func (Economic) ComputeFee(d delivery.Delivery) (decimal.Decimal, error) {
	w, err := adjustedWeight(d)
	if err != nil {
		return decimal.Zero, err
	}

	if w.LessThan(economicFreeBelowKg) {
		return decimal.Zero, nil
	}

	return floorAtZero(w.Mul(economicRatePerKg).Sub(economicDiscount)), nil
}

// IsFree checks the adjusted weight against the free threshold directly.
// It agrees with ComputeFee for every valid weight: between 2 and 5/1.1 kg the
// formula floors at zero as well, so those parcels are free too.
func (Economic) IsFree(d delivery.Delivery) (bool, error) {
	w, err := adjustedWeight(d)
	if err != nil {
		return false, err
	}

	if w.LessThan(economicFreeBelowKg) {
		return true, nil
	}

	return !w.Mul(economicRatePerKg).GreaterThan(economicDiscount), nil
}
