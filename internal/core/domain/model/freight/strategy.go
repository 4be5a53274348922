package freight

import (
	"logistics/internal/core/domain/model/delivery"

	"github.com/shopspring/decimal"
)

// Code identifies a freight type, e.g. "PAD".
type Code string

const (
	// CodeStandard selects the Standard strategy.
	CodeStandard Code = "PAD"
	// CodeExpress selects the Express strategy.
	CodeExpress Code = "EXP"
	// CodeEconomic selects the Economic strategy.
	CodeEconomic Code = "ECO"
)

func (c Code) String() string {
	return string(c)
}

var (
	discountThreshold = decimal.NewFromInt(10)
	discountAmount    = decimal.NewFromInt(1)
)

// Strategy prices deliveries for one freight type.
// Implementations are stateless and safe for concurrent use.
type Strategy interface {
	// Code returns the freight type this strategy prices.
	Code() Code

	// ComputeFee returns the fee for d. The fee is never negative.
	// An error is returned only when d was not built by delivery.NewDelivery.
	ComputeFee(d delivery.Delivery) (decimal.Decimal, error)

	// IsFree reports whether d ships for free under this strategy.
	IsFree(d delivery.Delivery) (bool, error)
}

// ApplyWeightDiscount returns the weight used for pricing: parcels heavier
// than 10 kg lose 1 kg, lighter ones are priced as declared.
func ApplyWeightDiscount(weightKg decimal.Decimal) decimal.Decimal {
	if weightKg.GreaterThan(discountThreshold) {
		return weightKg.Sub(discountAmount)
	}
	return weightKg
}

// IsFreeByFee is the default free shipping rule: the fee computed by s is exactly zero.
func IsFreeByFee(s Strategy, d delivery.Delivery) (bool, error) {
	fee, err := s.ComputeFee(d)
	if err != nil {
		return false, err
	}
	return fee.IsZero(), nil
}

// All returns one instance of every built-in strategy.
func All() []Strategy {
	return []Strategy{
		NewStandard(),
		NewExpress(),
		NewEconomic(),
	}
}

// adjustedWeight validates d and returns its discounted weight.
func adjustedWeight(d delivery.Delivery) (decimal.Decimal, error) {
	if err := d.Validate(); err != nil {
		return decimal.Zero, err
	}
	return ApplyWeightDiscount(d.WeightKg()), nil
}

func floorAtZero(fee decimal.Decimal) decimal.Decimal {
	return decimal.Max(fee, decimal.Zero)
}
