package kernel

import (
	"fmt"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrWeightIsNotConstructed is returned when attempting to use an improperly initialized Weight.
// Weights must be created using NewWeight or NewWeightFromString to ensure validity.
var ErrWeightIsNotConstructed = errs.NewValueIsRequiredError(
	"weight must be created via NewWeight or NewWeightFromString constructors")

// Weight represents the declared weight of a parcel in kilograms.
// Weight is an immutable value object backed by an exact decimal, so pricing
// rules never accumulate binary floating point error.
// The zero value of Weight is invalid and will fail validation - use constructors to create instances.
//
// Example:
//
//	w, err := kernel.NewWeight(decimal.NewFromInt(5))
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("Weight: %s", w) // Output: Weight: 5 kg
type Weight struct {
	kg    decimal.Decimal
	guard guard.ConstructorGuard
}

// NewWeight creates a new Weight of kg kilograms.
// The amount must be strictly greater than zero.
//
// Parameters:
//   - kg: The weight in kilograms (must be > 0)
//
// Returns:
//   - Weight: A valid weight instance
//   - error: ValueIsInvalidError if the amount is zero or negative
//
// Example:
//
//	w, err := NewWeight(decimal.RequireFromString("1.5"))
//	if err != nil {
//	    log.Fatal("Invalid weight:", err)
//	}
func NewWeight(kg decimal.Decimal) (Weight, error) {
	if !kg.IsPositive() {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause(
			"weight",
			fmt.Errorf("%s is not greater than 0", kg.String()),
		)
	}

	return Weight{
		kg:    kg,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// NewWeightFromString parses a decimal literal such as "2.75" and creates a Weight from it.
//
// Returns:
//   - Weight: A valid weight instance
//   - error: ValueIsInvalidError if the literal cannot be parsed or is not positive
func NewWeightFromString(kg string) (Weight, error) {
	d, err := decimal.NewFromString(kg)
	if err != nil {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause("weight", err)
	}
	return NewWeight(d)
}

// Validate checks if the Weight was properly constructed using a constructor.
// The zero value of Weight is invalid and will fail this validation.
//
// Returns:
//   - error: ErrWeightIsNotConstructed if the weight was not properly initialized, nil otherwise
func (w Weight) Validate() error {
	return w.guard.Validate(ErrWeightIsNotConstructed)
}

// Kilograms returns the weight amount in kilograms.
// For properly constructed instances the value is always greater than zero.
func (w Weight) Kilograms() decimal.Decimal {
	return w.kg
}

// Equal reports whether two weights hold the same amount.
// Amounts are compared numerically, so 5 kg and 5.0 kg are equal.
func (w Weight) Equal(other Weight) bool {
	return w.guard == other.guard && w.kg.Equal(other.kg)
}

// String returns a human-readable representation such as "5 kg".
// This method implements the fmt.Stringer interface.
func (w Weight) String() string {
	return w.kg.String() + " kg"
}
