package delivery

import (
	"errors"
	"fmt"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrDeliveryIsNotConstructed is returned when a Delivery was not created through NewDelivery.
var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

// ValidationError reports which field of a Delivery failed validation.
// The Cause is one of the errs package errors, so errors.Is against
// errs.ErrValueIsRequired or errs.ErrValueIsInvalid keeps working.
type ValidationError struct {
	Field string
	Cause error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("delivery %s is invalid: %s", e.Field, e.Cause)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// Delivery is a single parcel to be priced and labelled.
//
// Delivery follows these invariants:
//   - Recipient and address are non-blank and trimmed
//   - Weight is a constructed kernel.Weight, hence strictly positive
//   - Freight code is non-blank, trimmed and upper-cased
//   - Can only be created through NewDelivery
//
// Deliveries are values: copy them freely and compare them with Equal.
type Delivery struct { //nolint:recvcheck //using for validation
	recipient   string
	address     string
	weight      kernel.Weight
	freightCode string

	guard guard.ConstructorGuard
}

// NewDelivery creates a Delivery, validating every field.
//
// Parameters:
//   - recipient: Name of the person receiving the parcel (required)
//   - address: Destination address (required)
//   - weightKg: Declared weight in kilograms (must be > 0)
//   - freightCode: Freight type code such as "PAD", "EXP" or "ECO" (required, case-insensitive)
//
// Returns:
//   - Delivery: The created delivery if all validations pass
//   - error: One *ValidationError per failing field, joined with errors.Join
//
// Example:
//
//	d, err := NewDelivery("Fulano", "Rua A, 123", decimal.NewFromInt(5), "exp")
//	if err != nil {
//	    // Handle validation error
//	}
//	d.FreightCode() // "EXP"
func NewDelivery(recipient, address string, weightKg decimal.Decimal, freightCode string) (Delivery, error) {
	d := Delivery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setRecipient(recipient),
		d.setAddress(address),
		d.setWeight(weightKg),
		d.setFreightCode(freightCode),
	); err != nil {
		return Delivery{}, err
	}

	return d, nil
}

// Validate ensures the Delivery was built by NewDelivery.
func (d Delivery) Validate() error {
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// Recipient returns the trimmed recipient name.
func (d Delivery) Recipient() string {
	return d.recipient
}

// Address returns the trimmed destination address.
func (d Delivery) Address() string {
	return d.address
}

// Weight returns the declared weight.
func (d Delivery) Weight() kernel.Weight {
	return d.weight
}

// WeightKg returns the declared weight in kilograms.
func (d Delivery) WeightKg() decimal.Decimal {
	return d.weight.Kilograms()
}

// FreightCode returns the normalized freight type code.
func (d Delivery) FreightCode() string {
	return d.freightCode
}

// Equal reports whether both deliveries hold the same values.
// Weights are compared numerically.
func (d Delivery) Equal(other Delivery) bool {
	return d.guard == other.guard &&
		d.recipient == other.recipient &&
		d.address == other.address &&
		d.freightCode == other.freightCode &&
		d.weight.Equal(other.weight)
}

func (d Delivery) String() string {
	return fmt.Sprintf("Delivery{recipient=%q, address=%q, weight=%s, freightCode=%q}",
		d.recipient, d.address, d.weight, d.freightCode)
}

func (d *Delivery) setRecipient(recipient string) error {
	recipient = strings.TrimSpace(recipient)
	if recipient == "" {
		return &ValidationError{Field: "recipient", Cause: errs.NewValueIsRequiredError("recipient")}
	}

	d.recipient = recipient
	return nil
}

func (d *Delivery) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return &ValidationError{Field: "address", Cause: errs.NewValueIsRequiredError("address")}
	}

	d.address = address
	return nil
}

func (d *Delivery) setWeight(weightKg decimal.Decimal) error {
	w, err := kernel.NewWeight(weightKg)
	if err != nil {
		return &ValidationError{Field: "weight", Cause: err}
	}

	d.weight = w
	return nil
}

func (d *Delivery) setFreightCode(freightCode string) error {
	freightCode = strings.TrimSpace(freightCode)
	if freightCode == "" {
		return &ValidationError{Field: "freight code", Cause: errs.NewValueIsRequiredError("freight code")}
	}

	d.freightCode = strings.ToUpper(freightCode)
	return nil
}
