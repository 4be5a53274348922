// Package ports defines the contracts between the logistics core and its adapters.
// These interfaces establish the boundary the application layer depends on,
// enabling dependency inversion and testability.
package ports

import (
	"logistics/internal/core/domain/model/delivery"

	"github.com/shopspring/decimal"
)

// LabelFormatter renders human-readable text for a priced delivery.
// Currency and locale presentation belong entirely to the implementation;
// the core only hands over the delivery and its exact fee.
type LabelFormatter interface {
	// FormatLabel renders the shipping label: recipient, address and fee.
	FormatLabel(d delivery.Delivery, fee decimal.Decimal) string

	// FormatSummary renders a one-line order summary: recipient, freight code and fee.
	FormatSummary(d delivery.Delivery, fee decimal.Decimal) string
}
