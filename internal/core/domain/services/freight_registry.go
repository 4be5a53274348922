package services

import (
	"errors"
	"fmt"
	"slices"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/freight"

	"github.com/shopspring/decimal"
)

var (
	// ErrUnsupportedFreightType is the sentinel behind every UnsupportedFreightTypeError.
	ErrUnsupportedFreightType = errors.New("unsupported freight type")

	// ErrDuplicateFreightType is returned when two strategies register the same code.
	ErrDuplicateFreightType = errors.New("duplicate freight type")

	// ErrStrategyIsRequired is returned when a nil strategy is registered.
	ErrStrategyIsRequired = errors.New("freight strategy is required")
)

// UnsupportedFreightTypeError is returned when no strategy is registered for Code.
type UnsupportedFreightTypeError struct {
	Code string
}

func (e *UnsupportedFreightTypeError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnsupportedFreightType, e.Code)
}

func (e *UnsupportedFreightTypeError) Unwrap() error {
	return ErrUnsupportedFreightType
}

// FreightRegistry maps freight type codes to their pricing strategies.
//
// The mapping is built once by NewFreightRegistry and never changes afterwards,
// so a single registry can serve concurrent callers without locking.
//
// Example usage:
//
//	registry := NewDefaultFreightRegistry()
//	d, _ := delivery.NewDelivery("Fulano", "Rua A, 123", decimal.NewFromInt(10), "PAD")
//
//	fee, err := registry.ComputeFee(d)
//	var unsupported *UnsupportedFreightTypeError
//	if errors.As(err, &unsupported) {
//	    // d.FreightCode() is not priced by any strategy
//	}
//	// fee == 12
type FreightRegistry struct {
	strategies map[freight.Code]freight.Strategy
}

// NewFreightRegistry builds a registry from the complete set of available strategies.
//
// Returns:
//   - *FreightRegistry: The registry keyed by each strategy's Code()
//   - error: ErrStrategyIsRequired for a nil strategy, ErrDuplicateFreightType when two
//     strategies share a code
func NewFreightRegistry(strategies ...freight.Strategy) (*FreightRegistry, error) {
	byCode := make(map[freight.Code]freight.Strategy, len(strategies))

	for i, s := range strategies {
		if s == nil {
			return nil, fmt.Errorf("%w: position %d", ErrStrategyIsRequired, i)
		}

		code := s.Code()
		if _, exists := byCode[code]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateFreightType, code)
		}
		byCode[code] = s
	}

	return &FreightRegistry{strategies: byCode}, nil
}

// NewDefaultFreightRegistry builds a registry holding every built-in strategy.
func NewDefaultFreightRegistry() *FreightRegistry {
	registry, err := NewFreightRegistry(freight.All()...)
	if err != nil {
		// freight.All returns distinct, non-nil strategies.
		panic(err)
	}
	return registry
}

// Strategy returns the strategy registered for code.
// The lookup is exact; deliveries already carry upper-cased codes.
func (r *FreightRegistry) Strategy(code string) (freight.Strategy, error) {
	s, ok := r.strategies[freight.Code(code)]
	if !ok {
		return nil, &UnsupportedFreightTypeError{Code: code}
	}
	return s, nil
}

// ComputeFee prices d with the strategy matching its freight code.
func (r *FreightRegistry) ComputeFee(d delivery.Delivery) (decimal.Decimal, error) {
	s, err := r.strategyFor(d)
	if err != nil {
		return decimal.Zero, err
	}
	return s.ComputeFee(d)
}

// IsFree reports whether d ships for free with the strategy matching its freight code.
func (r *FreightRegistry) IsFree(d delivery.Delivery) (bool, error) {
	s, err := r.strategyFor(d)
	if err != nil {
		return false, err
	}
	return s.IsFree(d)
}

// Codes returns the registered freight type codes in ascending order.
func (r *FreightRegistry) Codes() []freight.Code {
	codes := make([]freight.Code, 0, len(r.strategies))
	for code := range r.strategies {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return codes
}

func (r *FreightRegistry) strategyFor(d delivery.Delivery) (freight.Strategy, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return r.Strategy(d.FreightCode())
}
