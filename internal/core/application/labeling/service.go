// Package labeling contains the application service that prices a delivery and
// hands the result to a LabelFormatter.
package labeling

import (
	"errors"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/ports"

	"github.com/shopspring/decimal"
)

var (
	ErrFeeCalculatorIsRequired = errors.New("fee calculator is required")
	ErrFormatterIsRequired     = errors.New("label formatter is required")
)

// FeeCalculator prices deliveries. services.FreightRegistry satisfies it.
type FeeCalculator interface {
	ComputeFee(d delivery.Delivery) (decimal.Decimal, error)
	IsFree(d delivery.Delivery) (bool, error)
}

// Service generates shipping labels and order summaries.
// It holds no per-call state; one instance can serve every request.
//
// Example:
//
//	svc, _ := NewService(services.NewDefaultFreightRegistry(), labeltext.NewFormatter())
//	label, err := svc.GenerateLabel(d)
//	if err != nil {
//	    // ValidationError or UnsupportedFreightTypeError from the registry
//	}
type Service struct {
	fees      FeeCalculator
	formatter ports.LabelFormatter
}

// NewService creates a Service. Both collaborators are required.
func NewService(fees FeeCalculator, formatter ports.LabelFormatter) (*Service, error) {
	if fees == nil {
		return nil, ErrFeeCalculatorIsRequired
	}
	if formatter == nil {
		return nil, ErrFormatterIsRequired
	}

	return &Service{
		fees:      fees,
		formatter: formatter,
	}, nil
}

// GenerateLabel prices d and renders its shipping label.
// Pricing errors are returned unchanged.
func (s *Service) GenerateLabel(d delivery.Delivery) (string, error) {
	fee, err := s.fees.ComputeFee(d)
	if err != nil {
		return "", err
	}
	return s.formatter.FormatLabel(d, fee), nil
}

// GenerateSummary prices d and renders its order summary.
// Pricing errors are returned unchanged.
func (s *Service) GenerateSummary(d delivery.Delivery) (string, error) {
	fee, err := s.fees.ComputeFee(d)
	if err != nil {
		return "", err
	}
	return s.formatter.FormatSummary(d, fee), nil
}

// IsFreeShipping reports whether d ships for free.
func (s *Service) IsFreeShipping(d delivery.Delivery) (bool, error) {
	return s.fees.IsFree(d)
}
