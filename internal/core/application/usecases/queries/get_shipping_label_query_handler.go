package queries

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/delivery"
)

// ErrLabelGeneratorIsRequired is returned when a label or summary handler is built without a LabelGenerator.
var ErrLabelGeneratorIsRequired = errors.New("label generator is required")

// LabelGenerator renders labels and summaries. labeling.Service satisfies it.
type LabelGenerator interface {
	GenerateLabel(d delivery.Delivery) (string, error)
	GenerateSummary(d delivery.Delivery) (string, error)
}

// GetShippingLabelQueryHandler renders shipping labels.
type GetShippingLabelQueryHandler struct {
	labels LabelGenerator
}

// NewGetShippingLabelQueryHandler creates a handler backed by labels.
func NewGetShippingLabelQueryHandler(labels LabelGenerator) (GetShippingLabelQueryHandler, error) {
	if labels == nil {
		return GetShippingLabelQueryHandler{}, ErrLabelGeneratorIsRequired
	}
	return GetShippingLabelQueryHandler{labels: labels}, nil
}

// Handle returns the label text of the queried delivery.
func (h GetShippingLabelQueryHandler) Handle(_ context.Context, query GetShippingLabelQuery) (string, error) {
	if err := query.Validate(); err != nil {
		return "", err
	}
	return h.labels.GenerateLabel(query.Delivery())
}
