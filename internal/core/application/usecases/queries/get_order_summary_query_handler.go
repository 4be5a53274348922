package queries

import "context"

// GetOrderSummaryQueryHandler renders order summaries.
type GetOrderSummaryQueryHandler struct {
	labels LabelGenerator
}

// NewGetOrderSummaryQueryHandler creates a handler backed by labels.
func NewGetOrderSummaryQueryHandler(labels LabelGenerator) (GetOrderSummaryQueryHandler, error) {
	if labels == nil {
		return GetOrderSummaryQueryHandler{}, ErrLabelGeneratorIsRequired
	}
	return GetOrderSummaryQueryHandler{labels: labels}, nil
}

// Handle returns the summary text of the queried delivery.
func (h GetOrderSummaryQueryHandler) Handle(_ context.Context, query GetOrderSummaryQuery) (string, error) {
	if err := query.Validate(); err != nil {
		return "", err
	}
	return h.labels.GenerateSummary(query.Delivery())
}
