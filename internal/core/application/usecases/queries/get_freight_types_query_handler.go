package queries

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/freight"
)

var ErrCodeListerIsRequired = errors.New("code lister is required")

// CodeLister lists registered freight codes. services.FreightRegistry satisfies it.
type CodeLister interface {
	Codes() []freight.Code
}

// GetFreightTypesQueryHandler lists registered freight type codes.
type GetFreightTypesQueryHandler struct {
	codes CodeLister
}

// NewGetFreightTypesQueryHandler creates a handler backed by codes.
func NewGetFreightTypesQueryHandler(codes CodeLister) (GetFreightTypesQueryHandler, error) {
	if codes == nil {
		return GetFreightTypesQueryHandler{}, ErrCodeListerIsRequired
	}
	return GetFreightTypesQueryHandler{codes: codes}, nil
}

// Handle returns the registered codes in ascending order.
func (h GetFreightTypesQueryHandler) Handle(_ context.Context, query GetFreightTypesQuery) ([]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	codes := h.codes.Codes()
	out := make([]string, len(codes))
	for i, c := range codes {
		out[i] = c.String()
	}
	return out, nil
}
