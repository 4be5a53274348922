package queries

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var (
	ErrGetFreightTypesQueryIsNotConstructed = errors.New(
		"GetFreightTypesQuery must be created via NewGetFreightTypesQuery constructor",
	)
)

// GetFreightTypesQuery lists the freight type codes the service can price.
type GetFreightTypesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetFreightTypesQuery creates the parameterless freight types query.
func NewGetFreightTypesQuery() GetFreightTypesQuery {
	return GetFreightTypesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetFreightTypesQuery) Validate() error {
	return q.guard.Validate(ErrGetFreightTypesQueryIsNotConstructed)
}
