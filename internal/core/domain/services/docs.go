// Package services provides domain services that coordinate the logistics domain
// model without belonging to a single entity.
//
// The package includes:
//   - FreightRegistry: Resolves a delivery's freight type code to its pricing strategy
//
// Domain services are stateless once built and safe to share between goroutines.
package services
