// Package freight provides the pricing strategies that turn a delivery's weight
// into a freight fee.
//
// The package includes:
//   - Strategy: The contract every freight type implements
//   - Standard ("PAD"), Express ("EXP") and Economic ("ECO") strategies
//   - ApplyWeightDiscount: The bulk-weight promotion every strategy applies first
//
// Key business rules:
//   - Parcels heavier than 10 kg are priced as if they were 1 kg lighter
//   - Fees are exact decimals and never negative
//   - A fee of exactly zero means free shipping
package freight
