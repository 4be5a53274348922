// Package delivery provides the Delivery entity: the validated, immutable record of
// who receives a parcel, where it goes, how much it weighs and which freight type
// prices it.
//
// Key business rules:
//   - Recipient and address are required and stored trimmed
//   - Weight must be strictly greater than zero
//   - The freight type code is required and stored trimmed and upper-cased
//   - A Delivery cannot change after construction
package delivery
