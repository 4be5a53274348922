// Package kernel provides core domain primitives shared by the logistics domain model.
// It implements fundamental building blocks following Domain-Driven Design principles.
//
// The package includes:
//   - Weight: A value object for a declared parcel weight in kilograms, held as an exact decimal
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are immutable and safe for
// concurrent use.
package kernel
