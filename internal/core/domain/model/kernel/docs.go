// Package kernel provides the core domain primitives shared across the
// marketplace domain model.
//
// It currently contains a single building block:
//   - UUID: an immutable identifier value object with validation and
//     comparison, used as the identity of every aggregate.
//
// Primitives in this package are immutable and thread-safe, and enforce
// their invariants at construction time so that domain objects referencing
// them are always in a valid state.
package kernel
