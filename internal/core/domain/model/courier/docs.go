// Package courier provides the courier performance Profile aggregate.
//
// The profile accumulates the reputation effects of the allocation engine:
// a small rating bump for winning arbitration, and a larger capped bump plus
// an incremental mean carry time update when the owner confirms a delivery.
package courier
