// Package entitlement provides the subscription ledger aggregates.
//
// The package includes:
//   - Plan: a purchasable tier (role, monthly limit, duration, premium flag)
//   - Grant: a time-bound usage allowance decremented per listing creation
//     or approved pickup
//
// Key business rules:
//   - at most one grant per holder is active at any instant
//   - a grant is mutated only by consumption and expiry, never resurrected
//   - the check-then-decrement of Consume must run inside the caller's
//     transaction so quota and lifecycle changes commit together
package entitlement
