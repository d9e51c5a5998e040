// Package services contains stateless domain services that implement
// policies spanning multiple aggregates.
//
// RankingScorer computes the transient visibility score for open listings:
// a base score, a premium boost for subscribed owners, linear time decay,
// and a small uniform jitter redrawn on every invocation.
package services
