package services

import (
	"math/rand/v2"
	"time"
)

// RankingConfig holds the visibility scoring policy. It is resolved once at
// process start and passed into the scorer constructor; business logic never
// reads configuration globally.
type RankingConfig struct {
	// BaseScore is the starting score of every open listing.
	BaseScore float64

	// PremiumBoost is added when the owner holds an active, non-expired,
	// premium-tier grant.
	PremiumBoost float64

	// DecayPerDay is subtracted per full day since the listing was created.
	DecayPerDay float64

	// JitterMax bounds the uniform anti-staleness jitter drawn from
	// [0, JitterMax) on every invocation.
	JitterMax float64
}

// DefaultRankingConfig returns the marketplace's standard scoring policy.
func DefaultRankingConfig() RankingConfig {
	return RankingConfig{
		BaseScore:    100,
		PremiumBoost: 500,
		DecayPerDay:  10,
		JitterMax:    5,
	}
}

// RankingScorer computes the transient visibility score that orders open
// listings for discovery. The score is never used for any other decision.
type RankingScorer struct {
	config RankingConfig
	jitter func() float64
}

// NewRankingScorer creates a scorer with the given policy. The jitter
// function draws a fresh uniform value in [0, 1) on every call; passing nil
// selects the standard random source. Tests inject a constant to make
// scores deterministic.
func NewRankingScorer(config RankingConfig, jitter func() float64) *RankingScorer {
	if jitter == nil {
		jitter = rand.Float64
	}
	return &RankingScorer{
		config: config,
		jitter: jitter,
	}
}

// Score computes the visibility score for a listing created at createdAt,
// owned by a premium holder or not, as of now:
//
//	score = base + premiumBoost - (hoursSince(createdAt)/24) * decayPerDay + jitter
//
// clamped at zero. The jitter is freshly drawn per invocation, never cached,
// so periodic recomputation reshuffles ties between stale listings.
func (s *RankingScorer) Score(createdAt time.Time, ownerIsPremium bool, now time.Time) float64 {
	score := s.config.BaseScore

	if ownerIsPremium {
		score += s.config.PremiumBoost
	}

	hoursOld := now.UTC().Sub(createdAt.UTC()).Hours()
	score -= (hoursOld / 24) * s.config.DecayPerDay

	score += s.jitter() * s.config.JitterMax

	if score < 0 {
		score = 0
	}
	return score
}
