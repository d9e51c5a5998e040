package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/domain/services"
)

func zeroJitter() float64 { return 0 }

func TestRankingScorer_Score(t *testing.T) {
	config := services.DefaultRankingConfig()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("fresh listing scores the base", func(t *testing.T) {
		scorer := services.NewRankingScorer(config, zeroJitter)

		score := scorer.Score(now, false, now)

		assert.InDelta(t, 100, score, 0.0001)
	})

	t.Run("premium owner gets the full boost", func(t *testing.T) {
		scorer := services.NewRankingScorer(config, zeroJitter)

		plain := scorer.Score(now, false, now)
		premium := scorer.Score(now, true, now)

		assert.InDelta(t, 500, premium-plain, 0.0001)
	})

	t.Run("score decays per day of age", func(t *testing.T) {
		scorer := services.NewRankingScorer(config, zeroJitter)

		score := scorer.Score(now.Add(-72*time.Hour), false, now)

		assert.InDelta(t, 100-3*10, score, 0.0001)
	})

	t.Run("decay is fractional within a day", func(t *testing.T) {
		scorer := services.NewRankingScorer(config, zeroJitter)

		score := scorer.Score(now.Add(-12*time.Hour), false, now)

		assert.InDelta(t, 95, score, 0.0001)
	})

	t.Run("score clamps at zero", func(t *testing.T) {
		scorer := services.NewRankingScorer(config, zeroJitter)

		score := scorer.Score(now.AddDate(0, -6, 0), false, now)

		assert.Zero(t, score)
	})

	t.Run("jitter is scaled by its maximum", func(t *testing.T) {
		scorer := services.NewRankingScorer(config, func() float64 { return 1 })

		score := scorer.Score(now, false, now)

		assert.InDelta(t, 100+config.JitterMax, score, 0.0001)
	})

	t.Run("default jitter stays within its bound", func(t *testing.T) {
		scorer := services.NewRankingScorer(config, nil)

		for i := 0; i < 100; i++ {
			score := scorer.Score(now, false, now)
			assert.GreaterOrEqual(t, score, 100.0)
			assert.Less(t, score, 100.0+config.JitterMax)
		}
	})
}
