package cmd

import "time"

// Config carries the process configuration resolved once at startup.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// MaintenanceInterval is how often the expiry and ranking sweeps run.
	MaintenanceInterval time.Duration

	// UnmeteredPostings disables quota consumption on listing creation.
	UnmeteredPostings bool

	// Ranking knobs; zero values fall back to the scorer defaults.
	RankingBaseScore    float64
	RankingPremiumBoost float64
	RankingDecayPerDay  float64
	RankingJitterMax    float64
}
