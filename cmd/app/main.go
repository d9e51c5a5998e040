package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/abubekerethionyx/globalpath-p2p-delivery/cmd"
	httpadapter "github.com/abubekerethionyx/globalpath-p2p-delivery/internal/adapters/in/http"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/adapters/out/postgres/courierrepo"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/adapters/out/postgres/entitlementrepo"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/adapters/out/postgres/listingrepo"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/adapters/out/postgres/requestrepo"
	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/jobs"
)

func main() {
	config := getConfig()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword,
		config.DBName, config.DBSslMode)

	waitForDatabase(dsn, logger)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&listingrepo.ListingDTO{},
		&requestrepo.RequestDTO{},
		&courierrepo.CourierDTO{},
		&entitlementrepo.PlanDTO{},
		&entitlementrepo.GrantDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	root := cmd.NewCompositionRoot(config, gormDB, logger)

	jobManager := jobs.NewJobManager(
		root.CreateExpireGrantsCommandHandler(),
		root.CreateRecomputeRankingsCommandHandler(),
		config.MaintenanceInterval,
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, config.HTTPPort)
}

func getConfig() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded: %v", err)
	}

	return cmd.Config{
		HTTPPort:            envOr("HTTP_PORT", "8080"),
		DBHost:              envOr("DB_HOST", "localhost"),
		DBPort:              envOr("DB_PORT", "5432"),
		DBUser:              envOr("DB_USER", "postgres"),
		DBPassword:          envOr("DB_PASSWORD", "postgres"),
		DBName:              envOr("DB_NAME", "marketplace"),
		DBSslMode:           envOr("DB_SSLMODE", "disable"),
		MaintenanceInterval: envDuration("MAINTENANCE_INTERVAL", 24*time.Hour),
		UnmeteredPostings:   envBool("UNMETERED_POSTINGS", false),
		RankingBaseScore:    envFloat("RANKING_BASE_SCORE"),
		RankingPremiumBoost: envFloat("RANKING_PREMIUM_BOOST"),
		RankingDecayPerDay:  envFloat("RANKING_DECAY_PER_DAY"),
		RankingJitterMax:    envFloat("RANKING_JITTER_MAX"),
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		log.Warnf("Invalid %s value %q, using %s", key, value, fallback)
		return fallback
	}
	return parsed
}

func envBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		log.Warnf("Invalid %s value %q, using %t", key, value, fallback)
		return fallback
	}
	return parsed
}

func envFloat(key string) float64 {
	value := os.Getenv(key)
	if value == "" {
		return 0
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Warnf("Invalid %s value %q, ignoring", key, value)
		return 0
	}
	return parsed
}

// waitForDatabase pings the database until it answers, so container startup
// order does not matter.
func waitForDatabase(dsn string, logger *slog.Logger) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to open database for ping: %v", err)
	}
	defer db.Close()

	for attempt := 1; attempt <= 30; attempt++ {
		if err = db.Ping(); err == nil {
			return
		}
		logger.Warn("Database not ready", "attempt", attempt, "error", err)
		time.Sleep(time.Second)
	}

	log.Fatalf("Database never became ready: %v", err)
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpadapter.NewServer(
		root.CreateCreateListingCommandHandler(),
		root.CreateSubmitRequestCommandHandler(),
		root.CreateApproveRequestCommandHandler(),
		root.CreateRejectRequestCommandHandler(),
		root.CreateAdvanceListingCommandHandler(),
		root.CreateConfirmDeliveryCommandHandler(),
		root.CreateReopenListingCommandHandler(),
		root.CreateActivateGrantCommandHandler(),
		root.CreateRegisterCourierCommandHandler(),
		root.CreateGetOpenListingsQueryHandler(),
		root.CreateGetListingRequestsQueryHandler(),
		root.CreateGetActiveGrantQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
