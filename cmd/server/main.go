package main

import (
	"airlift-load-service/internal/adapters/cache"
	"airlift-load-service/internal/adapters/repositories"
	"airlift-load-service/internal/api"
	"airlift-load-service/internal/domain"
	"airlift-load-service/internal/planstore"
	"airlift-load-service/internal/ports"
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, Redis) behind ports and starts the
// HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := getEnv("DB_PATH", "data/app.db")
	seedPath := getEnv("SEED_PATH", "")
	port := getEnv("PORT", "8080")
	redisAddr := getEnv("REDIS_ADDR", "")

	profile, err := profileFromEnv()
	if err != nil {
		log.Fatal(err)
	}

	db, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Initialize schema and optionally seed demo requests for local runs.
	if err := repositories.InitSchema(db); err != nil {
		log.Fatal(err)
	}
	if seedPath != "" {
		if err := repositories.SeedFromJSON(db, seedPath); err != nil {
			log.Fatal(err)
		}
	}

	// The Redis plan cache is optional: without it crew reads are served
	// solely from the in-process slot.
	var planCache ports.PlanCache
	if redisAddr != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		c, err := cache.NewRedisPlanCache(ctx, redisAddr, 24*time.Hour)
		cancel()
		if err != nil {
			log.Fatal(err)
		}
		defer c.Close()
		planCache = c
	}

	store := planstore.New()
	router := api.NewRouter(repositories.NewSqliteCargoRepository(db), store, planCache, profile)

	log.Printf("Server listening addr=:%s aircraft=%q max_weight_kg=%.0f", port, profile.Name, profile.MaxWeightKg)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// profileFromEnv starts from the UH-60 defaults and applies any overrides,
// so other airframes need configuration only, not code. Invalid values are
// fatal here, never mid-packing.
func profileFromEnv() (domain.AircraftProfile, error) {
	profile := domain.UH60BlackHawk()

	overrides := []struct {
		key  string
		dest *float64
	}{
		{"MAX_WEIGHT_KG", &profile.MaxWeightKg},
		{"BAY_LENGTH_M", &profile.BayLengthM},
		{"BAY_WIDTH_M", &profile.BayWidthM},
		{"BAY_HEIGHT_M", &profile.BayHeightM},
		{"FUEL_BURN_EMPTY_KG_H", &profile.FuelBurnEmptyKgH},
		{"FUEL_BURN_PER_KG_H", &profile.FuelBurnPerKgH},
		{"CRUISE_SPEED_KMH", &profile.CruiseSpeedKmh},
	}
	for _, o := range overrides {
		v := strings.TrimSpace(os.Getenv(o.key))
		if v == "" {
			continue
		}
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return domain.AircraftProfile{}, fmt.Errorf("profile from env: parse %s=%q: %w", o.key, v, err)
		}
		*o.dest = parsed
	}
	if name := strings.TrimSpace(os.Getenv("AIRCRAFT_NAME")); name != "" {
		profile.Name = name
	}

	if err := profile.Validate(); err != nil {
		return domain.AircraftProfile{}, fmt.Errorf("profile from env: %w", err)
	}
	return profile, nil
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}
