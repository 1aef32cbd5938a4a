package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application configuration
type Config struct {
	Port      string
	DBPath    string
	JWTSecret string

	// Lake resolver
	OverpassURL     string
	LakeCacheTTL    time.Duration
	DefaultRadiusKm float64

	// Points awarded per activity
	ReportPoints  int
	CleanupPoints int
}

// Load reads configuration from the environment
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/ecolake.db"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-secret-key-change-in-production"
	}

	overpassURL := os.Getenv("OVERPASS_URL")
	if overpassURL == "" {
		overpassURL = "https://overpass-api.de/api/interpreter"
	}

	cacheTTL := 10 * time.Minute
	if v := os.Getenv("LAKE_CACHE_TTL_MIN"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cacheTTL = time.Duration(n) * time.Minute
		}
	}

	defaultRadius := 50.0
	if v := os.Getenv("DEFAULT_RADIUS_KM"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			defaultRadius = f
		}
	}

	return &Config{
		Port:            port,
		DBPath:          dbPath,
		JWTSecret:       jwtSecret,
		OverpassURL:     overpassURL,
		LakeCacheTTL:    cacheTTL,
		DefaultRadiusKm: defaultRadius,
		ReportPoints:    10,
		CleanupPoints:   25,
	}
}
