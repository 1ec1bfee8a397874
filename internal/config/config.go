package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cellwatch/towerjumps-backend-go/internal/analysis"
)

// Config holds server configuration loaded from the environment.
type Config struct {
	Port      string
	DBPath    string
	JWTSecret string // empty disables auth on mutating endpoints

	Detector analysis.Config
}

// Load reads configuration from environment variables, falling back to the
// detector's production defaults.
func Load() *Config {
	cfg := &Config{
		Port:      envStr("PORT", ":8080"),
		DBPath:    envStr("DB_PATH", "./data/towerjumps.db"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		Detector:  analysis.DefaultConfig(),
	}

	if v := envFloat("WINDOW_MINUTES", 0); v > 0 {
		cfg.Detector.WindowDuration = time.Duration(v * float64(time.Minute))
	}
	if v := envFloat("MAX_SPEED_KMH", 0); v > 0 {
		cfg.Detector.MaxSpeedKmh = v
	}
	if v := envFloat("CONFIDENCE_THRESHOLD", 0); v > 0 {
		cfg.Detector.ConfidenceThreshold = v
	}
	if v := envFloat("SUPPRESSION_WEIGHT", 0); v > 0 {
		cfg.Detector.SuppressionWeight = v
	}
	if pairs := parsePairs(os.Getenv("SUPPRESSED_PAIRS")); pairs != nil {
		cfg.Detector.SuppressedPairs = analysis.NewSuppressedPairs(pairs)
	}

	return cfg
}

// parsePairs parses "NY:CT,NJ:PA" into unordered region pairs.
func parsePairs(s string) [][2]string {
	if s == "" {
		return nil
	}

	var pairs [][2]string
	for _, part := range strings.Split(s, ",") {
		ab := strings.SplitN(strings.TrimSpace(part), ":", 2)
		if len(ab) != 2 || ab[0] == "" || ab[1] == "" {
			continue
		}
		pairs = append(pairs, [2]string{ab[0], ab[1]})
	}
	return pairs
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
