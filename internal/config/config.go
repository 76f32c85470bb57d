package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Environment   string
	LogLevel      slog.Level
	WorldFile     string
	StartLocation int
	MaxTurns      int
	MinScore      int
	RequiredItems []string
	AuditRedisURL string // Empty disables the Redis event audit trail
}

func Load() (*Config, error) {
	start, err := getIntEnv("START_LOCATION", 1)
	if err != nil {
		return nil, err
	}
	maxTurns, err := getIntEnv("MAX_TURNS", 67)
	if err != nil {
		return nil, err
	}
	minScore, err := getIntEnv("MIN_SCORE", 60)
	if err != nil {
		return nil, err
	}

	return &Config{
		Environment:   getEnv("ENVIRONMENT", "development"),
		LogLevel:      parseLogLevel(getEnv("LOG_LEVEL", "info")),
		WorldFile:     getEnv("WORLD_FILE", "data/world.json"),
		StartLocation: start,
		MaxTurns:      maxTurns,
		MinScore:      minScore,
		RequiredItems: parseList(getEnv("REQUIRED_ITEMS", "lucky mug,usb drive,laptop charger")),
		AuditRedisURL: getEnv("AUDIT_REDIS_URL", ""),
	}, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func parseList(value string) []string {
	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return n, nil
}
