package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/sleeper-report/internal/platform/logging"
)

// Config stores runtime configuration for one report run.
type Config struct {
	AppEnv                string
	ServiceName           string
	ServiceVersion        string
	LogLevel              logging.Level
	LogFormat             string
	SleeperBaseURL        string
	SleeperSport          string
	SleeperTimeout        time.Duration
	SleeperMaxBodyBytes   int
	SleeperUserAgent      string
	TrendingLookbackHours int
	TrendingLimit         int
	DefaultTeam           string
	NameWidth             int
	UptraceEnabled        bool
	UptraceDSN            string
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	logFormat, err := parseLogFormat(getEnv("APP_LOG_FORMAT", logging.FormatConsole))
	if err != nil {
		return Config{}, err
	}

	sleeperTimeout, err := time.ParseDuration(getEnv("SLEEPER_TIMEOUT", "20s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SLEEPER_TIMEOUT: %w", err)
	}
	if sleeperTimeout <= 0 {
		return Config{}, fmt.Errorf("SLEEPER_TIMEOUT must be > 0")
	}

	sleeperMaxBodyBytes, err := getEnvAsInt("SLEEPER_MAX_BODY_BYTES", 64<<20)
	if err != nil {
		return Config{}, fmt.Errorf("parse SLEEPER_MAX_BODY_BYTES: %w", err)
	}
	if sleeperMaxBodyBytes <= 0 {
		return Config{}, fmt.Errorf("SLEEPER_MAX_BODY_BYTES must be > 0")
	}

	sleeperBaseURL := strings.TrimRight(strings.TrimSpace(getEnv("SLEEPER_BASE_URL", "https://api.sleeper.app/v1")), "/")
	if !strings.HasPrefix(sleeperBaseURL, "http://") && !strings.HasPrefix(sleeperBaseURL, "https://") {
		return Config{}, fmt.Errorf("SLEEPER_BASE_URL must be an http(s) URL, got %q", sleeperBaseURL)
	}

	lookbackHours, err := getEnvAsInt("TRENDING_LOOKBACK_HOURS", 24)
	if err != nil {
		return Config{}, fmt.Errorf("parse TRENDING_LOOKBACK_HOURS: %w", err)
	}
	if lookbackHours <= 0 {
		return Config{}, fmt.Errorf("TRENDING_LOOKBACK_HOURS must be > 0")
	}

	trendingLimit, err := getEnvAsInt("TRENDING_LIMIT", 25)
	if err != nil {
		return Config{}, fmt.Errorf("parse TRENDING_LIMIT: %w", err)
	}
	if trendingLimit <= 0 || trendingLimit > MaxTrendingLimit {
		return Config{}, fmt.Errorf("TRENDING_LIMIT must be between 1 and %d", MaxTrendingLimit)
	}

	nameWidth, err := getEnvAsInt("REPORT_NAME_WIDTH", 28)
	if err != nil {
		return Config{}, fmt.Errorf("parse REPORT_NAME_WIDTH: %w", err)
	}
	if nameWidth < 2 {
		return Config{}, fmt.Errorf("REPORT_NAME_WIDTH must be >= 2")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	return Config{
		AppEnv:                appEnv,
		ServiceName:           getEnv("APP_SERVICE_NAME", "sleeper-report"),
		ServiceVersion:        getEnv("APP_SERVICE_VERSION", "dev"),
		LogLevel:              parseLogLevel(getEnv("APP_LOG_LEVEL", "warn")),
		LogFormat:             logFormat,
		SleeperBaseURL:        sleeperBaseURL,
		SleeperSport:          strings.ToLower(strings.TrimSpace(getEnv("SLEEPER_SPORT", "nfl"))),
		SleeperTimeout:        sleeperTimeout,
		SleeperMaxBodyBytes:   sleeperMaxBodyBytes,
		SleeperUserAgent:      strings.TrimSpace(getEnv("SLEEPER_USER_AGENT", "sleeper-report/1.0")),
		TrendingLookbackHours: lookbackHours,
		TrendingLimit:         trendingLimit,
		DefaultTeam:           strings.ToUpper(strings.TrimSpace(getEnv("REPORT_DEFAULT_TEAM", "IND"))),
		NameWidth:             nameWidth,
		UptraceEnabled:        uptraceEnabled,
		UptraceDSN:            uptraceDSN,
	}, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "info":
		return logging.LevelInfo
	case "error":
		return logging.LevelError
	default:
		return logging.LevelWarn
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

// MaxTrendingLimit is the largest trending list a report requests.
const MaxTrendingLimit = 200

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

func parseLogFormat(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case logging.FormatConsole, logging.FormatJSON:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_LOG_FORMAT %q: valid values are %s, %s", v, logging.FormatConsole, logging.FormatJSON)
	}
}
