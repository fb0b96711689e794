package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/cricket-match-fetcher/internal/domain/matchdata"
	"github.com/riskibarqy/cricket-match-fetcher/internal/platform/logging"
)

const (
	// EnvCricketAPIKey holds the Fox Sports user key sent as the userkey query parameter.
	EnvCricketAPIKey = "CricketApiFoxSports"

	DefaultCricketAPIBaseURL = "https://statsapi.foxsports.com.au/3.0/api/sports/cricket/matches/"
)

// Config stores runtime configuration for the fetcher.
type Config struct {
	AppEnv            string
	ServiceName       string
	ServiceVersion    string
	LogLevel          logging.Level
	LogFormat         string
	CricketAPIBaseURL string
	CricketAPIKey     string
	CricketAPITimeout time.Duration
	MatchID           string
	DataDirName       string
	DataAnchor        string
	Endpoints         []string
	UptraceEnabled    bool
	UptraceDSN        string
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

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	apiTimeout, err := time.ParseDuration(getEnv("CRICKET_API_TIMEOUT", "100s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CRICKET_API_TIMEOUT: %w", err)
	}
	if apiTimeout <= 0 {
		return Config{}, fmt.Errorf("CRICKET_API_TIMEOUT must be > 0")
	}

	endpoints, err := parseEndpoints(getEnv("CRICKET_ENDPOINTS", ""))
	if err != nil {
		return Config{}, fmt.Errorf("parse CRICKET_ENDPOINTS: %w", err)
	}

	anchor := strings.TrimSpace(getEnv("CRICKET_DATA_ANCHOR", ""))
	if anchor == "" {
		anchor, err = os.Getwd()
		if err != nil {
			return Config{}, fmt.Errorf("resolve working directory: %w", err)
		}
	}

	cfg := Config{
		AppEnv:            appEnv,
		ServiceName:       getEnv("APP_SERVICE_NAME", "cricket-match-fetcher"),
		ServiceVersion:    getEnv("APP_SERVICE_VERSION", "dev"),
		LogLevel:          logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info")),
		LogFormat:         logFormat,
		CricketAPIBaseURL: strings.TrimSpace(getEnv("CRICKET_API_BASE_URL", DefaultCricketAPIBaseURL)),
		// Read verbatim; an unset key is sent as an empty userkey value.
		CricketAPIKey:     os.Getenv(EnvCricketAPIKey),
		CricketAPITimeout: apiTimeout,
		MatchID:           strings.TrimSpace(getEnv("CRICKET_MATCH_ID", matchdata.DefaultMatchID)),
		DataDirName:       strings.TrimSpace(getEnv("CRICKET_DATA_DIR", matchdata.DefaultDataDirName)),
		DataAnchor:        anchor,
		Endpoints:         endpoints,
		UptraceEnabled:    uptraceEnabled,
		UptraceDSN:        uptraceDSN,
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

// parseEndpoints accepts an optional JSON array of endpoint names; empty keeps the defaults.
func parseEndpoints(raw string) ([]string, error) {
	if strings.TrimSpace(raw) == "" {
		return matchdata.Endpoints(), nil
	}

	var items []string
	if err := sonic.UnmarshalString(raw, &items); err != nil {
		return nil, err
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		name := strings.TrimSpace(item)
		if name == "" {
			return nil, fmt.Errorf("endpoint name cannot be empty")
		}
		out = append(out, name)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("at least one endpoint is required")
	}
	return out, nil
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

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
