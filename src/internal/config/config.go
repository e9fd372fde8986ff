package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const defaultLogLevel = "info"
const defaultCurrencySymbol = "R$"

type Config struct {
	DatabaseDSN    string
	MigrationsDir  string
	LogLevel       string
	CurrencySymbol string
	ReportRefKey   string
	YieldSeed      uint64
	HasYieldSeed   bool
}

func Load() (Config, error) {
	conn := strings.TrimSpace(os.Getenv("DATABASE_DSN"))
	if conn != "" {
		conn = normalizeConnectionString(conn)
	}

	migrationsDir := strings.TrimSpace(os.Getenv("MIGRATIONS_DIR"))
	if migrationsDir == "" {
		migrationsDir = filepath.Join("src", "migrations")
	}

	logLevel := strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL")))
	if logLevel == "" {
		logLevel = defaultLogLevel
	}

	currency := strings.TrimSpace(os.Getenv("CURRENCY_SYMBOL"))
	if currency == "" {
		currency = defaultCurrencySymbol
	}

	cfg := Config{
		DatabaseDSN:    conn,
		MigrationsDir:  migrationsDir,
		LogLevel:       logLevel,
		CurrencySymbol: currency,
		ReportRefKey:   strings.TrimSpace(os.Getenv("REPORT_REF_KEY")),
	}

	if raw := strings.TrimSpace(os.Getenv("YIELD_SEED")); raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("YIELD_SEED must be an unsigned integer: %w", err)
		}
		cfg.YieldSeed = seed
		cfg.HasYieldSeed = true
	}

	return cfg, nil
}

// ReportsEnabled reports whether aggregate reports can be exported.
func (c Config) ReportsEnabled() bool {
	return c.DatabaseDSN != ""
}

// normalizeConnectionString accepts either an ADO-style "Key=Value;..."
// string or a libpq one and returns the libpq form.
func normalizeConnectionString(raw string) string {
	if !strings.Contains(raw, ";") {
		return raw
	}

	parts := strings.Split(raw, ";")
	out := make([]string, 0, len(parts))
	hasSSLMode := false

	for _, part := range parts {
		p := strings.TrimSpace(part)
		if p == "" {
			continue
		}

		kv := strings.SplitN(p, "=", 2)
		if len(kv) != 2 {
			continue
		}

		key := strings.ToLower(strings.TrimSpace(kv[0]))
		val := strings.TrimSpace(kv[1])

		switch key {
		case "host", "server":
			out = append(out, "host="+val)
		case "port":
			out = append(out, "port="+val)
		case "database":
			out = append(out, "dbname="+val)
		case "username", "user id":
			out = append(out, "user="+val)
		case "password":
			out = append(out, "password="+val)
		case "timeout", "connect timeout":
			out = append(out, "connect_timeout="+val)
		case "commandtimeout", "command timeout":
			out = append(out, "statement_timeout="+val+"s")
		case "sslmode", "ssl mode":
			hasSSLMode = true
			out = append(out, "sslmode="+strings.ToLower(val))
		default:
			out = append(out, key+"="+val)
		}
	}

	if len(out) == 0 {
		return raw
	}

	if !hasSSLMode {
		out = append(out, "sslmode=disable")
	}

	return strings.Join(out, " ")
}
