package env

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from .env files.
// ENV_PATH, when set, replaces the default paths.
// Outside local mode a missing file is not an error.
func LoadDotEnv(env string, defaultPaths ...string) error {
	paths := defaultPaths
	if p := os.Getenv("ENV_PATH"); p != "" {
		paths = []string{p}
	} else {
		slog.Debug("ENV_PATH is not set, using default paths", "defaultPaths", defaultPaths)
	}

	if err := godotenv.Load(paths...); err != nil {
		if env == "local" {
			slog.Error("Failed to load environment variables in local mode", "error", err)
			return err
		}
		slog.Debug("Skipping .env ...", "error", err)
	}

	return nil
}

// String returns the value of key, or def when unset or empty.
func String(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Uint64 returns key parsed as an unsigned integer, or def when unset or invalid.
func Uint64(key string, def uint64) uint64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		slog.Warn("Ignoring invalid numeric environment variable", "key", key, "value", v)
		return def
	}
	return n
}
