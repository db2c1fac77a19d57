// Package config provides configuration loading from environment variables.
package config

import (
	"os"
	"strconv"
)

// Defaults for check processing.
const (
	DefaultCheckWorkersValue     = 8
	DefaultSelectMaxResultsValue = 10000
)

// Config holds all configuration for the vex CLI.
type Config struct {
	CheckWorkers     int // VEX_CHECK_WORKERS, default 8
	SelectMaxResults int // VEX_SELECT_MAX_RESULTS, default 10000

	// Logging configuration
	LogLevel      string // VEX_LOG_LEVEL, default "info"
	LogFile       string // VEX_LOG_FILE, default "" (stderr only)
	LogMaxSizeMB  int    // VEX_LOG_MAX_SIZE_MB, default 10
	LogMaxBackups int    // VEX_LOG_MAX_BACKUPS, default 3
	LogMaxAgeDays int    // VEX_LOG_MAX_AGE_DAYS, default 28
	LogCompress   bool   // VEX_LOG_COMPRESS, default true
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		CheckWorkers:     getEnvInt("VEX_CHECK_WORKERS", DefaultCheckWorkersValue),
		SelectMaxResults: getEnvInt("VEX_SELECT_MAX_RESULTS", DefaultSelectMaxResultsValue),

		LogLevel:      getEnvString("VEX_LOG_LEVEL", "info"),
		LogFile:       getEnvString("VEX_LOG_FILE", ""),
		LogMaxSizeMB:  getEnvInt("VEX_LOG_MAX_SIZE_MB", 10),
		LogMaxBackups: getEnvInt("VEX_LOG_MAX_BACKUPS", 3),
		LogMaxAgeDays: getEnvInt("VEX_LOG_MAX_AGE_DAYS", 28),
		LogCompress:   getEnvBool("VEX_LOG_COMPRESS", true),
	}
}

func getEnvBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		switch v {
		case "1", "true", "yes", "on":
			return true
		case "0", "false", "no", "off":
			return false
		}
	}
	return defaultVal
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}
