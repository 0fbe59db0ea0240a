package config

import (
	"os"
	"strconv"
	"time"
)

// Timeouts holds all configurable timeout values.
// These values can be customized via environment variables.
type Timeouts struct {
	DiskCreate        time.Duration // Timeout for disk creation operations
	InstanceCreate    time.Duration // Timeout for instance creation operations
	Delete            time.Duration // Timeout for all delete operations
	List              time.Duration // Timeout for listing operations
	RetryMaxAttempts  int           // Maximum number of retry attempts
	RetryInitialDelay time.Duration // Initial delay between retries
}

// LoadTimeouts loads timeout configuration from environment variables.
// If an environment variable is not set or invalid, a default value is used.
//
// Environment Variables:
//   - GRIDUP_TIMEOUT_DISK_CREATE (default: 5m)
//   - GRIDUP_TIMEOUT_INSTANCE_CREATE (default: 10m)
//   - GRIDUP_TIMEOUT_DELETE (default: 5m)
//   - GRIDUP_TIMEOUT_LIST (default: 60s)
//   - GRIDUP_RETRY_MAX_ATTEMPTS (default: 5)
//   - GRIDUP_RETRY_INITIAL_DELAY (default: 1s)
func LoadTimeouts() *Timeouts {
	return &Timeouts{
		DiskCreate:        parseDuration("GRIDUP_TIMEOUT_DISK_CREATE", 5*time.Minute),
		InstanceCreate:    parseDuration("GRIDUP_TIMEOUT_INSTANCE_CREATE", 10*time.Minute),
		Delete:            parseDuration("GRIDUP_TIMEOUT_DELETE", 5*time.Minute),
		List:              parseDuration("GRIDUP_TIMEOUT_LIST", 60*time.Second),
		RetryMaxAttempts:  parseInt("GRIDUP_RETRY_MAX_ATTEMPTS", 5),
		RetryInitialDelay: parseDuration("GRIDUP_RETRY_INITIAL_DELAY", 1*time.Second),
	}
}

// parseDuration parses a duration from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseDuration(envVar string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}

	return d
}

// parseInt parses an integer from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseInt(envVar string, defaultVal int) int {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}

	return i
}
