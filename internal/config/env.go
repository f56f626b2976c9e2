package config

import (
	"os"
	"strconv"
)

// ApplyEnv overrides file settings with TODO_* environment variables.
// Unset or unparsable variables leave the current value alone.
func (c *Config) ApplyEnv() {
	if val := os.Getenv("TODO_LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("TODO_LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}
	if val, ok := getEnvBool("TODO_METRICS"); ok {
		c.Metrics.Enabled = val
	}
}

func getEnvBool(key string) (bool, bool) {
	val := os.Getenv(key)
	if val == "" {
		return false, false
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return false, false
	}
	return b, true
}
