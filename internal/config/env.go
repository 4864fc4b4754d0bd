package config

import (
	"strings"
)

// EnvPrefix is the prefix of every blocksel environment variable.
const EnvPrefix = "BLOCKSEL_"

// LookupFunc looks up an environment variable, like os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// ApplyEnv overrides cfg with BLOCKSEL_* variables:
//
//	BLOCKSEL_DIAGNOSTICS  diagnostics
//	BLOCKSEL_LOG_LEVEL    log.level
//	BLOCKSEL_LOG_PREFIX   log.prefix
//	BLOCKSEL_UNIT         document.unit
//	BLOCKSEL_VALIDATE     document.validate
//
// Empty values are treated as unset.
func ApplyEnv(cfg *Config, lookup LookupFunc) error {
	if lookup == nil {
		return nil
	}
	lookup = nonEmpty(lookup)

	if v, ok := lookup(EnvPrefix + "DIAGNOSTICS"); ok {
		b, ok := parseBool(v)
		if !ok {
			return &ValueError{Key: EnvPrefix + "DIAGNOSTICS", Value: v}
		}
		cfg.Diagnostics = b
	}
	if v, ok := lookup(EnvPrefix + "LOG_LEVEL"); ok {
		cfg.Log.Level = v
	}
	if v, ok := lookup(EnvPrefix + "LOG_PREFIX"); ok {
		cfg.Log.Prefix = v
	}
	if v, ok := lookup(EnvPrefix + "UNIT"); ok {
		cfg.Document.Unit = v
	}
	if v, ok := lookup(EnvPrefix + "VALIDATE"); ok {
		b, ok := parseBool(v)
		if !ok {
			return &ValueError{Key: EnvPrefix + "VALIDATE", Value: v}
		}
		cfg.Document.Validate = b
	}
	return nil
}

func parseBool(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "on", "1":
		return true, true
	case "false", "no", "off", "0":
		return false, true
	default:
		return false, false
	}
}

// nonEmpty wraps lookup so that variables set to "" report unset.
func nonEmpty(lookup LookupFunc) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := lookup(key)
		if !ok || strings.TrimSpace(v) == "" {
			return "", false
		}
		return v, true
	}
}
