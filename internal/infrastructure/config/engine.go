package config

import "time"

// EngineConfig holds the alternate native engine configuration
type EngineConfig struct {
	// Binary is the native engine executable, a name on PATH or a full
	// path. The engine stays unavailable while this does not resolve.
	Binary string `mapstructure:"binary"`

	// Timeout bounds one native engine call (0 = unbounded)
	Timeout time.Duration `mapstructure:"timeout"`

	// FallbackMix is substituted when the native result cannot be decoded
	FallbackMix []string `mapstructure:"fallback_mix"`
}
