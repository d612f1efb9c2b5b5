package config

import "time"

// SearchConfig holds the parallel search engine configuration
type SearchConfig struct {
	// Default maximum mix length when the user does not pass one
	DefaultDepth int `mapstructure:"default_depth" validate:"min=1,max=10"`

	// Minimum interval between progress reports from one worker
	ProgressInterval time.Duration `mapstructure:"progress_interval"`

	// Optional catalog file; empty means the built-in tables
	CatalogPath string `mapstructure:"catalog_path"`
}
