package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DrakeCaesar/scheduleI/internal/infrastructure/config"
)

// NewConfigCommand creates the config command with subcommands
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration settings",
		Long: `Manage configuration settings.

Configuration is loaded from multiple sources with priority:
1. Environment variables (SCHEDI_* prefix)
2. Config file (config.yaml)
3. Default values

Example:
  scheduleI config show`,
	}

	cmd.AddCommand(newConfigShowCommand())

	return cmd
}

// newConfigShowCommand creates the config show subcommand
func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				fmt.Printf("Warning: failed to load config: %v\n", err)
				fmt.Println("Using default configuration.")
				cfg = config.LoadConfigOrDefault(configPath)
			}

			fmt.Println("Search:")
			fmt.Printf("  Default depth:      %d\n", cfg.Search.DefaultDepth)
			fmt.Printf("  Progress interval:  %s\n", cfg.Search.ProgressInterval)
			if cfg.Search.CatalogPath != "" {
				fmt.Printf("  Catalog file:       %s\n", cfg.Search.CatalogPath)
			} else {
				fmt.Println("  Catalog file:       (built-in tables)")
			}

			fmt.Println("Engine:")
			fmt.Printf("  Binary:             %s\n", cfg.Engine.Binary)
			if cfg.Engine.Timeout > 0 {
				fmt.Printf("  Timeout:            %s\n", cfg.Engine.Timeout)
			} else {
				fmt.Println("  Timeout:            (none)")
			}
			fmt.Printf("  Fallback mix:       %v\n", cfg.Engine.FallbackMix)

			fmt.Println("Database:")
			fmt.Printf("  Type:               %s\n", cfg.Database.Type)
			if cfg.Database.Type == "sqlite" {
				fmt.Printf("  Path:               %s\n", cfg.Database.Path)
			} else {
				fmt.Printf("  Host:               %s:%d\n", cfg.Database.Host, cfg.Database.Port)
				fmt.Printf("  Name:               %s\n", cfg.Database.Name)
			}

			fmt.Println("Metrics:")
			fmt.Printf("  Enabled:            %v\n", cfg.Metrics.Enabled)
			if cfg.Metrics.Enabled {
				fmt.Printf("  Endpoint:           http://%s:%d%s\n", cfg.Metrics.Host, cfg.Metrics.Port, cfg.Metrics.Path)
			}

			fmt.Println("Logging:")
			fmt.Printf("  Level:              %s\n", cfg.Logging.Level)
			fmt.Printf("  Output:             %s\n", cfg.Logging.Output)

			return nil
		},
	}
}
