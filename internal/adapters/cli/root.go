package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	verbose    bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "scheduleI",
		Short: "Schedule I mix search - find the most profitable substance mix",
		Long: `Schedule I mix search explores every substance sequence up to a depth
bound and reports the mix with the highest sale-price-minus-cost profit.

The parallel engine splits the space across one worker per substance; the
native engine shells out to a separately compiled implementation of the
same search for cross-checking; the reference engine walks the space in a
single goroutine and serves as the correctness oracle.

Examples:
  scheduleI search --product "OG Kush" --depth 4
  scheduleI search --product Meth --depth 3 --engine native
  scheduleI search --product Cocaine --depth 3 --compare
  scheduleI substances
  scheduleI history --limit 10
  scheduleI history best --product "OG Kush"`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")

	// Add command groups
	rootCmd.AddCommand(NewSearchCommand())
	rootCmd.AddCommand(NewSubstancesCommand())
	rootCmd.AddCommand(NewEffectsCommand())
	rootCmd.AddCommand(NewProductsCommand())
	rootCmd.AddCommand(NewHistoryCommand())
	rootCmd.AddCommand(NewConfigCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
