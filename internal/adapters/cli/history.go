package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	appsearch "github.com/DrakeCaesar/scheduleI/internal/application/search"
	"github.com/DrakeCaesar/scheduleI/internal/application/search/queries"
)

// NewHistoryCommand creates the history command with subcommands
func NewHistoryCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent search runs",
		Long: `List completed search runs from the history database, newest first.

Examples:
  scheduleI history
  scheduleI history --limit 10
  scheduleI history best --product "OG Kush"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistoryList(limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to show")
	cmd.AddCommand(newHistoryBestCommand())

	return cmd
}

func runHistoryList(limit int) error {
	app, err := newApp(true)
	if err != nil {
		return err
	}
	defer app.Close()

	response, err := app.Mediator.Send(app.Context(), queries.SearchHistoryQuery{Limit: limit})
	if err != nil {
		return err
	}

	runs := response.([]appsearch.StoredRun)
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\tENGINE\tPRODUCT\tDEPTH\tPROFIT\tMIX")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.2f\t%s\n",
			run.CreatedAt.Local().Format(time.DateTime),
			run.Engine,
			run.Product,
			run.MaxDepth,
			run.Profit,
			formatMix(run.Mix))
	}
	return w.Flush()
}

// newHistoryBestCommand creates the history best subcommand
func newHistoryBestCommand() *cobra.Command {
	var product string

	cmd := &cobra.Command{
		Use:   "best",
		Short: "Show the most profitable stored run for a product",
		Long: `Show the highest-profit run ever recorded for a product.

Example:
  scheduleI history best --product "OG Kush"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistoryBest(product)
		},
	}

	cmd.Flags().StringVar(&product, "product", "", "Product variety (required)")
	_ = cmd.MarkFlagRequired("product")

	return cmd
}

func runHistoryBest(product string) error {
	app, err := newApp(true)
	if err != nil {
		return err
	}
	defer app.Close()

	response, err := app.Mediator.Send(app.Context(), queries.BestForProductQuery{Product: product})
	if err != nil {
		return err
	}

	run := response.(*appsearch.StoredRun)
	if run == nil {
		fmt.Printf("No runs recorded for %s yet.\n", product)
		return nil
	}

	fmt.Printf("Best recorded mix for %s:\n", run.Product)
	fmt.Printf("  Mix:    %s\n", formatMix(run.Mix))
	fmt.Printf("  Profit: %.2f\n", run.Profit)
	fmt.Printf("  Engine: %s (depth %d, %s)\n", run.Engine, run.MaxDepth, run.Duration.Round(time.Millisecond))
	fmt.Printf("  Date:   %s\n", run.CreatedAt.Local().Format(time.DateTime))
	return nil
}
