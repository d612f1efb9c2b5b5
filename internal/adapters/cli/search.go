package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	appsearch "github.com/DrakeCaesar/scheduleI/internal/application/search"
	"github.com/DrakeCaesar/scheduleI/internal/application/search/commands"
	"github.com/DrakeCaesar/scheduleI/pkg/utils"
)

// NewSearchCommand creates the search command
func NewSearchCommand() *cobra.Command {
	var (
		product string
		depth   int
		engine  string
		compare bool
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Run an exhaustive mix search for a product",
		Long: `Run an exhaustive search over every substance sequence up to the depth
bound and print the most profitable mix.

The search space grows as S^depth (16 substances by default), so depths
beyond 5 take a while. Progress is reported on stderr; press Enter to
pause or resume, Ctrl+C to stop and print the best mix found so far.

Examples:
  scheduleI search --product "OG Kush" --depth 4
  scheduleI search --product Meth --depth 3 --engine native
  scheduleI search --product Cocaine --depth 3 --compare`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(product, depth, engine, compare)
		},
	}

	cmd.Flags().StringVar(&product, "product", "", "Product variety to mix into (required)")
	cmd.Flags().IntVar(&depth, "depth", 0, "Maximum mix length (default from config)")
	cmd.Flags().StringVar(&engine, "engine", "", "Engine to run: parallel, native or reference (default: parallel)")
	cmd.Flags().BoolVar(&compare, "compare", false, "Run every engine and compare their results")
	_ = cmd.MarkFlagRequired("product")

	return cmd
}

func runSearch(product string, depth int, engineName string, compare bool) error {
	app, err := newApp(true)
	if err != nil {
		return err
	}
	defer app.Close()

	if depth <= 0 {
		depth = app.Config.Search.DefaultDepth
	}

	// Ctrl+C cancels the context; the run handler stops the session and
	// the best-so-far still comes back through the engine.
	ctx, stop := signal.NotifyContext(app.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if compare {
		return runComparison(ctx, app, product, depth)
	}

	progressDone := startProgressDisplay(ctx, app, engineName)
	startToggleListener(ctx, app, engineName)
	response, err := app.Mediator.Send(ctx, commands.RunSearchCommand{
		Product:  product,
		MaxDepth: depth,
		Engine:   engineName,
	})
	progressDone()
	if err != nil {
		return err
	}

	result := response.(commands.RunSearchResult)
	displayRunResult(result)
	return nil
}

func runComparison(ctx context.Context, app *App, product string, depth int) error {
	response, err := app.Mediator.Send(ctx, commands.CompareSearchCommand{
		Product:  product,
		MaxDepth: depth,
		Engines:  app.Registry.EngineNames(),
	})
	if err != nil {
		return err
	}

	result := response.(commands.CompareSearchResult)
	for _, run := range result.Runs {
		fmt.Printf("Engine %-10s profit %.2f  mix %s  (%s)\n",
			run.Engine,
			run.Best.Profit,
			formatMix(run.Best.Mix),
			run.Snapshot.Summary.Elapsed.Round(time.Millisecond))
	}
	if result.Agree {
		fmt.Println("Engines agree on the best profit.")
	} else {
		fmt.Println("WARNING: engines disagree on the best profit.")
	}
	return nil
}

// startToggleListener pauses or resumes the running search when the user
// presses Enter. The goroutine stays blocked on stdin after the search ends;
// process exit reclaims it.
func startToggleListener(ctx context.Context, app *App, engineName string) {
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			if ctx.Err() != nil {
				return
			}
			if _, err := app.Mediator.Send(ctx, commands.ToggleSearchCommand{Engine: engineName}); err != nil {
				app.Logger.Log("WARN", "toggle failed", map[string]interface{}{"error": err.Error()})
			}
		}
	}()
}

// startProgressDisplay polls the engine snapshot on an interval and rewrites
// one status line on stderr. The returned func stops the display and clears
// the line.
func startProgressDisplay(ctx context.Context, app *App, engineName string) func() {
	engine, err := app.Registry.Engine(engineName)
	if err != nil {
		return func() {}
	}

	displayCtx, cancel := context.WithCancel(ctx)
	stopped := make(chan struct{})

	go func() {
		defer close(stopped)
		ticker := time.NewTicker(500 * time.Millisecond)
		defer ticker.Stop()

		for {
			select {
			case <-displayCtx.Done():
				return
			case <-ticker.C:
				snap := engine.Progress()
				if snap.Summary.GrandTotal == 0 {
					continue
				}
				best := engine.BestResult()
				fmt.Fprintf(os.Stderr, "\r%-7s %5.1f%%  best %.2f  elapsed %s   ",
					strings.ToLower(string(snap.Status)),
					utils.Clamp01(snap.Summary.Ratio)*100,
					best.Profit,
					snap.Summary.Elapsed.Round(time.Second))
			}
		}
	}()

	return func() {
		cancel()
		<-stopped
		fmt.Fprint(os.Stderr, "\r\033[K")
	}
}

func displayRunResult(result commands.RunSearchResult) {
	fmt.Printf("Best mix for %s (depth %d):\n", result.Snapshot.Product, result.Snapshot.Depth)
	fmt.Printf("  Mix:    %s\n", formatMix(result.Best.Mix))
	fmt.Printf("  Profit: %.2f\n", result.Best.Profit)
	fmt.Printf("  Status: %s\n", result.Snapshot.Status)
	fmt.Printf("  Sequences: %d of %d in %s\n",
		result.Snapshot.Summary.Processed,
		result.Snapshot.Summary.GrandTotal,
		result.Snapshot.Summary.Elapsed.Round(time.Millisecond))
	if len(result.Snapshot.Workers) > 1 && verbose {
		displayWorkerTable(result.Snapshot)
	}
}

func displayWorkerTable(snap appsearch.Snapshot) {
	fmt.Println("  Workers:")
	for name, progress := range snap.Workers {
		fmt.Printf("    %-14s %d/%d\n", name, progress.TotalProcessed, progress.GrandTotal)
	}
}
