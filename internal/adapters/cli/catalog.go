package cli

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewSubstancesCommand creates the substances listing command
func NewSubstancesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "substances",
		Short: "List the substance table",
		Long: `List every substance with its cost, base effect and number of
transformation rules.

Example:
  scheduleI substances`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(false)
			if err != nil {
				return err
			}
			defer app.Close()

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tCOST\tBASE EFFECT\tRULES")
			for _, s := range app.Catalog.Substances() {
				fmt.Fprintf(w, "%s\t%.0f\t%s\t%d\n", s.Name, s.Cost, s.BaseEffect, len(s.Rules))
			}
			return w.Flush()
		},
	}
}

// NewEffectsCommand creates the effects listing command
func NewEffectsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "effects",
		Short: "List the effect multiplier table",
		Long: `List every effect and its sale price multiplier, highest first.

Example:
  scheduleI effects`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(false)
			if err != nil {
				return err
			}
			defer app.Close()

			type row struct {
				name       string
				multiplier float64
			}
			rows := make([]row, 0, len(app.Catalog.Effects()))
			for name, effect := range app.Catalog.Effects() {
				rows = append(rows, row{name, effect.Multiplier})
			}
			sort.Slice(rows, func(i, j int) bool {
				if rows[i].multiplier != rows[j].multiplier {
					return rows[i].multiplier > rows[j].multiplier
				}
				return rows[i].name < rows[j].name
			})

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "EFFECT\tMULTIPLIER")
			for _, r := range rows {
				fmt.Fprintf(w, "%s\t%.2f\n", r.name, r.multiplier)
			}
			return w.Flush()
		},
	}
}

// NewProductsCommand creates the products listing command
func NewProductsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "products",
		Short: "List the product varieties",
		Long: `List every product variety with its base price and initial effect.

Example:
  scheduleI products`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(false)
			if err != nil {
				return err
			}
			defer app.Close()

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tBASE PRICE\tINITIAL EFFECT")
			for _, p := range app.Catalog.Products() {
				initial := p.InitialEffect
				if initial == "" {
					initial = "-"
				}
				fmt.Fprintf(w, "%s\t%.0f\t%s\n", p.Name, p.BasePrice, initial)
			}
			return w.Flush()
		},
	}
}
