package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diewo77/go-facture/internal/importer"
	"github.com/diewo77/go-facture/internal/money"
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import <quote.json>",
	Short: "Preview an imported quote without generating anything",
	Long: `Parse a quote JSON file and print the lines that survived the import,
with their computed totals. Lines missing a required key are dropped
silently, exactly as generate would drop them.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		q, err := importer.ParseQuoteFile(args[0])
		if err != nil {
			fatal("Failed to import quote", err)
		}

		if q.Customer.Name != "" {
			fmt.Printf("Customer: %s\n", q.Customer.Name)
		}
		totals := make([]float64, 0, len(q.Lines))
		for _, li := range q.Lines {
			total := li.TotalHT()
			totals = append(totals, total)
			fmt.Printf("%-12s %-30s %8.2f x %8.2f = %10.2f\n",
				li.ItemKey, li.Description, li.Quantity, li.UnitPrice, total)
		}
		fmt.Printf("%d line(s), subtotal %.2f\n", len(q.Lines), money.Sum(totals...))
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
