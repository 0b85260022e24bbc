package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/diewo77/go-facture/internal/store"
)

var finalizeOut string

// finalizeCmd represents the finalize command
var finalizeCmd = &cobra.Command{
	Use:   "finalize <document.json>",
	Short: "Turn a draft into a numbered invoice",
	Long: `Read a previously generated draft JSON, assign the next invoice number
and write the final JSON + PDF pair. Finalizing is one-way: an already
numbered invoice is refused.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc := newService()

		doc, err := store.ReadDocument(args[0])
		if err != nil {
			fatal("Failed to read document", err)
		}
		if err := svc.Finalize(doc); err != nil {
			fatal("Failed to finalize", err)
		}

		outDir := finalizeOut
		if outDir == "" {
			outDir = filepath.Dir(args[0])
		}
		jsonPath, pdfPath, err := svc.Generate(doc, outDir)
		if err != nil {
			fatal("Failed to generate document", err)
		}

		fmt.Printf("Invoice %s\n", doc.Number)
		fmt.Printf("Wrote %s\n", jsonPath)
		fmt.Printf("Wrote %s\n", pdfPath)
	},
}

func init() {
	rootCmd.AddCommand(finalizeCmd)
	finalizeCmd.Flags().StringVarP(&finalizeOut, "out", "o", "", "Output directory (defaults to the input's directory)")
}
