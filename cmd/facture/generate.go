package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/diewo77/go-facture/internal/models"
)

var (
	generateType     string
	generateCustomer string
	generateNumber   string
	generateAuto     bool
	generateNotes    string
	generateOut      string
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate <quote.json>",
	Short: "Generate a document from an imported quote file",
	Long: `Import a quote JSON file, build the document and write its JSON + PDF
pair into the output directory. Without --number or --auto-number the
document stays a draft and gets a unique draft file stem.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc := newService()

		doc, err := svc.ImportQuote(args[0])
		if err != nil {
			fatal("Failed to import quote", err)
		}
		slog.Debug("quote imported", "lines", len(doc.Lines), "customer", doc.Customer.Name)

		if generateType == string(models.TypeInvoice) {
			doc.Type = models.TypeInvoice
		}
		if generateCustomer != "" {
			doc.Customer.Name = generateCustomer
		}
		doc.Notes = generateNotes

		switch {
		case generateNumber != "":
			doc.Number = generateNumber
		case generateAuto:
			if err := svc.AssignNumber(doc); err != nil {
				fatal("Failed to assign number", err)
			}
		}

		outDir := generateOut
		if outDir == "" {
			outDir = defaultOutDir()
		}
		jsonPath, pdfPath, err := svc.Generate(doc, outDir)
		if err != nil {
			fatal("Failed to generate document", err)
		}

		fmt.Printf("Wrote %s\n", jsonPath)
		fmt.Printf("Wrote %s\n", pdfPath)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVarP(&generateType, "type", "t", string(models.TypeQuote), "Document type (quote or invoice)")
	generateCmd.Flags().StringVarP(&generateCustomer, "customer", "c", "", "Override the customer name from the quote file")
	generateCmd.Flags().StringVarP(&generateNumber, "number", "n", "", "Document number")
	generateCmd.Flags().BoolVar(&generateAuto, "auto-number", false, "Draw the next number from the sequence")
	generateCmd.Flags().StringVarP(&generateNotes, "notes", "m", "", "Free-form notes printed after the totals")
	generateCmd.Flags().StringVarP(&generateOut, "out", "o", "", "Output directory")
}
