package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/diewo77/go-facture/internal/config"
	"github.com/diewo77/go-facture/internal/i18n"
	"github.com/diewo77/go-facture/internal/pdf"
	"github.com/diewo77/go-facture/internal/services"
)

var (
	verbose    bool
	configPath string
	lang       string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "facture",
	Short: "Generate quotes and invoices as JSON + PDF pairs",
	Long: `Facture builds quote and invoice documents from imported quote files
or the configured item catalog, and renders each one as a JSON document
next to its paginated PDF.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the configuration file")
	rootCmd.PersistentFlags().StringVar(&lang, "lang", "", "Document language (fr or en)")
}

func configManager() *config.Manager {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	return config.NewManager(path)
}

func documentLang() string {
	if lang != "" {
		return i18n.DetectLanguage(lang)
	}
	return i18n.DetectLanguage(os.Getenv("LANG"))
}

func newService() *services.DocumentService {
	return services.NewDocumentService(configManager(), pdf.DefaultGeometry(), documentLang())
}

func defaultOutDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return config.EnvOr("FACTURE_OUT", filepath.Join(home, "Documents", "Factures"))
}
