package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/dgallion1/pdfwiki/internal/config"
	"github.com/dgallion1/pdfwiki/internal/extract"
	"github.com/dgallion1/pdfwiki/internal/preview"
	"github.com/dgallion1/pdfwiki/internal/site"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	rootCmd := &cobra.Command{
		Use:   "pdfwiki",
		Short: "Static wiki generator for PDF documents",
		Long: `pdfwiki converts a directory of PDF documents into a static HTML
knowledge base: one page per document, an index with searchable cards,
and a dedicated arrests/fines page extracted from the law enforcement
guide. The output directory is rebuilt from scratch on every run.`,
		Version: version,
	}

	rootCmd.AddCommand(buildCmd(log))
	rootCmd.AddCommand(serveCmd(log))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func buildCmd(log *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Generate the site from the documents directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if err := cfg.Validate(); err != nil {
				log.Error("invalid configuration", "error", err)
				return err
			}

			ext := &extract.PDFExtractor{
				FallbackPdftotext: cfg.PDFFallbackPdftotext,
				Log:               log,
			}
			b := site.NewBuilder(cfg, ext, log)
			if err := b.Build(); err != nil {
				log.Error("build failed", "error", err)
				return err
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
}

func serveCmd(log *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the generated site locally",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if _, err := os.Stat(cfg.OutputDir); err != nil {
				err = fmt.Errorf("no generated site at %s, run build first", cfg.OutputDir)
				log.Error("cannot serve", "error", err)
				return err
			}

			srv := &http.Server{
				Addr:         ":" + cfg.Port,
				Handler:      preview.NewHandler(cfg.OutputDir, cfg.BasePath, log),
				ReadTimeout:  10 * time.Second,
				WriteTimeout: 30 * time.Second,
				IdleTimeout:  60 * time.Second,
			}

			log.Info("serving site", "port", cfg.Port, "dir", cfg.OutputDir, "base_path", cfg.BasePath)
			return srv.ListenAndServe()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
}
