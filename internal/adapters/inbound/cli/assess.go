package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/ccwkit/ccwkit/internal/adapters/outbound/answers"
	"github.com/ccwkit/ccwkit/internal/adapters/outbound/catalog"
	"github.com/ccwkit/ccwkit/internal/adapters/outbound/gitinfo"
	"github.com/ccwkit/ccwkit/internal/adapters/outbound/history"
	"github.com/ccwkit/ccwkit/internal/adapters/outbound/tui"
	"github.com/ccwkit/ccwkit/internal/application"
	"github.com/ccwkit/ccwkit/internal/domain"
	"github.com/spf13/cobra"
)

func newAssessCmd() *cobra.Command {
	var (
		catalogPath string
		topK        int
		jsonOutput  bool
		showHistory bool
	)

	cmd := &cobra.Command{
		Use:   "assess [answers-file]",
		Short: "Score a completed response set and resolve its profile",
		Long:  "Score a YAML answers file against the catalog, rank dimensions, and resolve the narrative profile. Without a --catalog flag the embedded CCW instrument is used.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			envCfg := loadEnvConfig()
			if catalogPath == "" {
				catalogPath = envCfg.Catalog
			}
			if topK == 0 {
				topK = envCfg.TopK
			}

			hist := history.New()

			if showHistory {
				entries, err := hist.Load(".")
				if err != nil {
					return fmt.Errorf("loading history: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
				return nil
			}

			if len(args) == 0 {
				return fmt.Errorf("an answers file is required (or use `ccwkit run` for an interactive session)")
			}

			responses, err := answers.Load(args[0])
			if err != nil {
				return err
			}

			svc := application.NewAssessService(catalog.New())
			cat, err := svc.LoadCatalog(catalogPath)
			if err != nil {
				return err
			}

			report, err := svc.Assess(cat, responses, topK)
			if err != nil {
				return err
			}

			// Attach the catalog's commit hash if it lives in a git repo.
			if catalogPath != "" {
				gi := gitinfo.New()
				if hash, err := gi.CommitHash(filepath.Dir(catalogPath)); err == nil {
					report.CatalogHash = hash
				}
			}

			entry := domain.ReportEntry{
				Timestamp:   time.Now().Format(time.RFC3339),
				CatalogHash: report.CatalogHash,
				ProfileID:   report.ProfileID,
				Top:         report.Top,
			}
			_ = hist.Save(".", entry) // best-effort

			if jsonOutput {
				return renderJSON(cmd, report)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report))
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Catalog file (defaults to the embedded CCW instrument)")
	cmd.Flags().IntVar(&topK, "top", 0, "Number of top dimensions to select (defaults to the catalog's setting)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the report as JSON")
	cmd.Flags().BoolVar(&showHistory, "history", false, "Show report history")

	return cmd
}

func renderJSON(cmd *cobra.Command, report *domain.Report) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
