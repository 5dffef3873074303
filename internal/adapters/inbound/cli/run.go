package cli

import (
	"bufio"
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/ccwkit/ccwkit/internal/adapters/outbound/catalog"
	"github.com/ccwkit/ccwkit/internal/adapters/outbound/tui"
	"github.com/ccwkit/ccwkit/internal/application"
	"github.com/ccwkit/ccwkit/internal/domain"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	var (
		catalogPath string
		topK        int
		shuffle     bool
		jsonOutput  bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Take the survey interactively in the terminal",
		Long:  "Present every item on the terminal, collect one scale value each, then score, rank and resolve the profile. Results are computed locally and shown immediately.",
		RunE: func(cmd *cobra.Command, args []string) error {
			envCfg := loadEnvConfig()
			if catalogPath == "" {
				catalogPath = envCfg.Catalog
			}
			if topK == 0 {
				topK = envCfg.TopK
			}

			svc := application.NewAssessService(catalog.New())
			cat, err := svc.LoadCatalog(catalogPath)
			if err != nil {
				return err
			}

			responses, err := collectResponses(cmd, cat, shuffle)
			if err != nil {
				return err
			}

			report, err := svc.Assess(cat, responses, topK)
			if err != nil {
				return err
			}

			if jsonOutput {
				return renderJSON(cmd, report)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report))
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Catalog file (defaults to the embedded CCW instrument)")
	cmd.Flags().IntVar(&topK, "top", 0, "Number of top dimensions to select (defaults to the catalog's setting)")
	cmd.Flags().BoolVar(&shuffle, "shuffle", false, "Shuffle the display order of items")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the report as JSON")

	return cmd
}

// collectResponses prompts for every item and returns the responses keyed
// by item ID. Shuffling only changes the order items are shown in; every
// answer is recorded against the item's stable identifier.
func collectResponses(cmd *cobra.Command, cat *domain.Catalog, shuffle bool) (domain.Responses, error) {
	out := cmd.OutOrStdout()
	in := bufio.NewScanner(cmd.InOrStdin())

	fmt.Fprintf(out, "\n%s\n\n", cat.Name)
	for i, label := range cat.Scale.Labels {
		fmt.Fprintf(out, "  %d  %s\n", cat.Scale.Min+i, label)
	}
	fmt.Fprintln(out)

	items := make([]domain.Item, len(cat.Items))
	copy(items, cat.Items)
	if shuffle {
		rand.Shuffle(len(items), func(i, j int) {
			items[i], items[j] = items[j], items[i]
		})
	}

	responses := make(domain.Responses, len(items))
	for i, it := range items {
		fmt.Fprintf(out, "%d/%d  %s\n", i+1, len(items), it.Text)

		for {
			fmt.Fprintf(out, "  [%d-%d]: ", cat.Scale.Min, cat.Scale.Max)
			if !in.Scan() {
				if err := in.Err(); err != nil {
					return nil, fmt.Errorf("reading input: %w", err)
				}
				return nil, fmt.Errorf("input ended before all items were answered")
			}

			v, err := strconv.Atoi(strings.TrimSpace(in.Text()))
			if err != nil || !cat.Scale.Contains(v) {
				fmt.Fprintf(out, "  please enter a number between %d and %d\n", cat.Scale.Min, cat.Scale.Max)
				continue
			}
			responses[it.ID] = v
			break
		}
	}

	return responses, nil
}
