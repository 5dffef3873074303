package cli

import (
	"fmt"

	catalogAdapter "github.com/ccwkit/ccwkit/internal/adapters/outbound/catalog"
	"github.com/ccwkit/ccwkit/internal/application"
	"github.com/spf13/cobra"
)

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect and validate survey catalogs",
	}
	cmd.AddCommand(newCatalogValidateCmd())
	cmd.AddCommand(newCatalogShowCmd())
	return cmd
}

func newCatalogValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [catalog-file]",
		Short: "Validate a catalog file's structural integrity",
		Long:  "Check that every item references a known dimension, no dimension is empty, item IDs are unique, and the profile tables are consistent. Without an argument the embedded catalog is checked.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}

			svc := application.NewAssessService(catalogAdapter.New())
			cat, err := svc.LoadCatalog(path)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "catalog OK: %d dimensions, %d items, %d mapped combinations\n",
				len(cat.Dimensions), len(cat.Items), len(cat.Profiles.Combinations))
			return nil
		},
	}
}

func newCatalogShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [catalog-file]",
		Short: "List a catalog's dimensions and items",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}

			svc := application.NewAssessService(catalogAdapter.New())
			cat, err := svc.LoadCatalog(path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (scale %d-%d, top-%d)\n\n", cat.Name, cat.Scale.Min, cat.Scale.Max, cat.Selection.TopK)
			for _, d := range cat.Dimensions {
				fmt.Fprintf(out, "%s (%s)\n", d.DisplayLabel(), d.ID)
				for _, it := range cat.ItemsFor(d.ID) {
					marker := " "
					if it.Reverse {
						marker = "R"
					}
					fmt.Fprintf(out, "  %s %-4s %s\n", marker, it.ID, it.Text)
				}
			}
			return nil
		},
	}
}
