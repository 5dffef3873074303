package cli

import "github.com/spf13/cobra"

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "ccwkit",
		Short:         "Know what you bring",
		Long:          "CCWKit administers a community-cultural-wealth strengths survey, scores it locally, and resolves a narrative profile from your top dimensions.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newAssessCmd())
	cmd.AddCommand(newRunCmd())
	cmd.AddCommand(newCatalogCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
