package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/solscan/internal/domain"
	m "github.com/mouse-blink/solscan/internal/model"
)

// importsCmd represents the imports command.
var importsCmd = newImportsCmd()
var importsExcludeFlags []string

func newImportsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "imports <project-root>",
		Short: "Verify every external import has an API verification document",
		Long: `Collects external imports from Python, JavaScript/TypeScript and Rust files
and checks each one against the markdown documents in docs/api-verification,
docs/api-verifications, docs/verified-apis or .api-verification.

Exits with status 1 when any import is unverified.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			return workflow.VerifyImports(cmd.Context(), domain.ImportArgs{
				Root:    m.Path(args[0]),
				Exclude: importsExcludeFlags,
			})
		},
	}
	cmd.Flags().StringArrayVarP(&importsExcludeFlags, "exclude", "x", nil, "additional directory name to skip (can be repeated)")

	return cmd
}

func init() {
	rootCmd.AddCommand(importsCmd)
}
