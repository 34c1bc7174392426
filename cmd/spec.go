package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/solscan/internal/domain"
	m "github.com/mouse-blink/solscan/internal/model"
)

// specCmd represents the spec command.
var specCmd = newSpecCmd()

func newSpecCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spec <spec-file.md>...",
		Short: "Validate specification documents",
		Long: `Checks that each specification document has the required sections
(Overview, Acceptance Criteria, Technical Design, Dependencies, Test Plan)
and reports leftover placeholders as warnings.

Every file is validated independently; the exit status is 1 if any is invalid.

Examples:
  solscan spec docs/specs/user-auth.md
  solscan spec docs/specs/*.md`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			files := make([]m.Path, 0, len(args))
			for _, arg := range args {
				files = append(files, m.Path(arg))
			}

			return workflow.ValidateSpecs(domain.SpecArgs{Files: files})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(specCmd)
}
