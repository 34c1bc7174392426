// Package cmd provides the root command and CLI setup for solscan.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/mouse-blink/solscan/internal/adapter"
	"github.com/mouse-blink/solscan/internal/controller"
	"github.com/mouse-blink/solscan/internal/domain"
	"github.com/mouse-blink/solscan/internal/logging"
	m "github.com/mouse-blink/solscan/internal/model"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fsAdapter adapter.SourceFSAdapter
var configStore adapter.ConfigStore
var workflow domain.Workflow
var ui controller.UI
var logLevel = zap.NewAtomicLevelAt(zap.WarnLevel)

func init() {
	log, err := logging.New(logLevel)
	if err != nil {
		log = logging.Nop()
	}

	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	configStore = adapter.NewConfigStore()
	workflow = domain.NewWorkflow(fsAdapter, configStore, ui, log)
}

var verboseFlag bool
var configFlag string
var parallelFlag int
var timeoutFlag time.Duration
var excludeFlags []string
var disableFlags []string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solscan <project-root>",
		Short: "Scan a project for SOLARIA antipatterns",
		Long: `Solscan walks a source tree, applies the SOLARIA antipattern rules to every
source file and reports findings ranked by severity.

The exit status is 1 when any CRITICAL rule fires, when the root does not
exist, or when arguments are missing; otherwise it is 0.

Related checks:
  solscan imports <root>    verify external imports are documented
  solscan spec <file>...    validate specification documents
  solscan rules             list the antipattern catalog`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if verboseFlag {
				logLevel.SetLevel(zap.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			return workflow.Scan(cmd.Context(), domain.ScanArgs{
				Root:       m.Path(args[0]),
				ConfigPath: m.Path(configFlag),
				Parallel:   parallelFlag,
				Timeout:    timeoutFlag,
				Exclude:    excludeFlags,
				Disable:    disableFlags,
			})
		},
	}
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "log diagnostics such as skipped files to stderr")
	cmd.Flags().StringVarP(&configFlag, "config", "c", "", "path to a YAML config file (default <root>/.solscan.yaml when present)")
	cmd.Flags().IntVarP(&parallelFlag, "parallel", "p", 0, "number of files scanned concurrently (default number of CPUs)")
	cmd.Flags().DurationVar(&timeoutFlag, "timeout", 0, "abort the scan after this long (0 disables the deadline)")
	cmd.Flags().StringArrayVarP(&excludeFlags, "exclude", "x", nil, "additional directory name to skip (can be repeated)")
	cmd.Flags().StringArrayVar(&disableFlags, "disable", nil, "rule id to disable, e.g. ANTI-004 (can be repeated)")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if code := exitCode(err); code != 0 {
		os.Exit(code)
	}
}

// exitCode maps a command error to the process exit status, printing it
// unless it only signals blocking findings already shown in the report.
func exitCode(err error) int {
	if err == nil {
		return 0
	}

	if !errors.Is(err, domain.ErrBlockingIssues) {
		_, _ = fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	}

	return 1
}
