package controller

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewUI returns the styled TUI for interactive terminals and the plain
// SimpleUI otherwise.
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if !useTTY {
		return NewSimpleUI(cmd)
	}

	return NewTUI(cmd.OutOrStdout())
}

// IsTTY reports whether w is an interactive terminal. Pipes, regular files
// and character devices such as /dev/null are not.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
