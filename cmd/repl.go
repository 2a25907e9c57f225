// Copyright © 2026 The svgls authors

package cmd

import (
	"os"
	"path/filepath"

	"github.com/luthersystems/svgls/repl"
	"github.com/spf13/cobra"
)

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Type SVG markup interactively with TAB completion",
	Long: `Start an interactive SVG scratchpad.

Each line you enter is appended to a document. Press TAB after '<', after
a space inside a start tag, or after '=' or '"' to complete against the
document typed so far. Line editing and command history are supported via
readline. Use Ctrl-D or :quit to exit.

Example session:
  svgls> <svg>
  svgls>   <linearGradient id="g">
  svgls>     <
  svgls> :complete
  stop
  animate
  set
  ...`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		catalog, err := loadCatalog()
		if err != nil {
			return err
		}
		return repl.RunRepl(filepath.Base(os.Args[0])+"> ",
			repl.WithCatalog(catalog),
			repl.WithTimeout(completionTimeout()),
		)
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
