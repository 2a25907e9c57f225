// Copyright © 2026 The svgls authors

package cmd

import (
	"fmt"

	"github.com/luthersystems/svgls/lsp"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

// LSPCommand creates the "lsp" cobra command.
func LSPCommand() *cobra.Command {
	var (
		stdio     bool
		port      int
		websocket string
	)

	cmd := &cobra.Command{
		Use:   "lsp [flags]",
		Short: "Start the SVG Language Server Protocol server",
		Long: `Start an LSP server for SVG documents.

The language server completes element names, attribute names and
enumerated attribute values, documents elements and attributes on hover,
and reports the element outline and folding ranges of each document.

Completion items carry cursor commands. Items that leave the cursor inside
the inserted text use the client command "_svg.moveCursor" with a negative
character offset; attribute items add a second argument telling the client
whether value completion should be triggered next. Block elements use the
built-in "cursorUp" command.

Transport modes:
  --stdio           Use stdin/stdout for LSP communication (default)
  --port N          Listen for an LSP client on TCP port N
  --websocket ADDR  Accept LSP clients over WebSocket on ADDR

Examples:
  svgls lsp                          Start with stdio transport
  svgls lsp --port 7998              Start with TCP on port 7998
  svgls lsp --websocket :8080        Serve browser-based editors`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			catalog, err := loadCatalog()
			if err != nil {
				return err
			}
			srv := lsp.New(
				lsp.WithCatalog(catalog),
				lsp.WithCompletionTimeout(completionTimeout()),
			)

			log := commonlog.GetLogger("svgls")
			switch {
			case stdio:
				err = srv.RunStdio()
			case port > 0:
				addr := fmt.Sprintf("localhost:%d", port)
				log.Noticef("SVG LSP server listening on %s", addr)
				err = srv.RunTCP(addr)
			case websocket != "":
				log.Noticef("SVG LSP server accepting WebSocket clients on %s", websocket)
				err = srv.RunWebSocket(websocket)
			default:
				err = srv.RunStdio()
			}
			if err != nil {
				return fmt.Errorf("lsp server error: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&stdio, "stdio", false,
		"Use stdin/stdout for LSP communication (default behavior)")
	cmd.Flags().IntVar(&port, "port", 0,
		"TCP port for LSP server (use instead of --stdio)")
	cmd.Flags().StringVar(&websocket, "websocket", "",
		"address for a WebSocket LSP server, e.g. :8080")
	cmd.MarkFlagsMutuallyExclusive("stdio", "port", "websocket")

	return cmd
}

func init() {
	rootCmd.AddCommand(LSPCommand())
}
