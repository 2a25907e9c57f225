// Copyright © 2026 The svgls authors

// Package lsp implements a Language Server Protocol server for SVG
// documents. It provides context-aware completion of element names,
// attribute names and enumerated attribute values, hover documentation,
// an element outline and folding, all driven by a schema catalog.
package lsp

import (
	"os"
	"time"

	"github.com/luthersystems/svgls/complete"
	"github.com/luthersystems/svgls/schema"
	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	glspserver "github.com/tliron/glsp/server"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

const serverName = "svgls"

// DefaultCompletionTimeout bounds a single completion request.
const DefaultCompletionTimeout = 250 * time.Millisecond

// completionTriggers are the characters that open a completion context.
var completionTriggers = []string{"<", " ", `"`, "="}

// Server is the SVG language server.
type Server struct {
	handler  protocol.Handler
	glspSrv  *glspserver.Server
	docs     *DocumentStore
	catalog  *schema.Catalog
	provider *complete.Provider
	log      commonlog.Logger

	// completionTimeout bounds each completion request. Zero disables the
	// bound.
	completionTimeout time.Duration

	// exitFn is called on the LSP exit notification. Defaults to os.Exit.
	// Overridable for testing.
	exitFn func(int)
}

// Option configures the LSP server.
type Option func(*Server)

// WithCatalog replaces the embedded SVG grammar.
func WithCatalog(c *schema.Catalog) Option {
	return func(s *Server) { s.catalog = c }
}

// WithCompletionTimeout sets how long a completion request may scan the
// document before giving up.
func WithCompletionTimeout(d time.Duration) Option {
	return func(s *Server) { s.completionTimeout = d }
}

// WithLogger replaces the server logger.
func WithLogger(log commonlog.Logger) Option {
	return func(s *Server) { s.log = log }
}

// New creates a new SVG LSP server.
func New(opts ...Option) *Server {
	s := &Server{
		docs:              NewDocumentStore(),
		log:               commonlog.GetLogger("svgls.lsp"),
		completionTimeout: DefaultCompletionTimeout,
		exitFn:            os.Exit,
	}
	for _, o := range opts {
		o(s)
	}
	if s.catalog == nil {
		s.catalog = schema.Default()
	}
	s.provider = complete.NewProvider(s.catalog)

	s.handler = protocol.Handler{
		Initialize: s.initialize,
		Shutdown:   s.shutdown,
		Exit:       s.exit,
		SetTrace:   s.setTrace,

		TextDocumentDidOpen:   s.textDocumentDidOpen,
		TextDocumentDidChange: s.textDocumentDidChange,
		TextDocumentDidClose:  s.textDocumentDidClose,

		TextDocumentCompletion:     s.textDocumentCompletion,
		TextDocumentHover:          s.textDocumentHover,
		TextDocumentFoldingRange:   s.textDocumentFoldingRange,
		TextDocumentDocumentSymbol: s.textDocumentDocumentSymbol,
	}

	s.glspSrv = glspserver.NewServer(&s.handler, serverName, false)
	return s
}

// RunStdio starts the server using stdio transport.
func (s *Server) RunStdio() error {
	return s.glspSrv.RunStdio()
}

// RunTCP starts the server listening on the given address.
func (s *Server) RunTCP(addr string) error {
	return s.glspSrv.RunTCP(addr)
}

// RunWebSocket starts the server accepting WebSocket connections on the
// given address.
func (s *Server) RunWebSocket(addr string) error {
	return s.glspSrv.RunWebSocket(addr)
}

// initialize handles the LSP initialize request.
func (s *Server) initialize(_ *glsp.Context, params *protocol.InitializeParams) (any, error) {
	if params.ClientInfo != nil {
		s.log.Infof("initializing for %s", params.ClientInfo.Name)
	}

	capabilities := s.handler.CreateServerCapabilities()

	// Completion re-reads the whole document, so full sync is enough.
	syncKind := protocol.TextDocumentSyncKindFull
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    &syncKind,
	}

	capabilities.CompletionProvider = &protocol.CompletionOptions{
		TriggerCharacters: completionTriggers,
	}

	version := "0.1.0"
	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    serverName,
			Version: &version,
		},
	}, nil
}

// shutdown handles the LSP shutdown request.
func (s *Server) shutdown(_ *glsp.Context) error {
	s.log.Info("shutting down")
	return nil
}

// exit handles the LSP exit notification by terminating the process.
func (s *Server) exit(_ *glsp.Context) error {
	s.exitFn(0)
	return nil
}

// setTrace handles the $/setTrace notification (required by some clients).
func (s *Server) setTrace(_ *glsp.Context, _ *protocol.SetTraceParams) error {
	return nil
}

func boolPtr(b bool) *bool {
	return &b
}
