// Copyright © 2026 The svgls authors

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/luthersystems/svgls/diagnostic"
	"github.com/luthersystems/svgls/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

// Configuration keys. Each can be set in the config file, as an SVGLS_
// environment variable (dots become underscores) or by its flag.
const (
	keySchema            = "schema"
	keyLogVerbosity      = "log.verbosity"
	keyLogFile           = "log.file"
	keyCompletionTimeout = "completion.timeout"
	keyTrace             = "trace"
)

var (
	cfgFile       string
	stopTelemetry func(context.Context) error
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "svgls",
	Short: "SVG markup completion and language server",
	Long: `svgls offers context-aware completion for SVG markup. It knows which
elements may appear where, which attributes each element accepts and
which values an enumerated attribute takes, and proposes them while you
type.

Getting started:
  svgls lsp                         Serve editors over stdio
  svgls complete icon.svg -l 3 -c 5 Complete at line 3, column 5
  echo '<svg><rect |' | svgls complete -
  svgls schema                      List the elements the grammar knows
  svgls schema linearGradient       Describe one element
  svgls repl                        Type markup with TAB completion

Completion contexts:
  after '<'            element names allowed inside the enclosing element
  after ' ' in a tag   attributes the element accepts and has not used
  after '=' or '"'     the attribute's enumerated values

The grammar is an embedded SVG schema. Use --schema to load your own
grammar from a JSON or YAML file with the same shape.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if !viper.GetBool(keyTrace) {
			return nil
		}
		stop, err := setupTracing(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		stopTelemetry = stop
		return nil
	},
	PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
		if stopTelemetry == nil {
			return nil
		}
		defer func() { stopTelemetry = nil }()
		return stopTelemetry(context.Background())
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportError prints err to w. Schema decoding failures are shown against
// the line of the grammar file that caused them.
func reportError(w io.Writer, err error) {
	var le *schema.LoadError
	if !errors.As(err, &le) || le.Path == "" {
		fmt.Fprintln(w, err)
		return
	}
	d := diagnostic.Diagnostic{
		Severity: diagnostic.SeverityError,
		Message:  "loading schema: " + le.Err.Error(),
		Spans:    []diagnostic.Span{{File: le.Path, Line: le.Line, Col: le.Col}},
	}
	r := &diagnostic.Renderer{}
	if rerr := r.Render(w, d); rerr != nil {
		fmt.Fprintln(w, err)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.svgls.yaml)")
	flags.String("schema", "", "grammar file (.json, .yaml or .yml) replacing the embedded SVG schema")
	flags.Int("log-verbosity", 0, "log verbosity; 1 for info, 2 for debug")
	flags.String("log-file", "", "write logs to this file instead of stderr")
	flags.Duration("completion-timeout", 250*time.Millisecond, "upper bound on a single completion")
	flags.Bool("trace", false, "print OpenTelemetry spans to stderr")

	for key, flag := range map[string]string{
		keySchema:            "schema",
		keyLogVerbosity:      "log-verbosity",
		keyLogFile:           "log-file",
		keyCompletionTimeout: "completion-timeout",
		keyTrace:             "trace",
	} {
		_ = viper.BindPFlag(key, flags.Lookup(flag))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		// Search config in home directory with name ".svgls" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".svgls")
	}

	viper.SetEnvPrefix("svgls")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in. Stdout belongs to the LSP
	// transport, so report on stderr.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	configureLogging()
}

func configureLogging() {
	var path *string
	if p := viper.GetString(keyLogFile); p != "" {
		path = &p
	}
	commonlog.Configure(viper.GetInt(keyLogVerbosity), path)
}

// loadCatalog returns the grammar named by the schema setting, or the
// embedded SVG grammar.
func loadCatalog() (*schema.Catalog, error) {
	path := viper.GetString(keySchema)
	if path == "" {
		return schema.Default(), nil
	}
	c, err := schema.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}
	log := commonlog.GetLogger("svgls.schema")
	for _, ref := range c.UndeclaredChildren() {
		log.Warningf("%s: sub-element %s is not declared", path, ref)
	}
	return c, nil
}

func completionTimeout() time.Duration {
	return viper.GetDuration(keyCompletionTimeout)
}
