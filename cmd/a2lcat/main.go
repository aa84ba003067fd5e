// Command a2lcat parses, validates and re-emits ASAM MCD-2MC (A2L)
// description files.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/cschuler/go-a2l/ast"
	"github.com/cschuler/go-a2l/lexer"
	"github.com/cschuler/go-a2l/parser"
)

type config struct {
	includeDirs []string
	format      string
	verbose     bool
}

func main() {
	cfg := &config{}

	rootCmd := &cobra.Command{
		Use:           "a2lcat <command> <file>",
		Short:         "Parse, validate and re-emit A2L description files",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	rootCmd.PersistentFlags().StringSliceVar(&cfg.includeDirs, "include-dir", nil,
		"directory to search for /include files (repeatable)")
	rootCmd.PersistentFlags().BoolVarP(&cfg.verbose, "verbose", "v", false, "log diagnostics to stderr")

	rootCmd.AddCommand(
		newParseCmd(cfg),
		newValidateCmd(cfg),
		newEmitCmd(cfg),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "a2lcat: %v\n", err)
		os.Exit(1)
	}
}

func logger(cfg *config) *slog.Logger {
	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(h).With("cmd", "a2lcat")
}

func newParseCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a file and report a summary of its structure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger(cfg)
			log.Debug("parsing", "file", args[0])
			root, err := parseFile(cfg, args[0])
			if err != nil {
				return reportParseError(cmd, err)
			}
			summarize(cmd.OutOrStdout(), root)
			return nil
		},
	}
}

func newValidateCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Parse a file and report only whether it is valid A2L",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger(cfg)
			log.Debug("validating", "file", args[0])
			_, err := parseFile(cfg, args[0])
			if err != nil {
				return reportParseError(cmd, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}

func newEmitCmd(cfg *config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "emit <file>",
		Short: "Re-emit a parsed file as A2L source or YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := parseFile(cfg, args[0])
			if err != nil {
				return reportParseError(cmd, err)
			}
			switch strings.ToLower(cfg.format) {
			case "", "a2l":
				fmt.Fprint(cmd.OutOrStdout(), root.String())
			case "yaml":
				out, err := ast.EmitYAML(root)
				if err != nil {
					return fmt.Errorf("emit yaml: %w", err)
				}
				cmd.OutOrStdout().Write(out)
			default:
				return fmt.Errorf("unknown --format %q (want a2l or yaml)", cfg.format)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&cfg.format, "format", "a2l", "output format: a2l or yaml")
	return cmd
}

func parseFile(cfg *config, path string) (*ast.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	resolver := parser.OSIncludeResolver{Dirs: append([]string{filepath.Dir(path)}, cfg.includeDirs...)}
	p := parser.NewWithResolver(lexer.New(string(data)), resolver)
	return p.ParseRoot()
}

// reportParseError renders a *parser.Error with its breadcrumb
// highlighted when stdout is a terminal, and as a plain one-liner
// otherwise (e.g. when piped into another tool).
func reportParseError(cmd *cobra.Command, err error) error {
	var perr *parser.Error
	if !errors.As(err, &perr) {
		return err
	}
	w := cmd.ErrOrStderr()
	isTerm := term.IsTerminal(int(os.Stdout.Fd()))
	if !isTerm || len(perr.Breadcrumb) == 0 {
		fmt.Fprintln(w, perr.Error())
		return fmt.Errorf("parse failed")
	}
	fmt.Fprintf(w, "%s: %s\n  in \033[1m%s\033[0m\n", perr.Pos, perr.Kind, strings.Join(perr.Breadcrumb, " / "))
	if perr.Message != "" {
		fmt.Fprintf(w, "  %s\n", perr.Message)
	} else if perr.Expected != "" || perr.Actual != "" {
		fmt.Fprintf(w, "  expected %s, got %s\n", perr.Expected, perr.Actual)
	}
	return fmt.Errorf("parse failed")
}

func summarize(w io.Writer, root *ast.Node) {
	project, _ := root.Child("PROJECT")
	if project == nil {
		fmt.Fprintln(w, "no PROJECT block")
		return
	}
	name, _ := project.Attr("Name")
	modules := project.ChildrenOf("MODULE")
	fmt.Fprintf(w, "PROJECT %s: %d module(s)\n", name.Str, len(modules))
	for _, m := range modules {
		mn, _ := m.Attr("Name")
		characteristics := m.ChildrenOf("CHARACTERISTIC")
		measurements := m.ChildrenOf("MEASUREMENT")
		functions := m.ChildrenOf("FUNCTION")
		fmt.Fprintf(w, "  MODULE %s: %d characteristic(s), %d measurement(s), %d function(s)\n",
			mn.Str, len(characteristics), len(measurements), len(functions))
	}
}
