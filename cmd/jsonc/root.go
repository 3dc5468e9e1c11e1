// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/creachadair/comb/jsonc"
	"github.com/creachadair/comb/report"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	"golang.org/x/term"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("jsonc")

// settings holds the values of the global flags.
type settings struct {
	verbose int
	color   string
	label   string
}

// newRootCmd constructs the root command and its subcommands.
func newRootCmd() *cobra.Command {
	var s settings
	root := &cobra.Command{
		Use:   "jsonc",
		Short: "Check and convert JSON With Commas and Comments",
		Long: `Read documents in JWCC format (JSON extended with comments and trailing commas),
report syntax errors with annotated source snippets, and convert documents to
plain JSON or YAML.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			commonlog.Configure(s.verbose, nil)
			return s.setColor()
		},
	}
	root.PersistentFlags().CountVarP(&s.verbose, "verbose", "v", "Verbose logging (repeat for more)")
	root.PersistentFlags().StringVar(&s.color, "color", "auto", "Color output: auto, always, never")
	root.PersistentFlags().StringVar(&s.label, "label", "", "Name to show for the input in error reports")

	root.AddCommand(newCheckCmd(&s), newFmtCmd(&s), newYAMLCmd(&s))
	return root
}

// setColor enables or disables color output according to the --color flag.
func (s *settings) setColor() error {
	switch s.color {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	case "auto", "":
		// Color only if stdout is a TTY and NO_COLOR is not set.
		color.NoColor = !term.IsTerminal(int(os.Stdout.Fd())) || os.Getenv("NO_COLOR") != ""
	default:
		return fmt.Errorf("invalid --color %q (want auto, always, or never)", s.color)
	}
	return nil
}

// source is the contents of a named input.
type source struct {
	name string
	text string
}

// readSource reads the named input, where "-" means the standard input of
// cmd.
func readSource(cmd *cobra.Command, name string) (source, error) {
	var data []byte
	var err error
	if name == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return source{}, fmt.Errorf("read input: %w", err)
	}
	return source{name: name, text: string(data)}, nil
}

// parse parses src as a JWCC document. If parsing fails, it renders the
// error to the error output of cmd.
func (s *settings) parse(cmd *cobra.Command, src source) (*jsonc.Document, error) {
	d, err := jsonc.Parse(src.text)
	if err != nil {
		label := s.label
		if label == "" {
			label = src.name
		}
		r := report.Renderer{Label: label, Color: !color.NoColor}
		if rerr := r.Render(cmd.ErrOrStderr(), src.text, err); rerr != nil {
			return nil, rerr
		}
		log.Info("parse failed", "input", src.name, "error", err.Error())
		return nil, fmt.Errorf("%s: invalid input", src.name)
	}
	log.Debug("parsed document", "input", src.name, "bytes", len(src.text))
	return d, nil
}

// selectPath returns the value of d selected by the path expression expr.
// An empty expr selects the whole document.
func selectPath(d *jsonc.Document, expr string) (jsonc.Value, error) {
	path, err := jsonc.ParsePath(expr)
	if err != nil {
		return nil, err
	}
	v, err := jsonc.Path(d, path...)
	if err != nil {
		return nil, fmt.Errorf("select %q: %w", expr, err)
	}
	log.Debug("selected value", "path", expr, "type", fmt.Sprintf("%T", v))
	if m, ok := v.(*jsonc.Member); ok {
		return m.Value, nil
	}
	return v, nil
}
