// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/creachadair/comb/jsonc"
	"github.com/spf13/cobra"
)

func newFmtCmd(s *settings) *cobra.Command {
	var opts struct {
		jwcc    bool
		sort    bool
		compact bool
		indent  string
		path    string
	}
	cmd := &cobra.Command{
		Use:   "fmt FILE",
		Short: "Print a JWCC file as plain JSON",
		Long: `Print a JWCC file as plain JSON, without comments or trailing commas.
With --jwcc, reformat the file as JWCC instead, keeping its comments.
With --path, print only the value the path selects, for example
"servers[0].ports".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(cmd, args[0])
			if err != nil {
				return err
			}
			d, err := s.parse(cmd, src)
			if err != nil {
				return err
			}
			v, err := selectPath(d, opts.path)
			if err != nil {
				return err
			}
			if opts.sort {
				sortKeys(v)
			}

			var buf bytes.Buffer
			switch {
			case opts.jwcc:
				f := jsonc.Formatter{Indent: opts.indent}
				if err := f.Format(&buf, v); err != nil {
					return fmt.Errorf("format: %w", err)
				}
			case opts.compact:
				buf.WriteString(v.JSON())
			default:
				if err := json.Indent(&buf, []byte(v.JSON()), "", opts.indent); err != nil {
					return fmt.Errorf("indent: %w", err)
				}
			}
			if !bytes.HasSuffix(buf.Bytes(), []byte("\n")) {
				buf.WriteByte('\n')
			}
			_, err = cmd.OutOrStdout().Write(buf.Bytes())
			return err
		},
	}
	cmd.Flags().BoolVar(&opts.jwcc, "jwcc", false, "Print JWCC, keeping comments")
	cmd.Flags().BoolVar(&opts.sort, "sort", false, "Sort object members by key")
	cmd.Flags().BoolVarP(&opts.compact, "compact", "c", false, "Print compact JSON")
	cmd.Flags().StringVar(&opts.indent, "indent", "  ", "Indentation for each level")
	cmd.Flags().StringVar(&opts.path, "path", "", "Print only the value at this path")
	return cmd
}

// sortKeys sorts the members of all the objects in v by key.
func sortKeys(v jsonc.Value) {
	switch t := v.(type) {
	case *jsonc.Document:
		sortKeys(t.Value)
	case *jsonc.Object:
		t.Sort()
		for _, m := range t.Members {
			sortKeys(m.Value)
		}
	case *jsonc.Array:
		for _, elt := range t.Values {
			sortKeys(elt)
		}
	}
}
