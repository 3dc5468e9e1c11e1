// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/creachadair/comb/jsonc"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newYAMLCmd(s *settings) *cobra.Command {
	var noComments bool
	var path string
	cmd := &cobra.Command{
		Use:   "yaml FILE",
		Short: "Print a JWCC file as YAML",
		Long: `Print a JWCC file as a YAML document. Comments are carried over as YAML
comments unless --no-comments is set. With --path, print only the value the
path selects.`,
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
			v, err := selectPath(d, path)
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(toYAML(v, !noComments)); err != nil {
				return fmt.Errorf("encode YAML: %w", err)
			}
			return enc.Close()
		},
	}
	cmd.Flags().BoolVar(&noComments, "no-comments", false, "Omit comments from the output")
	cmd.Flags().StringVar(&path, "path", "", "Print only the value at this path")
	return cmd
}

// toYAML converts v to a YAML document node. If comments is true, the
// comments of the values are attached to the corresponding nodes.
func toYAML(v jsonc.Value, comments bool) *yaml.Node {
	c := yamlConverter{comments: comments}
	var foot []string
	if d, ok := v.(*jsonc.Document); ok {
		v, foot = d.Value, d.Comments().End
	}
	root := c.node(v)
	doc := &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}
	if comments {
		doc.HeadComment, root.HeadComment = root.HeadComment, ""
		doc.FootComment = yamlComment(foot...)
	}
	return doc
}

type yamlConverter struct {
	comments bool
}

func (c yamlConverter) node(v jsonc.Value) *yaml.Node {
	var n *yaml.Node
	switch t := v.(type) {
	case *jsonc.Object:
		n = &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, m := range t.Members {
			key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: m.Key.Value}
			val := c.node(m.Value)
			c.annotate(key, &jsonc.Comments{Before: m.Comments().Before, End: m.Comments().End})
			if line := m.Comments().Line; c.comments && line != "" && val.LineComment == "" {
				val.LineComment = yamlComment(line)
			}
			n.Content = append(n.Content, key, val)
		}
	case *jsonc.Array:
		n = &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, elt := range t.Values {
			n.Content = append(n.Content, c.node(elt))
		}
	case *jsonc.String:
		n = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: t.Value}
	case *jsonc.Number:
		tag := "!!float"
		if _, err := t.Int64(); err == nil {
			tag = "!!int"
		}
		n = &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: t.Text}
	case *jsonc.Bool:
		n = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: t.JSON()}
	case *jsonc.Null:
		n = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	default:
		panic(fmt.Sprintf("unexpected value type %T", v))
	}
	c.annotate(n, v.Comments())
	return n
}

func (c yamlConverter) annotate(n *yaml.Node, com *jsonc.Comments) {
	if !c.comments {
		return
	}
	if hc := yamlComment(com.Before...); hc != "" {
		n.HeadComment = hc
	}
	if com.Line != "" {
		n.LineComment = yamlComment(com.Line)
	}
	if fc := yamlComment(com.End...); fc != "" {
		n.FootComment = fc
	}
}

// yamlComment renders JWCC comments as the text of a YAML comment.
func yamlComment(coms ...string) string {
	var keep []string
	for _, c := range coms {
		if c != "" {
			keep = append(keep, c)
		}
	}
	if len(keep) == 0 {
		return ""
	}
	lines := jsonc.CleanComments(keep...)
	for i, line := range lines {
		lines[i] = strings.TrimSpace("# " + line)
	}
	return strings.Join(lines, "\n")
}
