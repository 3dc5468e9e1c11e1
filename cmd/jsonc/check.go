// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd(s *settings) *cobra.Command {
	var quiet bool
	cmd := &cobra.Command{
		Use:   "check FILE...",
		Short: "Report syntax errors in JWCC files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var nbad int
			for _, name := range args {
				src, err := readSource(cmd, name)
				if err != nil {
					return err
				}
				if _, err := s.parse(cmd, src); err != nil {
					nbad++
					continue
				}
				log.Info("valid", "input", name)
				if !quiet {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", name)
				}
			}
			if nbad != 0 {
				return fmt.Errorf("%d of %d inputs are invalid", nbad, len(args))
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Print only errors")
	return cmd
}
