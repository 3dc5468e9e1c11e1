// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Program jsonc checks and converts documents in JSON With Commas and
// Comments (JWCC) format.
//
// Usage:
//
//	jsonc check FILE...    # report syntax errors
//	jsonc fmt FILE         # print as plain JSON
//	jsonc fmt --jwcc FILE  # reformat, keeping comments
//	jsonc yaml FILE        # print as YAML, keeping comments
//
// Use "-" as a file name to read from standard input.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
