// Copyright (c) 2026 ToeiRei
// Typemap - SQL/Go basic type bindings
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for typemap.
//
// Usage:
//
//	go run . [flags]
//	./typemap [flags]
//
// See --help for options.
package main

import (
	"os"

	"github.com/toeirei/typemap/internal/logging"
	"github.com/toeirei/typemap/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		logging.Errorf("typemap: %v", err)
		os.Exit(1)
	}
}
