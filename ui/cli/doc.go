// Copyright (c) 2026 ToeiRei
// Typemap - SQL/Go basic type bindings
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the typemap command-line interface using Cobra.
// It wires configuration, logging and i18n, and provides commands that
// inspect the type registry and exercise types against a database. CLI code
// should remain thin and delegate to `core/basictype`, `core/dialect` and
// `internal/db`.
package cli
