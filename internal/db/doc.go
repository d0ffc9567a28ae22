// Copyright (c) 2026 ToeiRei
// Typemap - SQL/Go basic type bindings
// This source code is licensed under the MIT license found in the LICENSE file.

// Package db is the storage layer that exercises basic types against a real
// database.
//
// Stores
//   - `Open` picks the store from the dialect: sqlite, postgres and mysql run
//     through a `BunStore`, oracle and hana through a `SQLStore` so that LOB
//     arguments reach the driver untouched.
//   - A `Table` is an id column plus value columns, each mapped to a
//     `basictype.Type`. Column DDL follows the SQL descriptor the type uses
//     under the store's options, so dialect remapping applies to DDL and to
//     binding alike.
//   - `RoundTrip` writes one value to a scratch table and reads it back.
//
// Pool tuning
//   - `TYPEMAP_DB_MAX_OPEN_CONNS`, `TYPEMAP_DB_MAX_IDLE_CONNS`,
//     `TYPEMAP_DB_CONN_MAX_LIFETIME_SECONDS` and
//     `TYPEMAP_DB_CONN_MAX_IDLE_SECONDS` override the pool defaults.
//     In-memory SQLite is always limited to one connection.
//
// Testing notes
//   - Tests use `file:<name>?mode=memory&cache=shared` DSNs so that each test
//     gets its own database.
package db
