// Package schema carries the store setup scripts. They are applied by an
// operator (or by tests); the application never alters the schema itself.
package schema

import _ "embed"

// Postgres is the PostgreSQL setup script.
//
//go:embed postgres.sql
var Postgres string

// SQLite is the SQLite setup script.
//
//go:embed sqlite.sql
var SQLite string
