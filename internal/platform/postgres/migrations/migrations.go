// Package migrations holds the embedded SQL migration files for the
// accounts schema. The files are applied with goose at server startup.
package migrations

import "embed"

// FS contains every SQL migration, embedded into the binary so the
// server can migrate the database without a copy of the source tree.
//
//go:embed *.sql
var FS embed.FS
