// Package migrations holds the embedded SQL schema migrations, applied with
// goose by the migrate command.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
