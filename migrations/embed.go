// Package migrations holds the goose SQL migrations of the record store.
package migrations

import "embed"

// FS contains every *.sql migration, applied in file name order.
//
//go:embed *.sql
var FS embed.FS
