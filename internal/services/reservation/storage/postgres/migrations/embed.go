package migrations

import "embed"

// FS contains embedded Postgres migrations for reservation storage.
//
//go:embed *.sql
var FS embed.FS
