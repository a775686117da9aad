// Package migrations embeds the SQL schema so tests and tooling share one source.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

// Files lists migrations in apply order.
var Files = []string{
	"001_initial_schema.sql",
}
