// Package migrations embeds the goose SQL migrations that create the server
// schema.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
