// Package migrations embeds the goose migration files for the bank schema.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
