// Package compliancemap is the module root; it embeds assets shared by the
// commands, currently the goose SQL migrations.
package compliancemap

import "embed"

// Migrations holds the embedded database migration files.
//
//go:embed migrations/*.sql
var Migrations embed.FS
