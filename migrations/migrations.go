// Package migrations embebe los scripts SQL de golang-migrate.
package migrations

import "embed"

// FS contiene los pares NNNNNN_nombre.{up,down}.sql.
//
//go:embed *.sql
var FS embed.FS
