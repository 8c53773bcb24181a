// Package migrations embeds the goose migrations that create the kv_blobs
// table, one directory per SQL dialect.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
