package migrations

import "embed"

// Files holds the forward-only schema migrations shipped inside the
// renotrack binary.
//
//go:embed *.sql
var Files embed.FS
