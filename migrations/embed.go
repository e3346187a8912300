// Package migrations встраивает SQL-схему портфолио в бинарник.
package migrations

import "embed"

// FS содержит файлы *.sql в порядке имён.
//
//go:embed *.sql
var FS embed.FS
