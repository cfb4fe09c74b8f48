// Package schemas хранит JSON-схемы документов, из которых заполняется сайт.
package schemas

import "embed"

//go:embed documents
var SchemasFS embed.FS
