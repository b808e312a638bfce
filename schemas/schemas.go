// Package schemas embeds the JSON Schemas for gauss input files.
package schemas

import _ "embed"

// WorksheetSchemaJSON is the schema for gauss eval worksheets.
//
//go:embed worksheet.schema.json
var WorksheetSchemaJSON string
