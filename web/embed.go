package web

import "embed"

// Templates embeds the HTML layouts rendered to PDF.
//
//go:embed templates/pdf/*.html
var Templates embed.FS
