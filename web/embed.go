// Package web embute os arquivos estáticos servidos junto com a API.
package web

import "embed"

//go:embed templates/*.html
var Templates embed.FS
