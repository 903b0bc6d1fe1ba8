// Package templates embeds the HTML shipped with the server.
package templates

import "embed"

//go:embed *.gohtml
var FS embed.FS
