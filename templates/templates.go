// Package templates embeds the console's HTML pages.
package templates

import "embed"

//go:embed *.html
var FS embed.FS
