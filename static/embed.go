// Package static ships the stylesheet, scripts, images and manifest inside the binary.
package static

import "embed"

//go:embed css js images site.webmanifest
var FS embed.FS
