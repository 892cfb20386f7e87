// Package web holds the embedded entry page and its assets.
package web

import "embed"

//go:embed index.html static
var Assets embed.FS
