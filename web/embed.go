// Package web embeds the dashboard page templates and static assets.
package web

import "embed"

// Templates embeds HTML templates.
//
//go:embed templates/*/*.html
var Templates embed.FS

// Static embeds CSS and the fragment swap script.
//
//go:embed static/*/*
var Static embed.FS
