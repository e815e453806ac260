// Package gamedata provides embedded world definitions and utilities for loading them.
package gamedata

import "embed"

// dataFS embeds all data files from this directory at build time.
//
//go:embed *.yaml
var dataFS embed.FS
