package portfolio

import "embed"

// EmbeddedAssets contains files shipped inside the binary: favicon.svg.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
