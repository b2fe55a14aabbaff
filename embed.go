// embed.go declares the embedded resources. It has to live in the root package,
// next to assets/ and data/, because //go:embed only reaches files below the
// declaring package's directory.
package main

import "embed"

//go:embed all:assets
var assetsFS embed.FS

//go:embed data/*.yaml
var dataFS embed.FS
