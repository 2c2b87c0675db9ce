package i18n

import (
	"embed"
	"io/fs"
)

//go:embed bundles
var bundleFS embed.FS

// DefaultBundleID names the text editor bundle shipped in the binary.
const DefaultBundleID = "texteditor.messages"

// EmbeddedBundles returns the bundles compiled into the binary, rooted so
// that bundle IDs resolve directly against it.
func EmbeddedBundles() fs.FS {
	sub, err := fs.Sub(bundleFS, "bundles")
	if err != nil {
		panic("i18n: embedded bundles: " + err.Error())
	}
	return sub
}
