package web

import (
	"embed"
	"io/fs"
	"log"
)

//go:embed static
var content embed.FS

// StaticFS returns the embedded client file system.
func StaticFS() fs.FS {
	sub, err := fs.Sub(content, "static")
	if err != nil {
		log.Fatalf("failed to create static sub-filesystem: %v", err)
	}
	return sub
}
