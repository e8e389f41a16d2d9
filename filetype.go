package turtlemode

import (
	"path/filepath"
	"strings"
)

// DefaultExtensions maps file extensions to mode activation. This is
// host-side glue: editors use it to decide when to attach the mode.
var DefaultExtensions = map[string]bool{
	".ttl": true,
	".n3":  true,
	".nt":  true,
}

// IsTurtleFile reports whether path has a Turtle file extension.
func IsTurtleFile(path string) bool {
	return DefaultExtensions[strings.ToLower(filepath.Ext(path))]
}
