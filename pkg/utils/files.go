package utils

import (
	"path/filepath"
	"strings"
)

// ResolveScript turns a possibly-relative script path into an absolute
// path plus the directory holding it. The directory doubles as the
// default destination for artifacts built from the script.
func ResolveScript(relPath string) (fullPath string, parentDir string, err error) {
	fullPath, err = filepath.Abs(relPath)
	if err != nil {
		return "", "", err
	}
	return fullPath, filepath.Dir(fullPath), nil
}

// BaseName returns the file name without its extension, the default
// base name for artifacts derived from that file.
func BaseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}
