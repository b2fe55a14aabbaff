// Package embedded gives every package access to the resources embedded by the root package.
//
// //go:embed can only reach files below the declaring package's directory, so the embed.FS
// variables live in the root embed.go and are handed over here with Init. Paths must start
// with "assets/" (models) or "data/" (YAML configuration).
//
// Init must be called at the start of main, before anything is loaded.
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

var (
	assetsFS    fs.FS
	dataFS      fs.FS
	initialized bool
)

var errNotInitialized = errors.New("embedded package not initialized, call Init() first")

// Init installs the file systems. Both must be rooted so that "assets/..." and "data/..."
// resolve inside them (an embed.FS declared with //go:embed all:assets is).
func Init(assets, data fs.FS) {
	assetsFS = assets
	dataFS = data
	initialized = true
}

// IsInitialized reports whether Init has been called.
func IsInitialized() bool {
	return initialized
}

// resolve picks the file system for path and normalizes the path for fs.FS use.
func resolve(path string) (fs.FS, string, error) {
	if !initialized {
		return nil, "", errNotInitialized
	}

	path = filepath.ToSlash(path)
	path = strings.TrimPrefix(path, "./")

	switch {
	case strings.HasPrefix(path, "assets/"):
		return assetsFS, path, nil
	case strings.HasPrefix(path, "data/"):
		return dataFS, path, nil
	}
	return nil, "", fmt.Errorf("unknown resource path prefix: %s (must start with 'assets/' or 'data/')", path)
}

// Open opens an embedded file.
func Open(path string) (fs.File, error) {
	fsys, name, err := resolve(path)
	if err != nil {
		return nil, err
	}
	return fsys.Open(name)
}

// ReadFile reads an embedded file.
func ReadFile(path string) ([]byte, error) {
	fsys, name, err := resolve(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(fsys, name)
}

// Exists reports whether an embedded file exists.
func Exists(path string) bool {
	file, err := Open(path)
	if err != nil {
		return false
	}
	file.Close()
	return true
}

// Sub returns the subtree rooted at dir, e.g. Sub("assets") for the model loader.
func Sub(dir string) (fs.FS, error) {
	fsys, name, err := resolve(strings.TrimSuffix(dir, "/") + "/")
	if err != nil {
		return nil, err
	}
	return fs.Sub(fsys, strings.TrimSuffix(name, "/"))
}
