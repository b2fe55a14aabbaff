package types

import "strings"

// Handle identifies a loadable asset: a file path with an optional "#Label"
// selecting a sub-asset, e.g. "models/Anne.glb#Animation3".
type Handle string

// NewHandle joins a path and a label into a Handle. An empty label yields the bare path.
func NewHandle(path, label string) Handle {
	if label == "" {
		return Handle(path)
	}
	return Handle(path + "#" + label)
}

// Path returns the file part of the handle.
func (h Handle) Path() string {
	path, _, _ := strings.Cut(string(h), "#")
	return path
}

// Label returns the sub-asset label, or "" when the handle names a whole file.
func (h Handle) Label() string {
	_, label, _ := strings.Cut(string(h), "#")
	return label
}

func (h Handle) String() string {
	return string(h)
}
