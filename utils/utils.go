package utils

import (
	"path/filepath"
	"strings"
)

// ObjectType tags the kind of an object and is written verbatim into its header.
type ObjectType string

const (
	BlobObjectType ObjectType = "blob"
	TreeObjectType ObjectType = "tree"
)

func (ot ObjectType) IsValid() bool {
	switch ot {
	case BlobObjectType, TreeObjectType:
		return true
	default:
		return false
	}
}

func (ot ObjectType) String() string {
	return string(ot)
}

// BuildDirPath constructs os-agnostic display direcotry path with trailing separator preserving all components.
// Unlike filepath.Join, does not normalize "." or remove redundant separators.
func BuildDirPath(dirs ...string) string {
	return strings.Join(dirs, string(filepath.Separator)) + string(filepath.Separator)
}
