package readers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/notargets/gomsh/mesh"
)

// ReadMeshFile reads a mesh file based on extension
func ReadMeshFile(filename string) (*mesh.Mesh, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".msh":
		return ReadGmsh(filename)
	default:
		return nil, fmt.Errorf("unsupported mesh format: %s", ext)
	}
}
