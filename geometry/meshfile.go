package geometry

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MeshFile carries a mesh file's raw contents to the viewer, which parses
// the format itself.
type MeshFile struct {
	UUID   string `msgpack:"uuid"`
	Type   string `msgpack:"type"`
	Format string `msgpack:"format"`
	Data   string `msgpack:"data"`
}

// supported mesh formats, by file extension
var meshFormats = map[string]bool{
	"obj": true,
	"dae": true,
	"stl": true,
}

// NewMeshFile wraps already-loaded mesh data. Format is the file extension
// without the dot (obj, dae, or stl).
func NewMeshFile(format, data string) *MeshFile {
	return &MeshFile{UUID: uuid.NewString(), Type: "_meshfile_geometry", Format: format, Data: data}
}

// LoadMeshFile reads a mesh file from disk. The format is derived from the
// file extension.
func LoadMeshFile(path string) (*MeshFile, error) {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if !meshFormats[format] {
		return nil, fmt.Errorf("unsupported mesh format %q for %s", format, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read mesh file: %w", err)
	}
	return NewMeshFile(format, string(data)), nil
}

func (g *MeshFile) GeometryID() string { return g.UUID }
