package geometry

import "github.com/google/uuid"

// Material type names understood by the viewer.
const (
	MeshBasic   = "MeshBasicMaterial"
	MeshPhong   = "MeshPhongMaterial"
	MeshLambert = "MeshLambertMaterial"
	MeshToon    = "MeshToonMaterial"
	LineBasic   = "LineBasicMaterial"
	Points      = "PointsMaterial"
)

// Side constants for Material.Side.
const (
	FrontSide  = 0
	BackSide   = 1
	DoubleSide = 2
)

// Material describes the appearance of an object. Optional fields are
// pointers so that unset values stay off the wire.
type Material struct {
	UUID               string   `msgpack:"uuid"`
	Type               string   `msgpack:"type"`
	Color              *uint32  `msgpack:"color,omitempty"`
	Linewidth          *float64 `msgpack:"linewidth,omitempty"`
	Opacity            *float64 `msgpack:"opacity,omitempty"`
	Reflectivity       *float64 `msgpack:"reflectivity,omitempty"`
	Side               int      `msgpack:"side"`
	Size               *float64 `msgpack:"size,omitempty"`
	Transparent        *bool    `msgpack:"transparent,omitempty"`
	VertexColors       *bool    `msgpack:"vertexColors,omitempty"`
	Wireframe          *bool    `msgpack:"wireframe,omitempty"`
	WireframeLineWidth *float64 `msgpack:"wireframeLineWidth,omitempty"`
	Map                string   `msgpack:"map,omitempty"`
}

// MaterialOption configures a material.
type MaterialOption func(*Material)

// NewMaterial returns a double-sided phong material, adjusted by opts.
func NewMaterial(opts ...MaterialOption) *Material {
	m := &Material{
		UUID: uuid.NewString(),
		Type: MeshPhong,
		Side: DoubleSide,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// WithMaterialType sets the material type (MeshBasic, MeshPhong, ...).
func WithMaterialType(typ string) MaterialOption {
	return func(m *Material) { m.Type = typ }
}

// WithColor sets the material color as 0xRRGGBB.
func WithColor(color uint32) MaterialOption {
	return func(m *Material) { m.Color = &color }
}

// WithOpacity sets the opacity in [0, 1] and marks the material transparent.
func WithOpacity(opacity float64) MaterialOption {
	return func(m *Material) {
		m.Opacity = &opacity
		transparent := true
		m.Transparent = &transparent
	}
}

// WithTransparent toggles alpha blending.
func WithTransparent(transparent bool) MaterialOption {
	return func(m *Material) { m.Transparent = &transparent }
}

// WithReflectivity sets the reflectivity in [0, 1].
func WithReflectivity(r float64) MaterialOption {
	return func(m *Material) { m.Reflectivity = &r }
}

// WithSide sets which faces are rendered (FrontSide, BackSide, DoubleSide).
func WithSide(side int) MaterialOption {
	return func(m *Material) { m.Side = side }
}

// WithWireframe renders the geometry as a wireframe.
func WithWireframe(width float64) MaterialOption {
	return func(m *Material) {
		wireframe := true
		m.Wireframe = &wireframe
		m.WireframeLineWidth = &width
	}
}

// WithVertexColors colors vertices from the geometry's color attribute.
func WithVertexColors() MaterialOption {
	return func(m *Material) {
		v := true
		m.VertexColors = &v
	}
}

// WithLinewidth sets the line width for line materials.
func WithLinewidth(width float64) MaterialOption {
	return func(m *Material) { m.Linewidth = &width }
}

// WithPointSize makes the material a points material with the given size.
func WithPointSize(size float64) MaterialOption {
	return func(m *Material) {
		m.Type = Points
		m.Size = &size
	}
}
