package geometry

import (
	"math"

	"github.com/google/uuid"

	"github.com/inercia/meshcat-go/pose"
)

// Object kinds for the scene node.
const (
	Mesh         = "Mesh"
	PointsObject = "Points"
	LineSegments = "LineSegments"
)

// Metadata identifies the payload format to the viewer.
type Metadata struct {
	Type    string  `msgpack:"type"`
	Version float64 `msgpack:"version"`
}

// Node is one node of the object tree inside a lumped payload. Children
// reference geometries and materials by uuid.
type Node struct {
	UUID     string      `msgpack:"uuid"`
	Type     string      `msgpack:"type"`
	Matrix   [16]float64 `msgpack:"matrix"`
	Geometry string      `msgpack:"geometry,omitempty"`
	Material string      `msgpack:"material,omitempty"`
	Children []Node      `msgpack:"children,omitempty"`
}

// Object is the lumped payload for set_object: everything the viewer needs
// to draw one scene-graph entry in a single message. The geometries,
// materials, textures, and images lists hold the actual resources; the
// object tree references them by uuid.
//
// The viewer's format allows multiple materials, textures, and images per
// payload, but like other meshcat clients we only ever send one of each.
type Object struct {
	Metadata   Metadata    `msgpack:"metadata"`
	Geometries []Geometry  `msgpack:"geometries"`
	Materials  []*Material `msgpack:"materials"`
	Textures   []*Texture  `msgpack:"textures,omitempty"`
	Images     []*Image    `msgpack:"images,omitempty"`
	Object     Node        `msgpack:"object"`
}

type placedGeometry struct {
	geom   Geometry
	origin pose.Pose
}

type objectSpec struct {
	geometries []placedGeometry
	material   *Material
	texture    *Texture
	image      *Image
	kind       string
	pose       pose.Pose
}

// ObjectOption configures the object assembly.
type ObjectOption func(*objectSpec)

// WithGeometry adds a geometry at the object's origin.
func WithGeometry(g Geometry) ObjectOption {
	return WithGeometryAt(g, pose.Identity())
}

// WithGeometryAt adds a geometry offset from the object's origin. Multiple
// geometries become sibling children of the object node.
func WithGeometryAt(g Geometry, origin pose.Pose) ObjectOption {
	return func(s *objectSpec) {
		s.geometries = append(s.geometries, placedGeometry{geom: g, origin: origin})
	}
}

// WithMaterial sets the object's material. The default is a plain phong
// material.
func WithMaterial(m *Material) ObjectOption {
	return func(s *objectSpec) { s.material = m }
}

// WithTexture attaches a texture to the object's material.
func WithTexture(t *Texture) ObjectOption {
	return func(s *objectSpec) { s.texture = t }
}

// WithImage attaches an image, to be referenced by an image texture.
func WithImage(img *Image) ObjectOption {
	return func(s *objectSpec) { s.image = img }
}

// WithKind sets the object kind (Mesh, PointsObject, LineSegments).
func WithKind(kind string) ObjectOption {
	return func(s *objectSpec) { s.kind = kind }
}

// WithPose sets the object's root transform.
func WithPose(p pose.Pose) ObjectOption {
	return func(s *objectSpec) { s.pose = p }
}

// NewObject assembles a lumped object. Resource uuids are cross-linked here:
// image into texture, texture into material, material and geometries into the
// object tree. Cylinder geometries get an extra rotation so their long axis
// ends up on Z despite the viewer modeling them Y-up.
func NewObject(opts ...ObjectOption) *Object {
	spec := &objectSpec{kind: Mesh, pose: pose.Identity()}
	for _, opt := range opts {
		opt(spec)
	}
	if spec.material == nil {
		spec.material = NewMaterial()
	}
	if spec.image != nil && spec.texture != nil {
		spec.texture.Image = spec.image.UUID
	}
	if spec.texture != nil {
		spec.material.Map = spec.texture.UUID
	}

	root := Node{
		UUID:     uuid.NewString(),
		Type:     spec.kind,
		Matrix:   spec.pose.Matrix(),
		Material: spec.material.UUID,
	}
	geometries := make([]Geometry, 0, len(spec.geometries))
	for _, pg := range spec.geometries {
		geometries = append(geometries, pg.geom)
		origin := pg.origin
		if _, isCylinder := pg.geom.(*Cylinder); isCylinder {
			origin = origin.Mul(pose.RPY(math.Pi/2, 0, 0))
		}
		root.Children = append(root.Children, Node{
			UUID:     uuid.NewString(),
			Type:     spec.kind,
			Matrix:   origin.Matrix(),
			Geometry: pg.geom.GeometryID(),
			Material: spec.material.UUID,
		})
	}

	obj := &Object{
		Metadata:   Metadata{Type: "Object", Version: 4.5},
		Geometries: geometries,
		Materials:  []*Material{spec.material},
		Object:     root,
	}
	if spec.texture != nil {
		obj.Textures = []*Texture{spec.texture}
	}
	if spec.image != nil {
		obj.Images = []*Image{spec.image}
	}
	return obj
}

// Text returns a transparent plane with the given text rendered on it.
func Text(text string, fontSize int) *Object {
	return NewObject(
		WithGeometry(NewPlane(10, 10)),
		WithTexture(NewTextTexture(text, fontSize, "sans-serif")),
		WithMaterial(NewMaterial(WithTransparent(true))),
	)
}
