// Package geometry builds the three.js JSON Object Scene format (version 4)
// payloads the meshcat viewer understands: primitive geometries, buffer
// geometries, mesh files, materials, textures, and the lumped object that
// ties them together.
//
// Geometry fields use the viewer's exact wire names; instances are safe to
// reuse across objects because every piece is addressed by uuid.
package geometry

import (
	"math"

	"github.com/google/uuid"
)

// Geometry is any payload that can appear in an object's geometries list.
type Geometry interface {
	// GeometryID returns the uuid that object nodes use to reference
	// this geometry.
	GeometryID() string
}

// Box is an axis-aligned box centered on the origin.
type Box struct {
	UUID   string  `msgpack:"uuid"`
	Type   string  `msgpack:"type"`
	Width  float64 `msgpack:"width"`
	Height float64 `msgpack:"height"`
	Depth  float64 `msgpack:"depth"`
}

// NewBox returns a box geometry with the given extents.
func NewBox(width, height, depth float64) *Box {
	return &Box{UUID: uuid.NewString(), Type: "BoxGeometry", Width: width, Height: height, Depth: depth}
}

func (g *Box) GeometryID() string { return g.UUID }

// Sphere is a UV sphere. Segment counts default to 32x16.
type Sphere struct {
	UUID           string  `msgpack:"uuid"`
	Type           string  `msgpack:"type"`
	Radius         float64 `msgpack:"radius"`
	WidthSegments  int     `msgpack:"widthSegments"`
	HeightSegments int     `msgpack:"heightSegments"`
}

// NewSphere returns a sphere geometry with default tessellation.
func NewSphere(radius float64) *Sphere {
	return &Sphere{
		UUID:           uuid.NewString(),
		Type:           "SphereGeometry",
		Radius:         radius,
		WidthSegments:  32,
		HeightSegments: 16,
	}
}

func (g *Sphere) GeometryID() string { return g.UUID }

// Cylinder is a cylinder or truncated cone. Note that the viewer models
// cylinders with their long axis along Y; the object assembly compensates
// so that client code can keep Z-up conventions.
type Cylinder struct {
	UUID           string  `msgpack:"uuid"`
	Type           string  `msgpack:"type"`
	RadiusTop      float64 `msgpack:"radiusTop"`
	RadiusBottom   float64 `msgpack:"radiusBottom"`
	Height         float64 `msgpack:"height"`
	RadialSegments int     `msgpack:"radialSegments"`
	HeightSegments int     `msgpack:"heightSegments"`
	ThetaStart     float64 `msgpack:"thetaStart"`
	ThetaLength    float64 `msgpack:"thetaLength"`
}

// NewCylinder returns a full cylinder geometry with default tessellation.
func NewCylinder(radiusTop, radiusBottom, height float64) *Cylinder {
	return &Cylinder{
		UUID:           uuid.NewString(),
		Type:           "CylinderGeometry",
		RadiusTop:      radiusTop,
		RadiusBottom:   radiusBottom,
		Height:         height,
		RadialSegments: 32,
		HeightSegments: 1,
		ThetaLength:    2 * math.Pi,
	}
}

func (g *Cylinder) GeometryID() string { return g.UUID }

// Cone is a cone with its apex along the long axis.
type Cone struct {
	UUID           string  `msgpack:"uuid"`
	Type           string  `msgpack:"type"`
	Radius         float64 `msgpack:"radius"`
	Height         float64 `msgpack:"height"`
	RadialSegments int     `msgpack:"radialSegments"`
	HeightSegments int     `msgpack:"heightSegments"`
	ThetaStart     float64 `msgpack:"thetaStart"`
	ThetaLength    float64 `msgpack:"thetaLength"`
}

// NewCone returns a full cone geometry with default tessellation.
func NewCone(radius, height float64) *Cone {
	return &Cone{
		UUID:           uuid.NewString(),
		Type:           "ConeGeometry",
		Radius:         radius,
		Height:         height,
		RadialSegments: 32,
		HeightSegments: 1,
		ThetaLength:    2 * math.Pi,
	}
}

func (g *Cone) GeometryID() string { return g.UUID }

// Plane is a flat rectangle in the XY plane.
type Plane struct {
	UUID           string  `msgpack:"uuid"`
	Type           string  `msgpack:"type"`
	Width          float64 `msgpack:"width"`
	Height         float64 `msgpack:"height"`
	WidthSegments  int     `msgpack:"widthSegments"`
	HeightSegments int     `msgpack:"heightSegments"`
}

// NewPlane returns a single-segment plane geometry.
func NewPlane(width, height float64) *Plane {
	return &Plane{
		UUID:           uuid.NewString(),
		Type:           "PlaneGeometry",
		Width:          width,
		Height:         height,
		WidthSegments:  1,
		HeightSegments: 1,
	}
}

func (g *Plane) GeometryID() string { return g.UUID }

// Circle is a filled disc in the XY plane.
type Circle struct {
	UUID        string  `msgpack:"uuid"`
	Type        string  `msgpack:"type"`
	Radius      float64 `msgpack:"radius"`
	Segments    int     `msgpack:"segments"`
	ThetaStart  float64 `msgpack:"thetaStart"`
	ThetaLength float64 `msgpack:"thetaLength"`
}

// NewCircle returns a full circle geometry.
func NewCircle(radius float64) *Circle {
	return &Circle{
		UUID:        uuid.NewString(),
		Type:        "CircleGeometry",
		Radius:      radius,
		Segments:    32,
		ThetaLength: 2 * math.Pi,
	}
}

func (g *Circle) GeometryID() string { return g.UUID }

// Ring is a flat annulus in the XY plane.
type Ring struct {
	UUID          string  `msgpack:"uuid"`
	Type          string  `msgpack:"type"`
	InnerRadius   float64 `msgpack:"innerRadius"`
	OuterRadius   float64 `msgpack:"outerRadius"`
	ThetaSegments int     `msgpack:"thetaSegments"`
	PhiSegments   int     `msgpack:"phiSegments"`
	ThetaStart    float64 `msgpack:"thetaStart"`
	ThetaLength   float64 `msgpack:"thetaLength"`
}

// NewRing returns a full ring geometry.
func NewRing(innerRadius, outerRadius float64) *Ring {
	return &Ring{
		UUID:          uuid.NewString(),
		Type:          "RingGeometry",
		InnerRadius:   innerRadius,
		OuterRadius:   outerRadius,
		ThetaSegments: 32,
		PhiSegments:   1,
		ThetaLength:   2 * math.Pi,
	}
}

func (g *Ring) GeometryID() string { return g.UUID }

// Torus is a torus around the Z axis.
type Torus struct {
	UUID            string  `msgpack:"uuid"`
	Type            string  `msgpack:"type"`
	Radius          float64 `msgpack:"radius"`
	Tube            float64 `msgpack:"tube"`
	RadialSegments  int     `msgpack:"radialSegments"`
	TubularSegments int     `msgpack:"tubularSegments"`
}

// NewTorus returns a torus geometry with default tessellation.
func NewTorus(radius, tube float64) *Torus {
	return &Torus{
		UUID:            uuid.NewString(),
		Type:            "TorusGeometry",
		Radius:          radius,
		Tube:            tube,
		RadialSegments:  12,
		TubularSegments: 48,
	}
}

func (g *Torus) GeometryID() string { return g.UUID }

// Polyhedron is one of the regular polyhedra. Detail subdivides the faces
// toward a sphere.
type Polyhedron struct {
	UUID   string  `msgpack:"uuid"`
	Type   string  `msgpack:"type"`
	Radius float64 `msgpack:"radius"`
	Detail int     `msgpack:"detail"`
}

func (g *Polyhedron) GeometryID() string { return g.UUID }

func newPolyhedron(typ string, radius float64, detail int) *Polyhedron {
	return &Polyhedron{UUID: uuid.NewString(), Type: typ, Radius: radius, Detail: detail}
}

// NewTetrahedron returns a tetrahedron geometry.
func NewTetrahedron(radius float64, detail int) *Polyhedron {
	return newPolyhedron("TetrahedronGeometry", radius, detail)
}

// NewOctahedron returns an octahedron geometry.
func NewOctahedron(radius float64, detail int) *Polyhedron {
	return newPolyhedron("OctahedronGeometry", radius, detail)
}

// NewIcosahedron returns an icosahedron geometry.
func NewIcosahedron(radius float64, detail int) *Polyhedron {
	return newPolyhedron("IcosahedronGeometry", radius, detail)
}

// NewDodecahedron returns a dodecahedron geometry.
func NewDodecahedron(radius float64, detail int) *Polyhedron {
	return newPolyhedron("DodecahedronGeometry", radius, detail)
}
