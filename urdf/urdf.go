// Package urdf loads URDF robot descriptions and publishes them to a
// meshcat viewer: every link with visuals becomes a scene object, every
// joint origin a transform, with paths derived from the kinematic tree.
package urdf

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/inercia/meshcat-go/pose"
)

// Robot is the root of a URDF document.
type Robot struct {
	XMLName xml.Name `xml:"robot"`
	Name    string   `xml:"name,attr"`
	Links   []Link   `xml:"link"`
	Joints  []Joint  `xml:"joint"`

	// Dir is the directory the document was loaded from; mesh filenames
	// resolve relative to it. Set by Load, empty for Parse.
	Dir string `xml:"-"`
}

// Link is a rigid body with zero or more visual geometries.
type Link struct {
	Name    string   `xml:"name,attr"`
	Visuals []Visual `xml:"visual"`
}

// Visual is one displayable geometry of a link.
type Visual struct {
	Origin   Origin       `xml:"origin"`
	Geometry Geom         `xml:"geometry"`
	Material *MaterialRef `xml:"material"`
}

// MaterialRef is a URDF material, possibly carrying an inline color.
type MaterialRef struct {
	Name  string `xml:"name,attr"`
	Color *Color `xml:"color"`
}

// Color is an rgba attribute with components in [0, 1].
type Color struct {
	RGBA string `xml:"rgba,attr"`
}

// Values parses the rgba attribute.
func (c *Color) Values() ([4]float64, error) {
	vals, err := parseFloats(c.RGBA, 4)
	if err != nil {
		return [4]float64{}, fmt.Errorf("parse rgba %q: %w", c.RGBA, err)
	}
	return [4]float64{vals[0], vals[1], vals[2], vals[3]}, nil
}

// Origin is a URDF pose: xyz translation and rpy Euler angles.
type Origin struct {
	XYZ string `xml:"xyz,attr"`
	RPY string `xml:"rpy,attr"`
}

// Pose converts the origin to a rigid transform. Missing attributes mean
// zero.
func (o Origin) Pose() (pose.Pose, error) {
	xyz := [3]float64{}
	if o.XYZ != "" {
		vals, err := parseFloats(o.XYZ, 3)
		if err != nil {
			return pose.Identity(), fmt.Errorf("parse origin xyz %q: %w", o.XYZ, err)
		}
		copy(xyz[:], vals)
	}
	rpy := [3]float64{}
	if o.RPY != "" {
		vals, err := parseFloats(o.RPY, 3)
		if err != nil {
			return pose.Identity(), fmt.Errorf("parse origin rpy %q: %w", o.RPY, err)
		}
		copy(rpy[:], vals)
	}
	return pose.New(xyz[0], xyz[1], xyz[2], rpy[0], rpy[1], rpy[2]), nil
}

// Geom holds exactly one of the URDF geometry elements.
type Geom struct {
	Box      *BoxElem      `xml:"box"`
	Cylinder *CylinderElem `xml:"cylinder"`
	Sphere   *SphereElem   `xml:"sphere"`
	Capsule  *CapsuleElem  `xml:"capsule"`
	Mesh     *MeshElem     `xml:"mesh"`
}

// BoxElem is a box with a size attribute "x y z".
type BoxElem struct {
	Size string `xml:"size,attr"`
}

// CylinderElem is a cylinder along Z.
type CylinderElem struct {
	Radius float64 `xml:"radius,attr"`
	Length float64 `xml:"length,attr"`
}

// SphereElem is a sphere.
type SphereElem struct {
	Radius float64 `xml:"radius,attr"`
}

// CapsuleElem exists only to report a useful error: the viewer cannot draw
// capsules.
type CapsuleElem struct{}

// MeshElem references an external mesh file.
type MeshElem struct {
	Filename string `xml:"filename,attr"`
	Scale    string `xml:"scale,attr"`
}

// Joint connects a parent link to a child link at an origin.
type Joint struct {
	Name   string  `xml:"name,attr"`
	Type   string  `xml:"type,attr"`
	Origin Origin  `xml:"origin"`
	Parent LinkRef `xml:"parent"`
	Child  LinkRef `xml:"child"`
}

// LinkRef names a link from a joint.
type LinkRef struct {
	Link string `xml:"link,attr"`
}

// Parse decodes a URDF document.
func Parse(data []byte) (*Robot, error) {
	var robot Robot
	if err := xml.Unmarshal(data, &robot); err != nil {
		return nil, fmt.Errorf("parse urdf: %w", err)
	}
	return &robot, nil
}

// Load reads and decodes a URDF file. Mesh filenames in the document will
// resolve relative to the file's directory.
func Load(path string) (*Robot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read urdf: %w", err)
	}
	robot, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	robot.Dir = filepath.Dir(path)
	return robot, nil
}

// PathMap derives the scene path of every link and joint from the kinematic
// tree: a root link lives at /<link>, a joint under its parent link's path,
// and a child link under its joint's path.
func PathMap(robot *Robot) map[string]string {
	paths := make(map[string]string)
	for _, joint := range robot.Joints {
		parentPath, ok := paths[joint.Parent.Link]
		if !ok {
			parentPath = "/" + joint.Parent.Link
			paths[joint.Parent.Link] = parentPath
		}
		jointPath := parentPath + "/" + joint.Name
		paths[joint.Name] = jointPath
		paths[joint.Child.Link] = jointPath + "/" + joint.Child.Link
	}
	// A robot with no joints still has its links.
	for _, link := range robot.Links {
		if _, ok := paths[link.Name]; !ok {
			paths[link.Name] = "/" + link.Name
		}
	}
	return paths
}

func parseFloats(s string, want int) ([]float64, error) {
	fields := strings.Fields(s)
	if len(fields) != want {
		return nil, fmt.Errorf("want %d values, got %d", want, len(fields))
	}
	vals := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}
