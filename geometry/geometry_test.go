package geometry

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPrimitiveTypeNames(t *testing.T) {
	cases := []struct {
		geom Geometry
		want string
	}{
		{NewBox(1, 2, 3), "BoxGeometry"},
		{NewSphere(1), "SphereGeometry"},
		{NewCylinder(1, 1, 2), "CylinderGeometry"},
		{NewCone(1, 2), "ConeGeometry"},
		{NewPlane(1, 1), "PlaneGeometry"},
		{NewCircle(1), "CircleGeometry"},
		{NewRing(0.5, 1), "RingGeometry"},
		{NewTorus(0.5, 0.2), "TorusGeometry"},
		{NewTetrahedron(1, 0), "TetrahedronGeometry"},
		{NewOctahedron(1, 0), "OctahedronGeometry"},
		{NewIcosahedron(1, 0), "IcosahedronGeometry"},
		{NewDodecahedron(1, 0), "DodecahedronGeometry"},
	}
	for _, c := range cases {
		typ := ""
		switch g := c.geom.(type) {
		case *Box:
			typ = g.Type
		case *Sphere:
			typ = g.Type
		case *Cylinder:
			typ = g.Type
		case *Cone:
			typ = g.Type
		case *Plane:
			typ = g.Type
		case *Circle:
			typ = g.Type
		case *Ring:
			typ = g.Type
		case *Torus:
			typ = g.Type
		case *Polyhedron:
			typ = g.Type
		}
		if typ != c.want {
			t.Errorf("type = %q, want %q", typ, c.want)
		}
		if c.geom.GeometryID() == "" {
			t.Errorf("%s has empty uuid", c.want)
		}
	}
}

func TestCylinderDefaults(t *testing.T) {
	g := NewCylinder(0.5, 0.6, 2)
	if g.RadialSegments != 32 || g.HeightSegments != 1 {
		t.Errorf("segments = %d/%d, want 32/1", g.RadialSegments, g.HeightSegments)
	}
	if math.Abs(g.ThetaLength-2*math.Pi) > 1e-12 {
		t.Errorf("thetaLength = %v, want 2*pi", g.ThetaLength)
	}
}

func TestUniqueUUIDs(t *testing.T) {
	a, b := NewBox(1, 1, 1), NewBox(1, 1, 1)
	if a.GeometryID() == b.GeometryID() {
		t.Error("two geometries share a uuid")
	}
}

func TestNewPointCloudAttributes(t *testing.T) {
	g := NewPointCloud([]float32{1, 2, 3, 4, 5, 6}, []float32{0, 0, 0, 1, 1, 1})

	pos := g.Data.Attributes.Position
	if pos == nil {
		t.Fatal("missing position attribute")
	}
	if pos.ItemSize != 3 || pos.Type != "Float32Array" {
		t.Errorf("position attribute = %d/%s, want 3/Float32Array", pos.ItemSize, pos.Type)
	}
	if len(pos.Array) != 6 {
		t.Errorf("position array len = %d, want 6", len(pos.Array))
	}
	if g.Data.Attributes.Color == nil {
		t.Error("missing color attribute")
	}
	if g.Data.Attributes.Normal != nil || g.Data.Attributes.UV != nil {
		t.Error("unexpected normal/uv attributes")
	}
}

func TestLoadMeshFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tri.obj")
	contents := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	g, err := LoadMeshFile(path)
	if err != nil {
		t.Fatalf("LoadMeshFile: %v", err)
	}
	if g.Format != "obj" {
		t.Errorf("format = %q, want obj", g.Format)
	}
	if g.Type != "_meshfile_geometry" {
		t.Errorf("type = %q, want _meshfile_geometry", g.Type)
	}
	if g.Data != contents {
		t.Errorf("data = %q, want file contents", g.Data)
	}
}

func TestLoadMeshFileUnsupportedFormat(t *testing.T) {
	if _, err := LoadMeshFile("model.fbx"); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestLoadImagePNG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pixel.png")
	if err := os.WriteFile(path, []byte{0x89, 'P', 'N', 'G'}, 0o644); err != nil {
		t.Fatal(err)
	}

	img, err := LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if !strings.HasPrefix(img.URL, "data:image/png;base64,") {
		t.Errorf("url = %q, want data URL prefix", img.URL)
	}
}

func TestLoadImageUnsupportedFormat(t *testing.T) {
	if _, err := LoadImage("photo.jpg"); err == nil {
		t.Error("expected error for unsupported image format")
	}
}
