package geometry

import (
	"math"
	"testing"
)

func TestNewObjectSingleGeometry(t *testing.T) {
	obj := NewObject(WithGeometry(NewBox(1, 1, 1)))

	if len(obj.Geometries) != 1 {
		t.Fatalf("geometries = %d, want 1", len(obj.Geometries))
	}
	if obj.Textures != nil || obj.Images != nil {
		t.Error("expected no textures or images")
	}
	if obj.Object.Geometry != "" {
		t.Errorf("root node geometry = %q, want empty", obj.Object.Geometry)
	}
	if len(obj.Object.Children) != 1 {
		t.Fatalf("children = %d, want 1", len(obj.Object.Children))
	}
	child := obj.Object.Children[0]
	if child.Geometry != obj.Geometries[0].GeometryID() {
		t.Errorf("child geometry = %q, want %q", child.Geometry, obj.Geometries[0].GeometryID())
	}
	if child.Material != obj.Materials[0].UUID {
		t.Errorf("child material = %q, want %q", child.Material, obj.Materials[0].UUID)
	}
	if obj.Materials[0].Map != "" {
		t.Errorf("material map = %q, want empty", obj.Materials[0].Map)
	}
}

func TestNewObjectMultipleGeometries(t *testing.T) {
	obj := NewObject(
		WithGeometry(NewBox(1, 1, 1)),
		WithGeometry(NewCylinder(0.2, 0.2, 0.5)),
	)

	if len(obj.Geometries) != 2 {
		t.Fatalf("geometries = %d, want 2", len(obj.Geometries))
	}
	if len(obj.Object.Children) != 2 {
		t.Fatalf("children = %d, want 2", len(obj.Object.Children))
	}
	for i, child := range obj.Object.Children {
		if child.Geometry != obj.Geometries[i].GeometryID() {
			t.Errorf("child[%d] geometry = %q, want %q", i, child.Geometry, obj.Geometries[i].GeometryID())
		}
	}
}

func TestNewObjectCylinderAxisFix(t *testing.T) {
	obj := NewObject(WithGeometry(NewCylinder(0.5, 0.5, 1)))

	m := obj.Object.Children[0].Matrix
	// A rotation of pi/2 about X maps Y to Z: the second column becomes
	// (0, 0, 1, 0) in column-major layout.
	if math.Abs(m[5]) > 1e-9 || math.Abs(m[6]-1) > 1e-9 {
		t.Errorf("cylinder child matrix column 1 = [%v %v %v], want [0 0 1]", m[4], m[5], m[6])
	}
}

func TestNewObjectBoxKeepsIdentity(t *testing.T) {
	obj := NewObject(WithGeometry(NewBox(1, 1, 1)))

	m := obj.Object.Children[0].Matrix
	for i, want := range [16]float64{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1} {
		if math.Abs(m[i]-want) > 1e-9 {
			t.Fatalf("child matrix[%d] = %v, want %v", i, m[i], want)
		}
	}
}

func TestNewObjectWithTextTexture(t *testing.T) {
	obj := NewObject(
		WithGeometry(NewBox(1, 1, 1)),
		WithTexture(NewTextTexture("Hello, meshcat!", 12, "sans-serif")),
	)

	if obj.Textures == nil {
		t.Fatal("expected a texture")
	}
	if obj.Images != nil {
		t.Error("expected no image")
	}
	if obj.Materials[0].Map != obj.Textures[0].UUID {
		t.Errorf("material map = %q, want texture uuid %q", obj.Materials[0].Map, obj.Textures[0].UUID)
	}
	if obj.Textures[0].Type != "_text" {
		t.Errorf("texture type = %q, want _text", obj.Textures[0].Type)
	}
}

func TestNewObjectWithImageTexture(t *testing.T) {
	img := NewImage("data:image/png;base64,AAAA")
	obj := NewObject(
		WithGeometry(NewBox(1, 1, 1)),
		WithImage(img),
		WithTexture(NewImageTexture()),
	)

	if obj.Textures == nil || obj.Images == nil {
		t.Fatal("expected texture and image")
	}
	tex := obj.Textures[0]
	if obj.Materials[0].Map != tex.UUID {
		t.Errorf("material map = %q, want texture uuid %q", obj.Materials[0].Map, tex.UUID)
	}
	if tex.Image != img.UUID {
		t.Errorf("texture image = %q, want image uuid %q", tex.Image, img.UUID)
	}
	if len(tex.Repeat) != 2 || tex.Repeat[0] != 1 {
		t.Errorf("texture repeat = %v, want [1 1]", tex.Repeat)
	}
	if len(tex.Wrap) != 2 || tex.Wrap[0] != 1001 {
		t.Errorf("texture wrap = %v, want [1001 1001]", tex.Wrap)
	}
}

func TestNewObjectDefaultMaterial(t *testing.T) {
	obj := NewObject(WithGeometry(NewSphere(1)))

	m := obj.Materials[0]
	if m.Type != MeshPhong {
		t.Errorf("default material type = %q, want %q", m.Type, MeshPhong)
	}
	if m.Side != DoubleSide {
		t.Errorf("default material side = %d, want %d", m.Side, DoubleSide)
	}
	if obj.Object.Material != m.UUID {
		t.Errorf("root node material = %q, want %q", obj.Object.Material, m.UUID)
	}
}

func TestNewObjectPointsKind(t *testing.T) {
	obj := NewObject(
		WithGeometry(NewPointCloud([]float32{0, 0, 0}, []float32{1, 1, 1})),
		WithMaterial(NewMaterial(WithPointSize(0.01), WithVertexColors())),
		WithKind(PointsObject),
	)

	if obj.Object.Type != PointsObject {
		t.Errorf("object type = %q, want %q", obj.Object.Type, PointsObject)
	}
	if obj.Object.Children[0].Type != PointsObject {
		t.Errorf("child type = %q, want %q", obj.Object.Children[0].Type, PointsObject)
	}
	if obj.Materials[0].Type != Points {
		t.Errorf("material type = %q, want %q", obj.Materials[0].Type, Points)
	}
	if obj.Materials[0].Size == nil || *obj.Materials[0].Size != 0.01 {
		t.Error("expected point size 0.01")
	}
}
