package wire

import (
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/inercia/meshcat-go/geometry"
	"github.com/inercia/meshcat-go/pose"
)

func decode(t *testing.T, buf []byte) map[string]any {
	t.Helper()
	var m map[string]any
	if err := msgpack.Unmarshal(buf, &m); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	return m
}

func TestSetTransformPayload(t *testing.T) {
	cmd := NewSetTransform("/robot/base", pose.Translation(1, 2, 3))
	buf, err := Marshal(cmd)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	m := decode(t, buf)
	if m["type"] != "set_transform" {
		t.Errorf("type = %v, want set_transform", m["type"])
	}
	if m["path"] != "/robot/base" {
		t.Errorf("path = %v, want /robot/base", m["path"])
	}
	matrix, ok := m["matrix"].([]any)
	if !ok {
		t.Fatalf("matrix has type %T, want array", m["matrix"])
	}
	if len(matrix) != 16 {
		t.Fatalf("matrix len = %d, want 16", len(matrix))
	}
	// Column-major: translation lives in elements 12..14.
	if matrix[12] != float64(1) || matrix[13] != float64(2) || matrix[14] != float64(3) {
		t.Errorf("translation = [%v %v %v], want [1 2 3]", matrix[12], matrix[13], matrix[14])
	}
}

func TestSetObjectPayload(t *testing.T) {
	obj := geometry.NewObject(
		geometry.WithGeometry(geometry.NewBox(1, 2, 3)),
		geometry.WithMaterial(geometry.NewMaterial(geometry.WithColor(0x00ff00))),
	)
	buf, err := Marshal(NewSetObject("/box", obj))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	m := decode(t, buf)
	if m["type"] != "set_object" {
		t.Errorf("type = %v, want set_object", m["type"])
	}
	payload, ok := m["object"].(map[string]any)
	if !ok {
		t.Fatalf("object has type %T, want map", m["object"])
	}
	metadata, ok := payload["metadata"].(map[string]any)
	if !ok {
		t.Fatalf("metadata has type %T, want map", payload["metadata"])
	}
	if metadata["type"] != "Object" {
		t.Errorf("metadata type = %v, want Object", metadata["type"])
	}
	if metadata["version"] != 4.5 {
		t.Errorf("metadata version = %v, want 4.5", metadata["version"])
	}

	geoms, ok := payload["geometries"].([]any)
	if !ok || len(geoms) != 1 {
		t.Fatalf("geometries = %v, want one entry", payload["geometries"])
	}
	box := geoms[0].(map[string]any)
	if box["type"] != "BoxGeometry" {
		t.Errorf("geometry type = %v, want BoxGeometry", box["type"])
	}
	for field, want := range map[string]float64{"width": 1, "height": 2, "depth": 3} {
		if box[field] != want {
			t.Errorf("geometry %s = %v, want %v", field, box[field], want)
		}
	}

	mats, ok := payload["materials"].([]any)
	if !ok || len(mats) != 1 {
		t.Fatalf("materials = %v, want one entry", payload["materials"])
	}
	mat := mats[0].(map[string]any)
	if mat["type"] != "MeshPhongMaterial" {
		t.Errorf("material type = %v, want MeshPhongMaterial", mat["type"])
	}

	// Unset optional material fields must stay off the wire.
	if _, present := mat["opacity"]; present {
		t.Error("unset opacity was encoded")
	}
	if _, present := payload["textures"]; present {
		t.Error("unset textures were encoded")
	}
}

func TestDeletePayload(t *testing.T) {
	buf, err := Marshal(NewDelete("/old"))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	m := decode(t, buf)
	if m["type"] != "delete" || m["path"] != "/old" {
		t.Errorf("payload = %v, want type delete path /old", m)
	}
}

func TestSetPropertyPayloads(t *testing.T) {
	cases := []struct {
		prop     Property
		wantName string
		wantLen  int // -1 for scalar
	}{
		{Visible(false), "visible", -1},
		{Position(1, 2, 3), "position", 3},
		{Quaternion([4]float64{0, 0, 0, 1}), "quaternion", 4},
		{Scale(2, 2, 2), "scale", 3},
		{Color(0.5, 0.8, 0.5, 0.5), "color", 4},
		{Opacity(0.25), "opacity", -1},
		{ModulatedOpacity(0.5), "modulated_opacity", -1},
		{TopColor(0.5, 0.8, 0.5), "top_color", 3},
		{BottomColor(0.6, 0, 0.5), "bottom_color", 3},
	}
	for _, c := range cases {
		buf, err := Marshal(NewSetProperty("/node", c.prop))
		if err != nil {
			t.Fatalf("Marshal %s: %v", c.wantName, err)
		}
		m := decode(t, buf)
		if m["type"] != "set_property" {
			t.Errorf("%s: type = %v, want set_property", c.wantName, m["type"])
		}
		if m["property"] != c.wantName {
			t.Errorf("property = %v, want %v", m["property"], c.wantName)
		}
		if c.wantLen >= 0 {
			arr, ok := m["value"].([]any)
			if !ok {
				t.Errorf("%s: value has type %T, want array", c.wantName, m["value"])
				continue
			}
			if len(arr) != c.wantLen {
				t.Errorf("%s: value len = %d, want %d", c.wantName, len(arr), c.wantLen)
			}
		}
	}
}

func TestSetAnimationPayload(t *testing.T) {
	cmd := NewSetAnimation(
		[]AnimationEntry{{Path: "/box", Clip: map[string]any{"fps": 30.0}}},
		AnimationOptions{Play: true, Repetitions: 1},
	)
	buf, err := Marshal(cmd)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	m := decode(t, buf)
	if m["type"] != "set_animation" {
		t.Errorf("type = %v, want set_animation", m["type"])
	}
	if m["path"] != "" {
		t.Errorf("path = %v, want empty", m["path"])
	}
	opts, ok := m["options"].(map[string]any)
	if !ok {
		t.Fatalf("options has type %T, want map", m["options"])
	}
	if opts["play"] != true {
		t.Errorf("options play = %v, want true", opts["play"])
	}
}
