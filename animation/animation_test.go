package animation

import (
	"math"
	"testing"

	"github.com/inercia/meshcat-go/pose"
)

func TestAtReturnsSameClip(t *testing.T) {
	a := New(30)
	if a.At("/box") != a.At("/box") {
		t.Error("At returned different clips for the same path")
	}
}

func TestClipTracksAccumulateKeys(t *testing.T) {
	a := New(30)
	clip := a.At("/box")
	clip.SetPosition(0, 0, 0, 0)
	clip.SetPosition(1, 1, 0, 0)
	clip.SetQuaternion(0, [4]float64{0, 0, 0, 1})

	if len(clip.Tracks) != 2 {
		t.Fatalf("tracks = %d, want 2", len(clip.Tracks))
	}
	if clip.Tracks[0].Name != ".position" || len(clip.Tracks[0].Keys) != 2 {
		t.Errorf("position track = %q with %d keys, want .position with 2",
			clip.Tracks[0].Name, len(clip.Tracks[0].Keys))
	}
	if clip.Tracks[1].Name != ".quaternion" || clip.Tracks[1].Type != "quaternion" {
		t.Errorf("quaternion track = %q/%q, want .quaternion/quaternion",
			clip.Tracks[1].Name, clip.Tracks[1].Type)
	}
}

func TestSetTransformAddsBothTracks(t *testing.T) {
	a := New(30)
	clip := a.At("/robot")
	clip.SetTransform(0.5, pose.New(1, 2, 3, 0, 0, math.Pi))

	names := map[string]bool{}
	for _, tr := range clip.Tracks {
		names[tr.Name] = true
	}
	if !names[".position"] || !names[".quaternion"] {
		t.Errorf("tracks = %v, want .position and .quaternion", names)
	}
}

func TestCommandPreservesPathOrder(t *testing.T) {
	a := New(0)
	a.At("/b").SetPosition(0, 0, 0, 0)
	a.At("/a").SetPosition(0, 1, 1, 1)

	cmd := a.Command(PlayOnce)
	if len(cmd.Animations) != 2 {
		t.Fatalf("animations = %d, want 2", len(cmd.Animations))
	}
	if cmd.Animations[0].Path != "/b" || cmd.Animations[1].Path != "/a" {
		t.Errorf("paths = [%s %s], want insertion order [/b /a]",
			cmd.Animations[0].Path, cmd.Animations[1].Path)
	}
	if cmd.Type != "set_animation" {
		t.Errorf("type = %q, want set_animation", cmd.Type)
	}
	if !cmd.Options.Play || cmd.Options.Repetitions != 1 {
		t.Errorf("options = %+v, want play once", cmd.Options)
	}
}

func TestDefaultFPS(t *testing.T) {
	a := New(0)
	if clip := a.At("/x"); clip.FPS != DefaultFPS {
		t.Errorf("fps = %v, want %v", clip.FPS, DefaultFPS)
	}
}
