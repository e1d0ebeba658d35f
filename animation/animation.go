// Package animation builds keyframed clips in the viewer's AnimationClip
// shape and turns them into set_animation commands. Frames are addressed by
// time in seconds; each scene path gets its own clip.
package animation

import (
	"github.com/inercia/meshcat-go/pose"
	"github.com/inercia/meshcat-go/wire"
)

// Track types understood by the viewer.
const (
	trackVector3    = "vector3"
	trackQuaternion = "quaternion"
	trackNumber     = "number"
)

// Key is one keyframe of a track.
type Key struct {
	Time  float64 `msgpack:"time"`
	Value any     `msgpack:"value"`
}

// Track animates one property of a node.
type Track struct {
	Name string `msgpack:"name"`
	Type string `msgpack:"type"`
	Keys []Key  `msgpack:"keys"`
}

// Clip is a named set of tracks sampled at a fixed rate.
type Clip struct {
	FPS    float64 `msgpack:"fps"`
	Name   string  `msgpack:"name"`
	Tracks []Track `msgpack:"tracks"`
}

func (c *Clip) track(name, typ string) *Track {
	for i := range c.Tracks {
		if c.Tracks[i].Name == name {
			return &c.Tracks[i]
		}
	}
	c.Tracks = append(c.Tracks, Track{Name: name, Type: typ})
	return &c.Tracks[len(c.Tracks)-1]
}

func (c *Clip) addKey(name, typ string, t float64, value any) {
	tr := c.track(name, typ)
	tr.Keys = append(tr.Keys, Key{Time: t, Value: value})
}

// SetPosition adds a position keyframe at time t.
func (c *Clip) SetPosition(t, x, y, z float64) {
	c.addKey(".position", trackVector3, t, [3]float64{x, y, z})
}

// SetQuaternion adds a rotation keyframe at time t, [x, y, z, w] order.
func (c *Clip) SetQuaternion(t float64, q [4]float64) {
	c.addKey(".quaternion", trackQuaternion, t, q)
}

// SetScale adds a scale keyframe at time t.
func (c *Clip) SetScale(t, x, y, z float64) {
	c.addKey(".scale", trackVector3, t, [3]float64{x, y, z})
}

// SetOpacity adds a material opacity keyframe at time t.
func (c *Clip) SetOpacity(t, opacity float64) {
	c.addKey(".material.opacity", trackNumber, t, opacity)
}

// SetTransform adds position and rotation keyframes at time t from a pose.
func (c *Clip) SetTransform(t float64, p pose.Pose) {
	tr := p.Translation
	c.SetPosition(t, tr.X, tr.Y, tr.Z)
	c.SetQuaternion(t, p.Quaternion())
}

// Animation collects clips per scene path. Paths keep insertion order so
// the emitted command is deterministic.
type Animation struct {
	fps   float64
	paths []string
	clips map[string]*Clip
}

// DefaultFPS is the sampling rate used when none is given.
const DefaultFPS = 30

// New returns an empty animation sampled at fps (DefaultFPS if fps <= 0).
func New(fps float64) *Animation {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &Animation{fps: fps, clips: make(map[string]*Clip)}
}

// At returns the clip animating path, creating it on first use.
func (a *Animation) At(path string) *Clip {
	if clip, ok := a.clips[path]; ok {
		return clip
	}
	clip := &Clip{FPS: a.fps, Name: "default"}
	a.clips[path] = clip
	a.paths = append(a.paths, path)
	return clip
}

// Options controls playback of an installed animation.
type Options struct {
	Play        bool
	Repetitions int
}

// PlayOnce plays the animation a single time.
var PlayOnce = Options{Play: true, Repetitions: 1}

// Command converts the animation into a set_animation command.
func (a *Animation) Command(opts Options) *wire.SetAnimation {
	entries := make([]wire.AnimationEntry, 0, len(a.paths))
	for _, path := range a.paths {
		entries = append(entries, wire.AnimationEntry{Path: path, Clip: a.clips[path]})
	}
	return wire.NewSetAnimation(entries, wire.AnimationOptions{
		Play:        opts.Play,
		Repetitions: opts.Repetitions,
	})
}
