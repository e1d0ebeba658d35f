// Package wire defines the command payloads of the meshcat protocol and
// their msgpack encoding. Every command targets a scene path and carries a
// type tag; transports frame the encoded payload together with the type and
// path so the server can route without decoding.
package wire

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/inercia/meshcat-go/geometry"
	"github.com/inercia/meshcat-go/pose"
)

// Command kind tags.
const (
	KindSetObject    = "set_object"
	KindSetTransform = "set_transform"
	KindSetProperty  = "set_property"
	KindDelete       = "delete"
	KindSetAnimation = "set_animation"
)

// Command is a routable scene mutation.
type Command interface {
	CommandKind() string
	CommandPath() string
}

// Marshal encodes a command payload as msgpack with named fields.
func Marshal(c Command) ([]byte, error) {
	buf, err := msgpack.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode %s %s: %w", c.CommandKind(), c.CommandPath(), err)
	}
	return buf, nil
}

// SetObject creates or replaces the object at a path.
type SetObject struct {
	Object *geometry.Object `msgpack:"object"`
	Path   string           `msgpack:"path"`
	Type   string           `msgpack:"type"`
}

// NewSetObject returns a set_object command.
func NewSetObject(path string, obj *geometry.Object) *SetObject {
	return &SetObject{Object: obj, Path: path, Type: KindSetObject}
}

func (c *SetObject) CommandKind() string { return c.Type }
func (c *SetObject) CommandPath() string { return c.Path }

// SetTransform sets the homogeneous transform of a path.
type SetTransform struct {
	Matrix [16]float64 `msgpack:"matrix"`
	Path   string      `msgpack:"path"`
	Type   string      `msgpack:"type"`
}

// NewSetTransform returns a set_transform command.
func NewSetTransform(path string, p pose.Pose) *SetTransform {
	return &SetTransform{Matrix: p.Matrix(), Path: path, Type: KindSetTransform}
}

func (c *SetTransform) CommandKind() string { return c.Type }
func (c *SetTransform) CommandPath() string { return c.Path }

// Delete removes a path and its subtree.
type Delete struct {
	Path string `msgpack:"path"`
	Type string `msgpack:"type"`
}

// NewDelete returns a delete command.
func NewDelete(path string) *Delete {
	return &Delete{Path: path, Type: KindDelete}
}

func (c *Delete) CommandKind() string { return c.Type }
func (c *Delete) CommandPath() string { return c.Path }

// SetProperty sets a named property on a path.
type SetProperty struct {
	Path     string `msgpack:"path"`
	Type     string `msgpack:"type"`
	Property string `msgpack:"property"`
	Value    any    `msgpack:"value"`
}

// NewSetProperty returns a set_property command.
func NewSetProperty(path string, p Property) *SetProperty {
	return &SetProperty{Path: path, Type: KindSetProperty, Property: p.Name, Value: p.Value}
}

func (c *SetProperty) CommandKind() string { return c.Type }
func (c *SetProperty) CommandPath() string { return c.Path }
