package geometry

import "github.com/google/uuid"

// Attribute is a flat typed array of per-vertex data.
type Attribute struct {
	ItemSize   int       `msgpack:"itemSize"`
	Type       string    `msgpack:"type"`
	Array      []float32 `msgpack:"array"`
	Normalized bool      `msgpack:"normalized"`
}

// Float32Attribute returns a Float32Array attribute. len(values) must be a
// multiple of itemSize.
func Float32Attribute(itemSize int, values []float32) *Attribute {
	return &Attribute{ItemSize: itemSize, Type: "Float32Array", Array: values}
}

// Attributes holds the per-vertex attributes of a buffer geometry. Position
// is required; the rest are optional.
type Attributes struct {
	Position *Attribute `msgpack:"position"`
	Color    *Attribute `msgpack:"color,omitempty"`
	Normal   *Attribute `msgpack:"normal,omitempty"`
	UV       *Attribute `msgpack:"uv,omitempty"`
}

type bufferData struct {
	Attributes Attributes `msgpack:"attributes"`
}

// Buffer is a raw vertex-attribute geometry, used for point clouds and
// line sets.
type Buffer struct {
	UUID string     `msgpack:"uuid"`
	Type string     `msgpack:"type"`
	Data bufferData `msgpack:"data"`
}

// NewBuffer returns a buffer geometry with the given attributes.
func NewBuffer(attrs Attributes) *Buffer {
	return &Buffer{UUID: uuid.NewString(), Type: "BufferGeometry", Data: bufferData{Attributes: attrs}}
}

// NewPointCloud returns a buffer geometry from interleaved xyz positions and
// rgb colors, three floats per point.
func NewPointCloud(positions, colors []float32) *Buffer {
	return NewBuffer(Attributes{
		Position: Float32Attribute(3, positions),
		Color:    Float32Attribute(3, colors),
	})
}

func (g *Buffer) GeometryID() string { return g.UUID }
