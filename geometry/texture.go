package geometry

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Texture maps onto a material. Two flavors exist: rendered text ("_text")
// and image textures referencing an Image by uuid.
type Texture struct {
	UUID     string `msgpack:"uuid"`
	Type     string `msgpack:"type,omitempty"`
	Text     string `msgpack:"text,omitempty"`
	FontSize int    `msgpack:"font_size,omitempty"`
	FontFace string `msgpack:"font_face,omitempty"`
	Image    string `msgpack:"image,omitempty"`
	Repeat   []int  `msgpack:"repeat,omitempty"`
	Wrap     []int  `msgpack:"wrap,omitempty"`
}

// NewTextTexture renders text onto the textured surface.
func NewTextTexture(text string, fontSize int, fontFace string) *Texture {
	return &Texture{
		UUID:     uuid.NewString(),
		Type:     "_text",
		Text:     text,
		FontSize: fontSize,
		FontFace: fontFace,
	}
}

// NewImageTexture returns an image texture. The image uuid is linked in
// during object assembly. Wrap 1001 is clamp-to-edge.
func NewImageTexture() *Texture {
	return &Texture{
		UUID:   uuid.NewString(),
		Repeat: []int{1, 1},
		Wrap:   []int{1001, 1001},
	}
}

// Image is an embedded image, sent as a base64 data URL.
type Image struct {
	UUID string `msgpack:"uuid"`
	URL  string `msgpack:"url"`
}

// NewImage wraps an already-encoded data URL.
func NewImage(dataURL string) *Image {
	return &Image{UUID: uuid.NewString(), URL: dataURL}
}

// LoadImage reads a PNG from disk and embeds it as a data URL.
func LoadImage(path string) (*Image, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext != "png" {
		return nil, fmt.Errorf("unsupported image format %q for %s", ext, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	return NewImage("data:image/png;base64," + base64.StdEncoding.EncodeToString(data)), nil
}
