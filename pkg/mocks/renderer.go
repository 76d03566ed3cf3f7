package mocks

import (
	"image"
	"image/color"
	"sync"

	"github.com/user/videocropper/pkg/ports"
)

// DrawCall records one DrawBox invocation.
type DrawCall struct {
	Rect  image.Rectangle
	Color color.Color
}

// Renderer is a mock implementation of ports.Renderer.
// By default DrawBox returns a fresh blank image of the same size, Crop
// returns a blank image of the rectangle's size and EncodeImage returns
// the encoded image's bounds as text.
type Renderer struct {
	mu sync.Mutex

	DrawBoxFunc     func(img image.Image, rect image.Rectangle, c color.Color, strokeWidth float64) image.Image
	CropFunc        func(img image.Image, rect image.Rectangle) image.Image
	EncodeImageFunc func(img image.Image, format ports.ImageFormat) ([]byte, error)

	Draws   []DrawCall
	Crops   []image.Rectangle
	Encoded []image.Image
}

func (m *Renderer) DrawBox(img image.Image, rect image.Rectangle, c color.Color, strokeWidth float64) image.Image {
	m.mu.Lock()
	m.Draws = append(m.Draws, DrawCall{Rect: rect, Color: c})
	m.mu.Unlock()
	if m.DrawBoxFunc != nil {
		return m.DrawBoxFunc(img, rect, c, strokeWidth)
	}
	return image.NewRGBA(img.Bounds())
}

func (m *Renderer) Crop(img image.Image, rect image.Rectangle) image.Image {
	m.mu.Lock()
	m.Crops = append(m.Crops, rect)
	m.mu.Unlock()
	if m.CropFunc != nil {
		return m.CropFunc(img, rect)
	}
	return image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
}

func (m *Renderer) EncodeImage(img image.Image, format ports.ImageFormat) ([]byte, error) {
	m.mu.Lock()
	m.Encoded = append(m.Encoded, img)
	m.mu.Unlock()
	if m.EncodeImageFunc != nil {
		return m.EncodeImageFunc(img, format)
	}
	return []byte(img.Bounds().String()), nil
}

var _ ports.Renderer = (*Renderer)(nil)
