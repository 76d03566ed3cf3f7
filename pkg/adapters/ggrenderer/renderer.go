// Package ggrenderer draws selection boxes with gg and encodes patches.
package ggrenderer

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"

	"github.com/fogleman/gg"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"

	"github.com/user/videocropper/pkg/ports"
)

// JPEGQuality is the quality used for .jpg patches.
const JPEGQuality = 95

// Renderer implements ports.Renderer using the gg library.
type Renderer struct{}

// New creates a new Renderer.
func New() *Renderer {
	return &Renderer{}
}

// DrawBox returns a copy of img with the outline of rect stroked in c.
// The stroke lies inside rect so that a box touching the frame edge stays
// visible. img is not modified.
func (r *Renderer) DrawBox(img image.Image, rect image.Rectangle, c color.Color, strokeWidth float64) image.Image {
	if strokeWidth < 1 {
		strokeWidth = 1
	}

	// gg works in a 0-based pixel space.
	b := img.Bounds()
	canvas := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Copy(canvas, image.Point{}, img, b, draw.Src, nil)
	local := rect.Sub(b.Min)

	half := strokeWidth / 2
	w := max(float64(local.Dx())-strokeWidth, 0)
	h := max(float64(local.Dy())-strokeWidth, 0)

	dc := gg.NewContextForRGBA(canvas)
	dc.SetColor(c)
	dc.SetLineWidth(strokeWidth)
	dc.DrawRectangle(float64(local.Min.X)+half, float64(local.Min.Y)+half, w, h)
	dc.Stroke()

	canvas.Rect = b
	return canvas
}

// Crop copies the pixels of rect out of img into a new image whose bounds
// start at (0,0).
func (r *Renderer) Crop(img image.Image, rect image.Rectangle) image.Image {
	rect = rect.Intersect(img.Bounds())
	dst := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	draw.Copy(dst, image.Point{}, img, rect, draw.Src, nil)
	return dst
}

// EncodeImage encodes an image to the specified format.
func (r *Renderer) EncodeImage(img image.Image, format ports.ImageFormat) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case ports.FormatPNG:
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("encode PNG: %w", err)
		}
	case ports.FormatJPEG:
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: JPEGQuality}); err != nil {
			return nil, fmt.Errorf("encode JPEG: %w", err)
		}
	case ports.FormatBMP:
		if err := bmp.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("encode BMP: %w", err)
		}
	case ports.FormatTIFF:
		if err := tiff.Encode(&buf, img, &tiff.Options{Compression: tiff.Deflate}); err != nil {
			return nil, fmt.Errorf("encode TIFF: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %d", format)
	}

	return buf.Bytes(), nil
}

var _ ports.Renderer = (*Renderer)(nil)
