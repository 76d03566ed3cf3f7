package ports

import (
	"image"
	"image/color"
	"strings"
)

// Renderer abstracts the pixel operations the cropper needs.
type Renderer interface {
	// DrawBox returns a copy of img with the outline of rect drawn on it.
	// img itself is never modified.
	DrawBox(img image.Image, rect image.Rectangle, c color.Color, strokeWidth float64) image.Image

	// Crop returns a new image holding the pixels of img inside rect.
	// The result's bounds start at (0, 0).
	Crop(img image.Image, rect image.Rectangle) image.Image

	// EncodeImage encodes an image to the specified format.
	EncodeImage(img image.Image, format ImageFormat) ([]byte, error)
}

// ImageFormat specifies image encoding format.
type ImageFormat int

const (
	FormatPNG ImageFormat = iota
	FormatJPEG
	FormatBMP
	FormatTIFF
)

// String returns the canonical file extension of the format.
func (f ImageFormat) String() string {
	switch f {
	case FormatPNG:
		return ".png"
	case FormatJPEG:
		return ".jpg"
	case FormatBMP:
		return ".bmp"
	case FormatTIFF:
		return ".tiff"
	default:
		return "unknown"
	}
}

// FormatFromExt maps a file extension (with or without the leading dot,
// any case) to an ImageFormat.
func FormatFromExt(ext string) (ImageFormat, bool) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	switch ext {
	case "png":
		return FormatPNG, true
	case "jpg", "jpeg", "jpe":
		return FormatJPEG, true
	case "bmp", "dib":
		return FormatBMP, true
	case "tif", "tiff":
		return FormatTIFF, true
	default:
		return 0, false
	}
}
