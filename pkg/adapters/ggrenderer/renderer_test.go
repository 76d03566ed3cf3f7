package ggrenderer

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/user/videocropper/pkg/ports"
)

func gradient(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 50, A: 255})
		}
	}
	return img
}

func TestRenderer_DrawBoxLeavesSourceUntouched(t *testing.T) {
	r := New()
	src := gradient(100, 80)
	before := append([]uint8(nil), src.Pix...)

	out := r.DrawBox(src, image.Rect(10, 20, 50, 60), color.RGBA{R: 255, A: 255}, 1)

	if !bytes.Equal(before, src.Pix) {
		t.Error("expected DrawBox not to modify the source image")
	}
	if out.Bounds() != src.Bounds() {
		t.Errorf("expected bounds %v, got %v", src.Bounds(), out.Bounds())
	}
}

func TestRenderer_DrawBoxStrokesOutline(t *testing.T) {
	r := New()
	src := image.NewRGBA(image.Rect(0, 0, 100, 80))
	green := color.RGBA{G: 255, A: 255}

	out := r.DrawBox(src, image.Rect(10, 20, 50, 60), green, 2)

	edge := color.RGBAModel.Convert(out.At(30, 20)).(color.RGBA)
	if edge.G < 128 {
		t.Errorf("expected top edge to be stroked, got %v", edge)
	}
	inside := color.RGBAModel.Convert(out.At(30, 40)).(color.RGBA)
	if inside.G != 0 {
		t.Errorf("expected interior to stay clear, got %v", inside)
	}
	outside := color.RGBAModel.Convert(out.At(5, 5)).(color.RGBA)
	if outside.G != 0 {
		t.Errorf("expected pixels outside the box to stay clear, got %v", outside)
	}
}

func TestRenderer_DrawBoxOffsetBounds(t *testing.T) {
	r := New()
	src := gradient(60, 60).SubImage(image.Rect(10, 10, 60, 60))

	out := r.DrawBox(src, image.Rect(20, 20, 40, 40), color.White, 1)

	if out.Bounds() != src.Bounds() {
		t.Errorf("expected bounds %v, got %v", src.Bounds(), out.Bounds())
	}
	if got, want := out.At(50, 50), src.At(50, 50); color.RGBAModel.Convert(got) != color.RGBAModel.Convert(want) {
		t.Errorf("expected untouched pixel %v, got %v", want, got)
	}
}

func TestRenderer_Crop(t *testing.T) {
	r := New()
	src := gradient(100, 80)

	patch := r.Crop(src, image.Rect(10, 20, 50, 60))

	if patch.Bounds() != image.Rect(0, 0, 40, 40) {
		t.Fatalf("expected 40x40 patch at origin, got %v", patch.Bounds())
	}
	got := color.RGBAModel.Convert(patch.At(0, 0)).(color.RGBA)
	if got.R != 10 || got.G != 20 {
		t.Errorf("expected top-left pixel from (10,20), got %v", got)
	}
	got = color.RGBAModel.Convert(patch.At(39, 39)).(color.RGBA)
	if got.R != 49 || got.G != 59 {
		t.Errorf("expected bottom-right pixel from (49,59), got %v", got)
	}
}

func TestRenderer_CropClipsToBounds(t *testing.T) {
	r := New()
	patch := r.Crop(gradient(100, 80), image.Rect(90, 70, 120, 100))

	if patch.Bounds() != image.Rect(0, 0, 10, 10) {
		t.Errorf("expected clipped 10x10 patch, got %v", patch.Bounds())
	}
}

func TestRenderer_EncodeImage(t *testing.T) {
	r := New()
	img := gradient(32, 24)

	tests := []struct {
		format ports.ImageFormat
		decode func([]byte) (image.Image, error)
	}{
		{ports.FormatPNG, func(b []byte) (image.Image, error) { return png.Decode(bytes.NewReader(b)) }},
		{ports.FormatJPEG, func(b []byte) (image.Image, error) { return jpeg.Decode(bytes.NewReader(b)) }},
		{ports.FormatBMP, func(b []byte) (image.Image, error) { return bmp.Decode(bytes.NewReader(b)) }},
		{ports.FormatTIFF, func(b []byte) (image.Image, error) { return tiff.Decode(bytes.NewReader(b)) }},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			data, err := r.EncodeImage(img, tt.format)
			if err != nil {
				t.Fatalf("EncodeImage failed: %v", err)
			}

			decoded, err := tt.decode(data)
			if err != nil {
				t.Fatalf("decode failed: %v", err)
			}
			if decoded.Bounds().Dx() != 32 || decoded.Bounds().Dy() != 24 {
				t.Errorf("expected 32x24, got %v", decoded.Bounds())
			}
		})
	}
}

func TestRenderer_EncodeImageUnsupported(t *testing.T) {
	r := New()
	if _, err := r.EncodeImage(gradient(4, 4), ports.ImageFormat(99)); err == nil {
		t.Error("expected error for unknown format")
	}
}
