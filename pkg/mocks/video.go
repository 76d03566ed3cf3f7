package mocks

import (
	"image"
	"image/color"

	"github.com/user/videocropper/pkg/ports"
)

// VideoSource is a mock implementation of ports.VideoSource backed by an
// in-memory list of frames. Like real decoders, ReadNext past the last
// frame reports ok=false.
type VideoSource struct {
	Frames    []image.Image
	Count     int    // reported frame count; defaults to len(Frames)
	CodecName string // returned by Codec
	pos       int
	err       error

	ReadNextFunc func() (image.Image, bool)
	SeekFunc     func(index int) bool

	Reads int
	Seeks []int
}

// NewVideoSource creates a mock source with n solid frames of size w x h.
// Frame i is filled with gray level i so frames can be told apart.
func NewVideoSource(n, w, h int) *VideoSource {
	frames := make([]image.Image, n)
	for i := range frames {
		img := image.NewRGBA(image.Rect(0, 0, w, h))
		c := color.RGBA{R: uint8(i), G: uint8(i), B: uint8(i), A: 255}
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				img.SetRGBA(x, y, c)
			}
		}
		frames[i] = img
	}
	return &VideoSource{Frames: frames}
}

func (m *VideoSource) ReadNext() (image.Image, bool) {
	m.Reads++
	if m.ReadNextFunc != nil {
		return m.ReadNextFunc()
	}
	if m.pos >= len(m.Frames) {
		return nil, false
	}
	img := m.Frames[m.pos]
	m.pos++
	return img, true
}

func (m *VideoSource) Seek(index int) bool {
	m.Seeks = append(m.Seeks, index)
	if m.SeekFunc != nil {
		return m.SeekFunc(index)
	}
	if index < 0 || index >= len(m.Frames) {
		return false
	}
	m.pos = index
	return true
}

func (m *VideoSource) FrameCount() int {
	if m.Count > 0 {
		return m.Count
	}
	return len(m.Frames)
}

func (m *VideoSource) Position() int {
	return m.pos
}

func (m *VideoSource) Err() error {
	return m.err
}

// SetErr sets the error reported by Err.
func (m *VideoSource) SetErr(err error) {
	m.err = err
}

func (m *VideoSource) Codec() string {
	return m.CodecName
}

func (m *VideoSource) Close() error {
	return nil
}

var _ ports.VideoSource = (*VideoSource)(nil)
