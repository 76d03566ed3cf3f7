// Package cvsource reads video frames through OpenCV.
package cvsource

import (
	"fmt"
	"image"
	"strings"

	"gocv.io/x/gocv"

	"github.com/user/videocropper/pkg/ports"
)

// Source implements ports.VideoSource on a gocv.VideoCapture.
type Source struct {
	capture *gocv.VideoCapture
	mat     gocv.Mat
	count   int
	pos     int
	err     error
}

// Open opens path for decoding. The error wraps ports.ErrVideoOpen when
// OpenCV cannot read the file.
func Open(path string) (*Source, error) {
	capture, err := gocv.VideoCaptureFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ports.ErrVideoOpen, path, err)
	}
	if !capture.IsOpened() {
		capture.Close()
		return nil, fmt.Errorf("%w %s", ports.ErrVideoOpen, path)
	}

	return &Source{
		capture: capture,
		mat:     gocv.NewMat(),
		count:   int(capture.Get(gocv.VideoCaptureFrameCount)),
	}, nil
}

// ReadNext decodes the frame at the current position.
func (s *Source) ReadNext() (image.Image, bool) {
	if ok := s.capture.Read(&s.mat); !ok || s.mat.Empty() {
		return nil, false
	}

	img, err := s.mat.ToImage()
	if err != nil {
		s.err = fmt.Errorf("convert frame %d: %w", s.pos, err)
		return nil, false
	}

	s.err = nil
	s.pos++
	return img, true
}

// Seek moves the read position so that the next ReadNext returns frame index.
func (s *Source) Seek(index int) bool {
	if index < 0 || (s.count > 0 && index >= s.count) {
		s.err = fmt.Errorf("frame %d outside [0, %d)", index, s.count)
		return false
	}
	s.capture.Set(gocv.VideoCapturePosFrames, float64(index))
	s.pos = index
	return true
}

// FrameCount returns the container's frame count; it may be an estimate.
func (s *Source) FrameCount() int {
	return s.count
}

// Position returns the index of the frame the next ReadNext will return.
func (s *Source) Position() int {
	return s.pos
}

// Err returns the cause of the last failed read or seek.
func (s *Source) Err() error {
	return s.err
}

// Codec returns the FourCC of the stream as reported by OpenCV.
func (s *Source) Codec() string {
	return strings.TrimRight(s.capture.CodecString(), "\x00 ")
}

// Close releases the capture and the frame buffer.
func (s *Source) Close() error {
	s.mat.Close()
	return s.capture.Close()
}

var _ ports.VideoSource = (*Source)(nil)
