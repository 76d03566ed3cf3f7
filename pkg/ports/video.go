package ports

import (
	"errors"
	"image"
)

// ErrVideoOpen is returned by video sources when a file cannot be opened
// or holds no decodable video stream.
var ErrVideoOpen = errors.New("unable to open video file")

// VideoSource is a seekable, sequential frame reader over one video file.
//
// Position is the index of the frame the next ReadNext will return, so
// right after reading frame i it reports i+1.
type VideoSource interface {
	// ReadNext decodes the frame at the current position and advances.
	// ok is false at end of stream or when decoding fails.
	ReadNext() (img image.Image, ok bool)

	// Seek moves the position to the given frame index.
	// It returns false when the index is out of range or the backend
	// refuses the seek.
	Seek(index int) bool

	// FrameCount returns the number of frames reported by the container.
	FrameCount() int

	// Position returns the index of the next frame to be read.
	Position() int

	// Err returns the cause of the last failed read or seek, if known.
	Err() error

	// Close releases the underlying decoder.
	Close() error
}
