package cropper

import "errors"

var (
	// ErrFrameRead is returned when a frame that must exist cannot be decoded:
	// the first frame at startup, or the target of a backward step.
	ErrFrameRead = errors.New("cropper: unable to grab next frame")

	// ErrSeek is returned when stepping back to the previous frame fails.
	ErrSeek = errors.New("cropper: fail to go to previous frame")

	// ErrDisplayClosed is returned by Run when the display stops delivering
	// events before the operator confirmed quitting. No filename log is
	// written in that case.
	ErrDisplayClosed = errors.New("cropper: display closed before quit was confirmed")
)
