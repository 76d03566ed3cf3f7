package ports

import (
	"context"
	"image"
)

// EventType identifies the kind of input event.
type EventType int

const (
	// EventKey is a typed character.
	EventKey EventType = iota
	// EventMouseUp is a mouse button release.
	EventMouseUp
	// EventClose is a request to close the window.
	EventClose
)

// MouseButton identifies a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// InputEvent is a single keyboard or mouse event in frame coordinates.
type InputEvent struct {
	Type   EventType
	Key    rune
	X, Y   int
	Button MouseButton
}

// Display shows frames in a window and reports user input.
type Display interface {
	// Show replaces the displayed image.
	Show(img image.Image)

	// Events returns the channel input events are delivered on.
	// All events arrive on this single channel, in order.
	Events() <-chan InputEvent
}

// Prompter asks the operator questions on the text console.
type Prompter interface {
	// Ask prints the translated question and returns the answer line
	// without its trailing newline. It stops waiting with ctx.Err() once
	// ctx is cancelled.
	Ask(ctx context.Context, question string, args ...interface{}) (string, error)
}
