package mocks

import (
	"context"
	"fmt"
	"image"

	"github.com/user/videocropper/pkg/ports"
)

// Display is a mock implementation of ports.Display. Events are queued up
// front with Key, Click and Close, then delivered in order.
type Display struct {
	Shown  []image.Image
	events chan ports.InputEvent
}

// NewDisplay creates a mock display with room for buffered events.
func NewDisplay() *Display {
	return &Display{events: make(chan ports.InputEvent, 256)}
}

func (m *Display) Show(img image.Image) {
	m.Shown = append(m.Shown, img)
}

func (m *Display) Events() <-chan ports.InputEvent {
	return m.events
}

// Last returns the most recently shown image.
func (m *Display) Last() image.Image {
	if len(m.Shown) == 0 {
		return nil
	}
	return m.Shown[len(m.Shown)-1]
}

// Keys queues one key event per character.
func (m *Display) Keys(keys string) *Display {
	for _, k := range keys {
		m.push(ports.InputEvent{Type: ports.EventKey, Key: k})
	}
	return m
}

// Click queues a left-button release at (x, y).
func (m *Display) Click(x, y int) *Display {
	m.push(ports.InputEvent{Type: ports.EventMouseUp, X: x, Y: y, Button: ports.MouseButtonLeft})
	return m
}

// Close queues a window close request.
func (m *Display) Close() *Display {
	m.push(ports.InputEvent{Type: ports.EventClose})
	return m
}

// End closes the event channel.
func (m *Display) End() {
	close(m.events)
}

func (m *Display) push(ev ports.InputEvent) {
	select {
	case m.events <- ev:
	default:
		panic(fmt.Sprintf("mocks.Display: event buffer full at %+v", ev))
	}
}

var _ ports.Display = (*Display)(nil)

// Prompter is a mock implementation of ports.Prompter that replays
// scripted answers.
type Prompter struct {
	Answers   []string
	Questions []string
	Err       error
}

// NewPrompter creates a Prompter that returns the given answers in order.
func NewPrompter(answers ...string) *Prompter {
	return &Prompter{Answers: answers}
}

func (m *Prompter) Ask(ctx context.Context, question string, args ...interface{}) (string, error) {
	m.Questions = append(m.Questions, fmt.Sprintf(question, args...))
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if m.Err != nil {
		return "", m.Err
	}
	if len(m.Answers) == 0 {
		return "", nil
	}
	a := m.Answers[0]
	m.Answers = m.Answers[1:]
	return a, nil
}

var _ ports.Prompter = (*Prompter)(nil)
