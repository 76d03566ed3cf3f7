// Package cropper implements the interactive patch-cropping session: frame
// navigation, the two-click box state machine and patch persistence.
package cropper

import (
	"context"
	"fmt"
	"image"
	"image/color"

	"github.com/user/videocropper/pkg/ports"
	"github.com/user/videocropper/pkg/summarizer"
)

// State is the position of the session in the box-drawing state machine.
type State int

const (
	// StateIdle waits for the first corner.
	StateIdle State = iota
	// StateOnePointArmed has one corner recorded.
	StateOnePointArmed
	// StateBoxProposed shows a rectangle and accepts only save or discard.
	StateBoxProposed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateOnePointArmed:
		return "one-point-armed"
	case StateBoxProposed:
		return "box-proposed"
	default:
		return "unknown"
	}
}

// Options configures a Session.
type Options struct {
	VideoPath   string
	Labels      []string
	Colors      []color.Color
	SaveDir     string
	Extension   string
	Format      ports.ImageFormat
	LogNames    bool
	StrokeWidth float64
}

// Session owns all mutable state of one cropping run.
// It is not safe for concurrent use; feed it events from one goroutine.
type Session struct {
	opts     Options
	source   ports.VideoSource
	display  ports.Display
	renderer ports.Renderer
	fs       ports.FileSystem
	prompt   ports.Prompter
	log      ports.Logger

	class      int
	frameIndex int
	frameCount int
	eos        bool

	saved []int
	names [][]string

	clicks []image.Point
	armed  bool

	frame     image.Image // as decoded, never drawn on
	committed image.Image // what the window shows without a pending box
	proposal  image.Image // committed plus the pending box
	box       image.Rectangle

	snapshots int
	visited   map[int]bool
}

// New creates a Session. The video source must already be open.
func New(
	source ports.VideoSource,
	display ports.Display,
	renderer ports.Renderer,
	fs ports.FileSystem,
	prompt ports.Prompter,
	log ports.Logger,
	opts Options,
) *Session {
	if len(opts.Colors) == 0 {
		opts.Colors = []color.Color{color.RGBA{R: 255, A: 255}}
	}
	if opts.StrokeWidth <= 0 {
		opts.StrokeWidth = 1
	}
	s := &Session{
		opts:     opts,
		source:   source,
		display:  display,
		renderer: renderer,
		fs:       fs,
		prompt:   prompt,
		log:      log,
		saved:    make([]int, len(opts.Labels)),
		visited:  make(map[int]bool),
	}
	if opts.LogNames {
		s.names = make([][]string, len(opts.Labels))
	}
	return s
}

// Run starts the session, processes input events until the operator
// confirms quitting, then writes the filename log if enabled.
// Cancelling ctx ends the loop without touching the filename log, and so
// does the display closing its event stream (ErrDisplayClosed).
func (s *Session) Run(ctx context.Context) error {
	if err := s.Start(); err != nil {
		return err
	}

	events := s.display.Events()
	for {
		select {
		case <-ctx.Done():
			s.log.Warn("Interrupted, shutting down...")
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return ErrDisplayClosed
			}
			quit, err := s.Handle(ctx, ev)
			if err != nil {
				return err
			}
			if quit {
				return s.Finish(ctx)
			}
		}
	}
}

// Start decodes and shows the first frame.
func (s *Session) Start() error {
	if err := s.fs.MkdirAll(s.opts.SaveDir); err != nil {
		return fmt.Errorf("create saving directory: %w", err)
	}

	img, ok := s.source.ReadNext()
	if !ok {
		if err := s.source.Err(); err != nil {
			return fmt.Errorf("%w: %v", ErrFrameRead, err)
		}
		return ErrFrameRead
	}
	s.frameIndex = s.source.Position() - 1
	if s.frameIndex < 0 {
		s.frameIndex = 0
	}
	s.frameCount = s.source.FrameCount()
	s.setFrame(img)

	s.log.Info("VideoCropper")
	s.log.Info("Video file: %s (Total number of frames: %d)", s.opts.VideoPath, s.frameCount)
	s.log.Info("Current frame number: %d --- Current class set to %s", s.frameIndex, s.label())
	s.printHelp()
	return nil
}

// Handle dispatches one input event. quit is true once the operator has
// confirmed leaving the session.
func (s *Session) Handle(ctx context.Context, ev ports.InputEvent) (quit bool, err error) {
	switch ev.Type {
	case ports.EventMouseUp:
		if ev.Button == ports.MouseButtonLeft {
			s.Click(image.Pt(ev.X, ev.Y))
		}
		return false, nil
	case ports.EventKey:
		return s.Key(ctx, ev.Key)
	case ports.EventClose:
		if s.State() == StateBoxProposed {
			return false, nil
		}
		return s.confirmQuit(ctx)
	default:
		return false, nil
	}
}

// State reports the current box-drawing state.
func (s *Session) State() State {
	switch {
	case len(s.clicks) == 2:
		return StateBoxProposed
	case s.armed && len(s.clicks) == 1:
		return StateOnePointArmed
	default:
		return StateIdle
	}
}

// Class returns the index of the selected class.
func (s *Session) Class() int { return s.class }

// FrameIndex returns the index of the displayed frame.
func (s *Session) FrameIndex() int { return s.frameIndex }

// SavedCounts returns a copy of the per-class saved patch counters.
func (s *Session) SavedCounts() []int {
	out := make([]int, len(s.saved))
	copy(out, s.saved)
	return out
}

// SavedNames returns a copy of the per-class saved file names.
// It is nil unless filename logging is enabled.
func (s *Session) SavedNames() [][]string {
	if s.names == nil {
		return nil
	}
	out := make([][]string, len(s.names))
	for i, n := range s.names {
		out[i] = append([]string(nil), n...)
	}
	return out
}

// Summary reports what the session produced.
func (s *Session) Summary() *summarizer.Summary {
	classes := make([]summarizer.ClassInfo, len(s.opts.Labels))
	for i, label := range s.opts.Labels {
		classes[i] = summarizer.ClassInfo{Label: label, Saved: s.saved[i]}
	}
	return summarizer.NewBuilder().
		WithVideo(s.opts.VideoPath, s.frameCount).
		WithFrames(len(s.visited), s.snapshots).
		WithOutput(s.opts.SaveDir, s.opts.Extension).
		WithClasses(classes).
		Build()
}

func (s *Session) label() string {
	return s.opts.Labels[s.class]
}

func (s *Session) color() color.Color {
	return s.opts.Colors[s.class%len(s.opts.Colors)]
}

// setFrame installs a freshly decoded frame and drops any pending box.
func (s *Session) setFrame(img image.Image) {
	s.frame = img
	s.committed = img
	s.visited[s.frameIndex] = true
	s.resetClicks()
	s.display.Show(img)
}

func (s *Session) resetClicks() {
	s.clicks = s.clicks[:0]
	s.armed = false
	s.proposal = nil
	s.box = image.Rectangle{}
}
