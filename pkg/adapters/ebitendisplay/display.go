// Package ebitendisplay shows frames in an Ebitengine window and turns
// keyboard and mouse input into ports.InputEvent values.
package ebitendisplay

import (
	"image"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/draw"

	"github.com/user/videocropper/pkg/ports"
)

// eventBuffer bounds the queue between the window and the session.
const eventBuffer = 64

// Display implements ports.Display and ebiten.Game.
type Display struct {
	mu    sync.Mutex
	frame *image.RGBA
	dirty bool

	title       string
	ebitenImage *ebiten.Image
	sized       bool
	viewW       int
	viewH       int
	chars       []rune
	closing     bool

	events    chan ports.InputEvent
	done      chan struct{}
	closeOnce sync.Once
	log       ports.Logger
}

// New creates a display whose window carries title.
func New(title string, log ports.Logger) *Display {
	return &Display{
		title:  title,
		events: make(chan ports.InputEvent, eventBuffer),
		done:   make(chan struct{}),
		log:    log,
	}
}

// Show replaces the displayed image. Safe to call from any goroutine.
func (d *Display) Show(img image.Image) {
	rgba := toRGBA(img)
	d.mu.Lock()
	d.frame = rgba
	d.dirty = true
	d.mu.Unlock()
}

// Events returns the input channel. It is closed when Run returns.
func (d *Display) Events() <-chan ports.InputEvent {
	return d.events
}

// Close makes Run return at the next tick.
func (d *Display) Close() {
	d.closeOnce.Do(func() { close(d.done) })
}

// Run starts the Ebitengine game loop. Must be called from the main goroutine.
func (d *Display) Run() error {
	defer close(d.events)

	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowTitle(d.title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(d); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}

// --- ebiten.Game interface ---

func (d *Display) Update() error {
	select {
	case <-d.done:
		return ebiten.Termination
	default:
	}

	d.mu.Lock()
	frame := d.frame
	d.mu.Unlock()

	if frame != nil && !d.sized {
		ebiten.SetWindowSize(frame.Bounds().Dx(), frame.Bounds().Dy())
		d.sized = true
	}

	closing := ebiten.IsWindowBeingClosed()
	if closing && !d.closing {
		d.send(ports.InputEvent{Type: ports.EventClose})
	}
	d.closing = closing

	d.captureKeyboardInput()
	if frame != nil {
		d.captureMouseInput(frame.Bounds().Size())
	}
	return nil
}

func (d *Display) Draw(screen *ebiten.Image) {
	d.mu.Lock()
	frame := d.frame
	dirty := d.dirty
	d.dirty = false
	d.mu.Unlock()

	if frame == nil {
		return
	}

	if d.ebitenImage == nil ||
		d.ebitenImage.Bounds().Dx() != frame.Bounds().Dx() ||
		d.ebitenImage.Bounds().Dy() != frame.Bounds().Dy() {
		d.ebitenImage = ebiten.NewImage(frame.Bounds().Dx(), frame.Bounds().Dy())
		dirty = true
	}
	if dirty {
		d.ebitenImage.WritePixels(frame.Pix)
	}

	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	fw, fh := float64(frame.Bounds().Dx()), float64(frame.Bounds().Dy())
	scale, offsetX, offsetY := aspectFitTransform(float64(sw), float64(sh), fw, fh)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(offsetX, offsetY)
	screen.DrawImage(d.ebitenImage, op)
}

func (d *Display) Layout(outsideWidth, outsideHeight int) (int, int) {
	d.viewW, d.viewH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// --- Input capture ---

func (d *Display) captureKeyboardInput() {
	d.chars = ebiten.AppendInputChars(d.chars[:0])
	for _, r := range d.chars {
		d.send(ports.InputEvent{Type: ports.EventKey, Key: r})
	}
}

func (d *Display) captureMouseInput(frame image.Point) {
	buttons := []struct {
		eb  ebiten.MouseButton
		btn ports.MouseButton
	}{
		{ebiten.MouseButtonLeft, ports.MouseButtonLeft},
		{ebiten.MouseButtonRight, ports.MouseButtonRight},
		{ebiten.MouseButtonMiddle, ports.MouseButtonMiddle},
	}
	for _, b := range buttons {
		if !inpututil.IsMouseButtonJustReleased(b.eb) {
			continue
		}
		mx, my := ebiten.CursorPosition()
		p := toFrame(image.Pt(mx, my), image.Pt(d.viewW, d.viewH), frame)
		d.send(ports.InputEvent{Type: ports.EventMouseUp, X: p.X, Y: p.Y, Button: b.btn})
	}
}

// send never blocks the game loop; events beyond the buffer are dropped.
func (d *Display) send(e ports.InputEvent) {
	select {
	case d.events <- e:
	default:
		d.log.Debug("Input queue full, dropping event %d", e.Type)
	}
}

// aspectFitTransform returns scale and offsets to fit frame into view with letterboxing.
func aspectFitTransform(viewW, viewH, frameW, frameH float64) (scale, offsetX, offsetY float64) {
	scale = math.Min(viewW/frameW, viewH/frameH)
	offsetX = (viewW - frameW*scale) / 2
	offsetY = (viewH - frameH*scale) / 2
	return
}

// toFrame maps a cursor position in view pixels to frame pixels. The
// result may fall outside the frame when the cursor is on the letterbox.
func toFrame(cursor, view, frame image.Point) image.Point {
	if view.X <= 0 || view.Y <= 0 || frame.X <= 0 || frame.Y <= 0 {
		return cursor
	}
	scale, offsetX, offsetY := aspectFitTransform(float64(view.X), float64(view.Y), float64(frame.X), float64(frame.Y))
	return image.Pt(
		int(math.Floor((float64(cursor.X)-offsetX)/scale)),
		int(math.Floor((float64(cursor.Y)-offsetY)/scale)),
	)
}

// toRGBA copies img into a tightly packed RGBA image at the origin, the
// layout WritePixels expects.
func toRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	if rgba, ok := img.(*image.RGBA); ok && b.Min == (image.Point{}) && rgba.Stride == 4*b.Dx() {
		return rgba
	}
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Copy(dst, image.Point{}, img, b, draw.Src, nil)
	return dst
}

var _ ports.Display = (*Display)(nil)
