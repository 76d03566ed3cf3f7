package cvsource

import (
	"errors"
	"os/exec"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/user/videocropper/pkg/ports"
)

// testVideo renders a short clip with ffmpeg's test source.
func testVideo(t *testing.T, frames int) string {
	t.Helper()
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		t.Skip("ffmpeg not available")
	}

	path := filepath.Join(t.TempDir(), "clip.avi")
	cmd := exec.Command("ffmpeg", "-v", "error", "-y",
		"-f", "lavfi", "-i", "testsrc=size=64x48:rate=10",
		"-frames:v", strconv.Itoa(frames), "-c:v", "mjpeg", path)
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Skipf("ffmpeg could not render a test clip: %v: %s", err, out)
	}
	return path
}

func TestOpen_Missing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.avi"))
	if !errors.Is(err, ports.ErrVideoOpen) {
		t.Errorf("expected ErrVideoOpen, got %v", err)
	}
}

func TestSource_ReadAndSeek(t *testing.T) {
	src, err := Open(testVideo(t, 12))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer src.Close()

	if src.FrameCount() != 12 {
		t.Errorf("expected 12 frames, got %d", src.FrameCount())
	}

	img, ok := src.ReadNext()
	if !ok {
		t.Fatalf("expected first frame, err=%v", src.Err())
	}
	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 48 {
		t.Errorf("expected 64x48 frame, got %v", img.Bounds())
	}
	if src.Position() != 1 {
		t.Errorf("expected position 1, got %d", src.Position())
	}

	if !src.Seek(5) {
		t.Fatalf("Seek(5) failed: %v", src.Err())
	}
	if _, ok := src.ReadNext(); !ok {
		t.Fatal("expected frame after seek")
	}
	if src.Position() != 6 {
		t.Errorf("expected position 6, got %d", src.Position())
	}

	if src.Seek(-1) || src.Seek(12) {
		t.Error("expected out-of-range seeks to fail")
	}
}

func TestSource_EndOfStream(t *testing.T) {
	src, err := Open(testVideo(t, 3))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer src.Close()

	for i := 0; i < 3; i++ {
		if _, ok := src.ReadNext(); !ok {
			t.Fatalf("expected frame %d", i)
		}
	}
	if _, ok := src.ReadNext(); ok {
		t.Error("expected end of stream after the last frame")
	}
}
