package ffsource

import (
	"errors"
	"math"
	"path/filepath"
	"testing"
)

func TestParseProbe(t *testing.T) {
	out := "codec_name=h264\navg_frame_rate=30000/1001\nnb_read_packets=240\n"

	info, err := parseProbe(out)
	if err != nil {
		t.Fatalf("parseProbe failed: %v", err)
	}
	if info.codec != "h264" {
		t.Errorf("expected codec h264, got %q", info.codec)
	}
	if info.frames != 240 {
		t.Errorf("expected 240 frames, got %d", info.frames)
	}
	if math.Abs(info.fps-29.97) > 0.01 {
		t.Errorf("expected 29.97 fps, got %f", info.fps)
	}
}

func TestParseProbe_Errors(t *testing.T) {
	tests := []string{
		"",
		"codec_name=h264\navg_frame_rate=25/1\n",
		"nb_read_packets=N/A\n",
	}
	for _, out := range tests {
		if _, err := parseProbe(out); err == nil {
			t.Errorf("expected error for %q", out)
		}
	}
}

func TestParseRate(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"25/1", 25},
		{"30000/1001", 30000.0 / 1001},
		{"0/0", 0},
		{"24", 24},
		{"garbage", 0},
	}
	for _, tt := range tests {
		if got := parseRate(tt.input); math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("parseRate(%q) = %f, expected %f", tt.input, got, tt.expected)
		}
	}
}

func TestSeekTime(t *testing.T) {
	tests := []struct {
		index    int
		fps      float64
		expected float64
	}{
		{0, 25, 0},
		{1, 25, 0.02},
		{10, 10, 0.95},
		{5, 0, 0},
	}
	for _, tt := range tests {
		if got := seekTime(tt.index, tt.fps); math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("seekTime(%d, %f) = %f, expected %f", tt.index, tt.fps, got, tt.expected)
		}
	}
}

func TestFindFFmpeg_CustomPathMissing(t *testing.T) {
	_, err := FindFFmpeg(filepath.Join(t.TempDir(), "ffmpeg"))
	if !errors.Is(err, ErrFFmpegNotFound) {
		t.Errorf("expected ErrFFmpegNotFound, got %v", err)
	}
}
