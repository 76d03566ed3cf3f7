package ffsource

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// ErrFFmpegNotFound is returned when no ffmpeg executable can be located.
var ErrFFmpegNotFound = errors.New("ffsource: ffmpeg not found")

// FindFFmpeg returns the ffmpeg executable to use. A non-empty custom path
// must exist; otherwise PATH and common install locations are searched.
func FindFFmpeg(custom string) (string, error) {
	if custom != "" {
		if _, err := os.Stat(custom); err == nil {
			return custom, nil
		}
		return "", fmt.Errorf("%w: custom path %s not found", ErrFFmpegNotFound, custom)
	}

	path, err := exec.LookPath(executable("ffmpeg"))
	if err == nil {
		return path, nil
	}

	var commonPaths []string
	if runtime.GOOS == "windows" {
		commonPaths = []string{
			`C:\ffmpeg\bin\ffmpeg.exe`,
			`C:\Program Files\ffmpeg\bin\ffmpeg.exe`,
		}
	} else {
		commonPaths = []string{
			"/usr/bin/ffmpeg",
			"/usr/local/bin/ffmpeg",
			"/opt/homebrew/bin/ffmpeg",
			"/snap/bin/ffmpeg",
		}
	}
	for _, p := range commonPaths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", ErrFFmpegNotFound
}

// findFFprobe prefers the ffprobe installed next to ffmpeg.
func findFFprobe(ffmpegPath string) (string, error) {
	sibling := filepath.Join(filepath.Dir(ffmpegPath), executable("ffprobe"))
	if _, err := os.Stat(sibling); err == nil {
		return sibling, nil
	}
	return exec.LookPath(executable("ffprobe"))
}

func executable(name string) string {
	if runtime.GOOS == "windows" {
		return name + ".exe"
	}
	return name
}

// probeInfo is what ffprobe reports about the first video stream.
type probeInfo struct {
	codec  string
	fps    float64
	frames int
}

// parseProbe reads `key=value` lines printed by
// ffprobe -show_entries stream=codec_name,avg_frame_rate,nb_read_packets.
func parseProbe(out string) (probeInfo, error) {
	var info probeInfo
	var haveFrames bool

	for _, line := range strings.Split(out, "\n") {
		key, value, ok := strings.Cut(strings.TrimSpace(line), "=")
		if !ok {
			continue
		}
		switch key {
		case "codec_name":
			info.codec = value
		case "avg_frame_rate":
			info.fps = parseRate(value)
		case "nb_read_packets":
			n, err := strconv.Atoi(value)
			if err != nil {
				return probeInfo{}, fmt.Errorf("parse packet count %q: %w", value, err)
			}
			info.frames = n
			haveFrames = true
		}
	}

	if !haveFrames {
		return probeInfo{}, errors.New("no video stream reported")
	}
	return info, nil
}

// parseRate parses ffprobe's "num/den" rational. Invalid input yields 0.
func parseRate(s string) float64 {
	num, den, ok := strings.Cut(s, "/")
	if !ok {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		return f
	}
	n, err1 := strconv.ParseFloat(num, 64)
	d, err2 := strconv.ParseFloat(den, 64)
	if err1 != nil || err2 != nil || d == 0 {
		return 0
	}
	return n / d
}
