// Package ffsource reads single video frames by running ffmpeg.
//
// Frame count and rate come from the MP4 sample table when the file is an
// MP4, and from ffprobe otherwise. Each ReadNext decodes exactly one frame
// with an input seek, so random access costs the same as sequential reads.
package ffsource

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"strconv"

	"github.com/user/videocropper/pkg/adapters/codecdetect"
	"github.com/user/videocropper/pkg/adapters/logger"
	"github.com/user/videocropper/pkg/ports"
)

// Options configures Open.
type Options struct {
	FFmpegPath string
	Logger     ports.Logger
}

// Source implements ports.VideoSource with one ffmpeg process per frame.
type Source struct {
	ffmpeg string
	path   string
	codec  string
	fps    float64
	count  int
	pos    int
	err    error
	log    ports.Logger
}

// Open locates ffmpeg and reads the frame count and rate of path. The
// error wraps ports.ErrVideoOpen when the file is missing or no frames
// can be found in it.
func Open(path string, opts Options) (*Source, error) {
	log := opts.Logger
	if log == nil {
		log = logger.NewNoop()
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w %s: %v", ports.ErrVideoOpen, path, err)
	}

	ffmpegPath, err := FindFFmpeg(opts.FFmpegPath)
	if err != nil {
		return nil, err
	}

	s := &Source{ffmpeg: ffmpegPath, path: path, log: log}

	if info, err := codecdetect.ProbeFile(path); err == nil && info.Samples > 0 && info.FPS() > 0 {
		s.codec = string(info.Codec)
		s.fps = info.FPS()
		s.count = info.Samples
		return s, nil
	}

	probed, err := s.probe()
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ports.ErrVideoOpen, path, err)
	}
	if probed.frames == 0 {
		return nil, fmt.Errorf("%w %s: no frames", ports.ErrVideoOpen, path)
	}
	s.codec = probed.codec
	s.fps = probed.fps
	s.count = probed.frames
	return s, nil
}

func (s *Source) probe() (probeInfo, error) {
	ffprobe, err := findFFprobe(s.ffmpeg)
	if err != nil {
		return probeInfo{}, fmt.Errorf("ffprobe: %w", err)
	}

	args := []string{
		"-v", "error",
		"-select_streams", "v:0",
		"-count_packets",
		"-show_entries", "stream=codec_name,avg_frame_rate,nb_read_packets",
		"-of", "default=noprint_wrappers=1",
		s.path,
	}
	s.log.Debug("Running %s", ffprobe)

	var stderr bytes.Buffer
	cmd := exec.Command(ffprobe, args...)
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return probeInfo{}, fmt.Errorf("ffprobe: %w\nstderr: %s", err, stderr.String())
	}
	return parseProbe(string(out))
}

// ReadNext decodes the frame at the current position.
func (s *Source) ReadNext() (image.Image, bool) {
	if s.pos >= s.count {
		s.err = nil
		return nil, false
	}

	img, err := s.decode(s.pos)
	if err != nil {
		s.err = err
		return nil, false
	}
	if img == nil {
		s.err = nil
		return nil, false
	}

	s.err = nil
	s.pos++
	return img, true
}

// decode returns nil without error when ffmpeg produced no frame.
func (s *Source) decode(index int) (image.Image, error) {
	args := []string{"-v", "error", "-nostdin"}
	if t := seekTime(index, s.fps); t > 0 {
		args = append(args, "-ss", strconv.FormatFloat(t, 'f', 6, 64))
	}
	args = append(args, "-i", s.path)
	if s.fps <= 0 && index > 0 {
		// No usable rate: count frames instead of seeking.
		args = append(args, "-vf", fmt.Sprintf(`select=eq(n\,%d)`, index))
	}
	args = append(args,
		"-frames:v", "1",
		"-f", "image2pipe",
		"-vcodec", "png",
		"-",
	)
	s.log.Debug("Running %s", s.ffmpeg)

	var stdout, stderr bytes.Buffer
	cmd := exec.Command(s.ffmpeg, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("ffmpeg decode frame %d failed: %w\nstderr: %s", index, err, stderr.String())
	}
	if stdout.Len() == 0 {
		return nil, nil
	}

	img, err := png.Decode(&stdout)
	if err != nil {
		return nil, fmt.Errorf("decode png: %w", err)
	}
	return img, nil
}

// seekTime lands half a frame before index so the first frame at or after
// it is the one wanted.
func seekTime(index int, fps float64) float64 {
	if fps <= 0 {
		return 0
	}
	return max((float64(index)-0.5)/fps, 0)
}

// Seek moves the read position so that the next ReadNext returns frame index.
func (s *Source) Seek(index int) bool {
	if index < 0 || index >= s.count {
		s.err = fmt.Errorf("frame %d outside [0, %d)", index, s.count)
		return false
	}
	s.pos = index
	return true
}

// FrameCount returns the number of frames in the video stream.
func (s *Source) FrameCount() int {
	return s.count
}

// Position returns the index of the frame the next ReadNext will return.
func (s *Source) Position() int {
	return s.pos
}

// Codec returns the detected codec name.
func (s *Source) Codec() string {
	return s.codec
}

// FPS returns the average frame rate.
func (s *Source) FPS() float64 {
	return s.fps
}

// Err returns the cause of the last failed read or seek.
func (s *Source) Err() error {
	return s.err
}

// Close is a no-op; no process outlives a ReadNext.
func (s *Source) Close() error {
	return nil
}

var _ ports.VideoSource = (*Source)(nil)
