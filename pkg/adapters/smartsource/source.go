// Package smartsource picks the video backend for a file.
package smartsource

import (
	"errors"
	"fmt"
	"strings"

	"github.com/user/videocropper/pkg/adapters/cvsource"
	"github.com/user/videocropper/pkg/adapters/ffsource"
	"github.com/user/videocropper/pkg/adapters/logger"
	"github.com/user/videocropper/pkg/ports"
)

// Backend names a video decoding backend.
type Backend string

const (
	// BackendAuto tries OpenCV first and falls back to ffmpeg.
	BackendAuto Backend = "auto"
	// BackendOpenCV decodes through gocv.
	BackendOpenCV Backend = "opencv"
	// BackendFFmpeg decodes one frame per ffmpeg process.
	BackendFFmpeg Backend = "ffmpeg"
)

// ErrUnknownBackend is returned for a backend name that is not recognised.
var ErrUnknownBackend = errors.New("smartsource: unknown backend")

// ParseBackend parses a backend name, case-insensitively. Empty means auto.
func ParseBackend(s string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(s))); b {
	case "":
		return BackendAuto, nil
	case BackendAuto, BackendOpenCV, BackendFFmpeg:
		return b, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownBackend, s)
	}
}

// Info describes the opened source.
type Info struct {
	// Backend is the backend that actually opened the file.
	Backend Backend
	// Codec is the stream codec when the backend can tell, else empty.
	Codec      string
	FrameCount int
}

type codecNamer interface {
	Codec() string
}

// Options configures the backend selection.
type Options struct {
	Backend    Backend
	FFmpegPath string
	Logger     ports.Logger
}

type openFunc func(path string, opts Options) (ports.VideoSource, error)

func openCV(path string, _ Options) (ports.VideoSource, error) {
	return cvsource.Open(path)
}

func openFFmpeg(path string, opts Options) (ports.VideoSource, error) {
	return ffsource.Open(path, ffsource.Options{
		FFmpegPath: opts.FFmpegPath,
		Logger:     opts.Logger.WithComponent("ffsource"),
	})
}

// Open opens path with the requested backend.
//
// The selection flow:
//   - opencv: gocv only
//   - ffmpeg: ffmpeg/ffprobe only
//   - auto: gocv, then ffmpeg when gocv cannot open the file
func Open(path string, opts Options) (ports.VideoSource, Info, error) {
	return open(path, opts, openCV, openFFmpeg)
}

func open(path string, opts Options, cv, ff openFunc) (ports.VideoSource, Info, error) {
	if opts.Logger == nil {
		opts.Logger = logger.NewNoop()
	}
	if opts.Backend == "" {
		opts.Backend = BackendAuto
	}

	switch opts.Backend {
	case BackendOpenCV:
		src, err := cv(path, opts)
		return result(src, err, BackendOpenCV)
	case BackendFFmpeg:
		src, err := ff(path, opts)
		return result(src, err, BackendFFmpeg)
	case BackendAuto:
		src, cvErr := cv(path, opts)
		if cvErr == nil {
			return result(src, nil, BackendOpenCV)
		}
		opts.Logger.Debug("OpenCV could not open %s: %v", path, cvErr)

		src, ffErr := ff(path, opts)
		if ffErr != nil {
			return nil, Info{}, fmt.Errorf("%w; ffmpeg: %w", cvErr, ffErr)
		}
		return result(src, nil, BackendFFmpeg)
	default:
		return nil, Info{}, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Backend)
	}
}

func result(src ports.VideoSource, err error, b Backend) (ports.VideoSource, Info, error) {
	if err != nil {
		return nil, Info{}, err
	}
	info := Info{Backend: b, FrameCount: src.FrameCount()}
	if c, ok := src.(codecNamer); ok {
		info.Codec = c.Codec()
	}
	return src, info, nil
}
