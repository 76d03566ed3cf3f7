// Package main provides the CLI entry point for videocropper.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/ideamans/go-l10n"

	"github.com/user/videocropper/pkg/adapters/consoleprompt"
	"github.com/user/videocropper/pkg/adapters/ebitendisplay"
	"github.com/user/videocropper/pkg/adapters/ggrenderer"
	"github.com/user/videocropper/pkg/adapters/logger"
	"github.com/user/videocropper/pkg/adapters/osfilesystem"
	"github.com/user/videocropper/pkg/adapters/smartsource"
	"github.com/user/videocropper/pkg/config"
	"github.com/user/videocropper/pkg/cropper"
	"github.com/user/videocropper/pkg/ports"
	"github.com/user/videocropper/pkg/summarizer"
)

// CLI defines the command-line interface.
type CLI struct {
	// Required arguments
	FilePath string `arg:"" name:"file_path" help:"Video file to crop patches from."`

	// Classes
	NumClass    *int       `short:"k" name:"num-class" aliases:"num_class" help:"Number of patch classes (default: 1)."`
	ClassPrefix prefixList `short:"p" name:"class-prefix" aliases:"class_prefix" help:"Prefix of saved patches for each class, one per class."`

	// Output
	SavingPath   *string `short:"s" name:"saving-path" aliases:"saving_path" help:"Directory to save patches in (default: ./)."`
	Text         bool    `short:"t" help:"Write file names of saved patches to frame_patch_names.txt."`
	OutputFormat *string `short:"f" name:"output-format" aliases:"output_format" help:"Image format of saved patches (default: .png)."`
	Summary      string  `help:"Output session summary to file (Markdown format)."`

	// Video and drawing
	Config      string   `short:"c" help:"YAML configuration file; flags override its values."`
	Backend     *string  `help:"Video backend (auto, opencv, ffmpeg)."`
	FFmpegPath  *string  `name:"ffmpeg-path" help:"Path to ffmpeg executable."`
	StrokeWidth *float64 `help:"Outline width of selected boxes in pixels (default: 1)."`

	// Logging options
	LogLevel string `short:"l" default:"info" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)."`
	Quiet    bool   `short:"Q" help:"Suppress all log output."`
}

// prefixList collects class prefixes. After -p it keeps taking values up to
// the next flag, so "-p cat dog", "-p cat,dog" and "-p cat -p dog" all give
// [cat dog].
type prefixList []string

func (p *prefixList) Decode(ctx *kong.DecodeContext) error {
	token, err := ctx.Scan.PopValue("class prefix")
	if err != nil {
		return err
	}
	p.add(token.String())

	for {
		next := ctx.Scan.Peek()
		switch next.InferredType() {
		case kong.UntypedToken, kong.PositionalArgumentToken:
			ctx.Scan.Pop()
			p.add(next.String())
		default:
			return nil
		}
	}
}

func (p *prefixList) add(value string) {
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			*p = append(*p, part)
		}
	}
}

func newParser(cli *CLI) (*kong.Kong, error) {
	return kong.New(cli,
		kong.Name("videocropper"),
		kong.Description(l10n.T("Crop labelled image patches from video frames with the mouse.")),
		kong.UsageOnError(),
	)
}

func main() {
	cli := CLI{}

	parser, err := newParser(&cli)
	if err != nil {
		panic(err)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}

// Run opens the video, shows the window and runs the cropping session.
func (cmd *CLI) Run() error {
	var log ports.Logger
	if cmd.Quiet {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(ports.ParseLogLevel(cmd.LogLevel))
	}

	cfg, err := cmd.buildConfig()
	if err != nil {
		return err
	}
	resolved, err := cfg.Resolve(cmd.FilePath)
	if err != nil {
		return err
	}
	backend, err := smartsource.ParseBackend(resolved.Backend)
	if err != nil {
		return fmt.Errorf("%w: %v", config.ErrConfig, err)
	}
	resolved.Describe(log)

	source, info, err := smartsource.Open(resolved.VideoPath, smartsource.Options{
		Backend:    backend,
		FFmpegPath: resolved.FFmpegPath,
		Logger:     log,
	})
	if err != nil {
		return err
	}
	defer source.Close()
	codec := info.Codec
	if codec == "" {
		codec = "unknown"
	}
	log.Debug("Opened %s with %s backend (codec %s, %d frames)", resolved.VideoPath, info.Backend, codec, info.FrameCount)

	fs := osfilesystem.New()
	display := ebitendisplay.New(l10n.T("VideoCropper"), log.WithComponent("display"))
	session := cropper.New(
		source,
		display,
		ggrenderer.New(),
		fs,
		consoleprompt.New(os.Stdin, os.Stdout),
		log,
		cropper.Options{
			VideoPath:   resolved.VideoPath,
			Labels:      resolved.Labels,
			Colors:      resolved.Colors,
			SaveDir:     resolved.SaveDir,
			Extension:   resolved.Extension,
			Format:      resolved.Format,
			LogNames:    resolved.LogNames,
			StrokeWidth: resolved.StrokeWidth,
		},
	)

	// Setup context with cancellation on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The window must own the main goroutine.
	done := make(chan error, 1)
	go func() {
		done <- session.Run(ctx)
		display.Close()
	}()

	displayErr := display.Run()
	err = <-done
	if displayErr != nil && (err == nil || errors.Is(err, cropper.ErrDisplayClosed)) {
		err = displayErr
	}

	if err == nil || errors.Is(err, context.Canceled) {
		cmd.report(log, fs, session.Summary())
	}
	return err
}

// buildConfig merges the optional config file with command-line overrides.
func (cmd *CLI) buildConfig() (config.Config, error) {
	cfg := config.Defaults()
	if cmd.Config != "" {
		loaded, err := config.LoadFromFile(cmd.Config)
		if err != nil {
			return cfg, fmt.Errorf("%w: %v", config.ErrConfig, err)
		}
		cfg = loaded
	}

	if cmd.NumClass != nil {
		cfg.NumClass = *cmd.NumClass
	}
	if len(cmd.ClassPrefix) > 0 {
		cfg.ClassPrefix = []string(cmd.ClassPrefix)
	}
	if cmd.SavingPath != nil {
		cfg.SavingPath = *cmd.SavingPath
	}
	if cmd.Text {
		cfg.Text = true
	}
	if cmd.OutputFormat != nil {
		cfg.OutputFormat = *cmd.OutputFormat
	}
	if cmd.Backend != nil {
		cfg.Backend = *cmd.Backend
	}
	if cmd.FFmpegPath != nil {
		cfg.FFmpegPath = *cmd.FFmpegPath
	}
	if cmd.StrokeWidth != nil {
		cfg.StrokeWidth = *cmd.StrokeWidth
	}

	return cfg, nil
}

// report prints per-class counts and writes the Markdown summary if asked.
func (cmd *CLI) report(log ports.Logger, fs ports.FileSystem, summary *summarizer.Summary) {
	log.Info("Patches saved per class:")
	for _, line := range summarizer.TextLines(summary) {
		log.Info("%s", line)
	}

	if cmd.Summary == "" {
		return
	}
	writer := summarizer.NewWriter(summarizer.NewMarkdownFormatter(), fs)
	if err := writer.Write(cmd.Summary, summary); err != nil {
		log.Warn("Failed to write summary: %s", err.Error())
		return
	}
	log.Info("Summary written to %s", cmd.Summary)
}
