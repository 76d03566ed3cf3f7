// Package summarizer provides summary generation for cropping sessions.
package summarizer

import "time"

// Summary contains all data collected during a cropping session.
type Summary struct {
	// Metadata
	GeneratedAt time.Time

	// Video information
	Video VideoInfo

	// Frame navigation
	Frames FramesInfo

	// Output location
	Output OutputInfo

	// Per-class results, in class order
	Classes []ClassInfo
}

// VideoInfo describes the cropped video.
type VideoInfo struct {
	Path       string
	FrameCount int
}

// FramesInfo describes how the operator moved through the video.
type FramesInfo struct {
	Visited   int
	Snapshots int
}

// OutputInfo describes where and how patches were written.
type OutputInfo struct {
	Dir       string
	Extension string
}

// ClassInfo holds the result for one class.
type ClassInfo struct {
	Label string
	Saved int
}

// TotalSaved returns the number of patches saved across all classes.
func (s *Summary) TotalSaved() int {
	total := 0
	for _, c := range s.Classes {
		total += c.Saved
	}
	return total
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithVideo sets video information.
func (b *Builder) WithVideo(path string, frameCount int) *Builder {
	b.summary.Video = VideoInfo{
		Path:       path,
		FrameCount: frameCount,
	}
	return b
}

// WithFrames sets frame navigation counters.
func (b *Builder) WithFrames(visited, snapshots int) *Builder {
	b.summary.Frames = FramesInfo{
		Visited:   visited,
		Snapshots: snapshots,
	}
	return b
}

// WithOutput sets the output location.
func (b *Builder) WithOutput(dir, ext string) *Builder {
	b.summary.Output = OutputInfo{
		Dir:       dir,
		Extension: ext,
	}
	return b
}

// WithClasses sets per-class results.
func (b *Builder) WithClasses(classes []ClassInfo) *Builder {
	b.summary.Classes = classes
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
