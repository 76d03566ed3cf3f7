package summarizer

import (
	"fmt"
	"strings"
	"time"
)

// Formatter defines the interface for formatting a Summary.
type Formatter interface {
	// Format converts a Summary to a formatted string.
	Format(summary *Summary) string
}

// FormatFunc is a function adapter for the Formatter interface.
type FormatFunc func(summary *Summary) string

// Format implements the Formatter interface.
func (f FormatFunc) Format(summary *Summary) string {
	return f(summary)
}

// MarkdownFormatter renders a Summary as a Markdown report.
type MarkdownFormatter struct{}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Format implements the Formatter interface.
func (f *MarkdownFormatter) Format(s *Summary) string {
	var b strings.Builder

	b.WriteString("# Cropping Summary\n\n")
	fmt.Fprintf(&b, "Generated at %s\n\n", s.GeneratedAt.Format(time.RFC3339))

	b.WriteString("## Video\n\n")
	b.WriteString("| Item | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| File | %s |\n", s.Video.Path)
	fmt.Fprintf(&b, "| Total frames | %d |\n", s.Video.FrameCount)
	fmt.Fprintf(&b, "| Frames visited | %d |\n", s.Frames.Visited)
	fmt.Fprintf(&b, "| Frames written | %d |\n", s.Frames.Snapshots)
	fmt.Fprintf(&b, "| Output | %s (*%s) |\n\n", s.Output.Dir, s.Output.Extension)

	b.WriteString("## Patches\n\n")
	b.WriteString("| Class | Label | Saved |\n|---|---|---|\n")
	for i, c := range s.Classes {
		fmt.Fprintf(&b, "| %d | %s | %d |\n", i, c.Label, c.Saved)
	}
	fmt.Fprintf(&b, "| | **Total** | **%d** |\n", s.TotalSaved())

	return b.String()
}

// TextLines renders a Summary as short console lines, one per class,
// suitable for passing to a Logger line by line.
func TextLines(s *Summary) []string {
	width := len("Total")
	for _, c := range s.Classes {
		width = max(width, len(c.Label))
	}

	lines := make([]string, 0, len(s.Classes)+1)
	for _, c := range s.Classes {
		lines = append(lines, fmt.Sprintf("%-*s %6d", width, c.Label, c.Saved))
	}
	lines = append(lines, fmt.Sprintf("%-*s %6d", width, "Total", s.TotalSaved()))
	return lines
}
