package cropper

import (
	"fmt"
	"image"
	"strconv"
)

// PatchCounterWidth is the fixed zero-padding applied to patch counters.
// Counters past 99999 print with more digits.
const PatchCounterWidth = 5

// NameLogFile is the file the per-class patch names are written to.
const NameLogFile = "frame_patch_names.txt"

// PatchName builds {dir}{label}{counter}{ext} with a fixed-width counter.
func PatchName(dir, label string, counter int, ext string) string {
	return fmt.Sprintf("%s%s%0*d%s", dir, label, PatchCounterWidth, counter, ext)
}

// SnapshotName builds {dir}frame_{index}{ext}, padding the index to the
// number of digits in total.
func SnapshotName(dir string, index, total int, ext string) string {
	return fmt.Sprintf("%sframe_%0*d%s", dir, digits(total), index, ext)
}

func digits(n int) int {
	if n < 1 {
		return 1
	}
	return len(strconv.Itoa(n))
}

// BoxFromClicks returns the rectangle spanned by two opposite corners,
// whatever order they were clicked in.
func BoxFromClicks(a, b image.Point) image.Rectangle {
	return image.Rect(min(a.X, b.X), min(a.Y, b.Y), max(a.X, b.X), max(a.Y, b.Y))
}
