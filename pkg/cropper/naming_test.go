package cropper

import (
	"image"
	"testing"
)

func TestPatchName(t *testing.T) {
	tests := []struct {
		dir      string
		label    string
		counter  int
		ext      string
		expected string
	}{
		{"./", "cat", 0, ".png", "./cat00000.png"},
		{"out/", "class0_patch", 7, ".jpg", "out/class0_patch00007.jpg"},
		{"", "dog", 99999, ".png", "dog99999.png"},
		{"", "dog", 123456, ".png", "dog123456.png"},
	}

	for _, tt := range tests {
		if got := PatchName(tt.dir, tt.label, tt.counter, tt.ext); got != tt.expected {
			t.Errorf("PatchName(%q, %q, %d, %q) = %q, expected %q",
				tt.dir, tt.label, tt.counter, tt.ext, got, tt.expected)
		}
	}
}

func TestSnapshotName(t *testing.T) {
	tests := []struct {
		index    int
		total    int
		expected string
	}{
		{0, 10, "./frame_00.png"},
		{9, 10, "./frame_09.png"},
		{5, 9, "./frame_5.png"},
		{42, 1500, "./frame_0042.png"},
		{3, 0, "./frame_3.png"},
	}

	for _, tt := range tests {
		if got := SnapshotName("./", tt.index, tt.total, ".png"); got != tt.expected {
			t.Errorf("SnapshotName(%d, %d) = %q, expected %q", tt.index, tt.total, got, tt.expected)
		}
	}
}

func TestBoxFromClicks_OrderIndependent(t *testing.T) {
	expected := image.Rect(10, 20, 50, 60)
	pairs := [][2]image.Point{
		{image.Pt(10, 20), image.Pt(50, 60)},
		{image.Pt(50, 60), image.Pt(10, 20)},
		{image.Pt(10, 60), image.Pt(50, 20)},
		{image.Pt(50, 20), image.Pt(10, 60)},
	}

	for _, p := range pairs {
		if got := BoxFromClicks(p[0], p[1]); got != expected {
			t.Errorf("BoxFromClicks(%v, %v) = %v, expected %v", p[0], p[1], got, expected)
		}
	}
}
