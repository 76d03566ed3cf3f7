package codecdetect

import (
	"bytes"
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/Eyevinn/mp4ff/mp4"
)

// fragmentedMP4 builds a single-fragment MP4 with n samples at fps.
func fragmentedMP4(t *testing.T, fourcc string, n int, fps uint32) []byte {
	t.Helper()

	timescale := fps * 1000
	init := mp4.CreateEmptyInit()
	init.AddEmptyTrack(timescale, "video", "en")
	trak := init.Moov.Trak
	trak.Mdia.Minf.Stbl.Stsd.AddChild(mp4.CreateVisualSampleEntryBox(fourcc, 320, 240, nil))

	frag, err := mp4.CreateFragment(1, trak.Tkhd.TrackID)
	if err != nil {
		t.Fatalf("create fragment: %v", err)
	}
	for i := 0; i < n; i++ {
		data := []byte{0, 0, 0, 1, byte(i)}
		frag.AddFullSample(mp4.FullSample{
			Sample: mp4.Sample{
				Flags: mp4.SyncSampleFlags,
				Size:  uint32(len(data)),
				Dur:   1000,
			},
			DecodeTime: uint64(i) * 1000,
			Data:       data,
		})
	}

	var buf bytes.Buffer
	if err := mp4.NewFtyp("isom", 0x200, []string{"isom", "iso2", "mp41"}).Encode(&buf); err != nil {
		t.Fatalf("encode ftyp: %v", err)
	}
	if err := init.Moov.Encode(&buf); err != nil {
		t.Fatalf("encode moov: %v", err)
	}
	if err := frag.Encode(&buf); err != nil {
		t.Fatalf("encode fragment: %v", err)
	}
	return buf.Bytes()
}

func TestProbe_Fragmented(t *testing.T) {
	tests := []struct {
		fourcc string
		codec  Codec
	}{
		{"avc1", CodecH264},
		{"hvc1", CodecHEVC},
		{"av01", CodecAV1},
	}

	for _, tt := range tests {
		t.Run(tt.fourcc, func(t *testing.T) {
			data := fragmentedMP4(t, tt.fourcc, 12, 25)

			info, err := Probe(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("Probe failed: %v", err)
			}
			if info.Codec != tt.codec {
				t.Errorf("expected codec %s, got %s", tt.codec, info.Codec)
			}
			if info.Samples != 12 {
				t.Errorf("expected 12 samples, got %d", info.Samples)
			}
			if info.Width != 320 || info.Height != 240 {
				t.Errorf("expected 320x240, got %dx%d", info.Width, info.Height)
			}
			if math.Abs(info.FPS()-25) > 0.01 {
				t.Errorf("expected 25 fps, got %f", info.FPS())
			}
		})
	}
}

func TestProbe_Garbage(t *testing.T) {
	_, err := Probe(bytes.NewReader([]byte("definitely not an mp4 file")))
	if err == nil {
		t.Error("expected error for non-MP4 data")
	}
}

func TestProbe_NoVideoTrack(t *testing.T) {
	init := mp4.CreateEmptyInit()
	init.AddEmptyTrack(48000, "audio", "en")

	var buf bytes.Buffer
	if err := mp4.NewFtyp("isom", 0x200, []string{"isom"}).Encode(&buf); err != nil {
		t.Fatalf("encode ftyp: %v", err)
	}
	if err := init.Moov.Encode(&buf); err != nil {
		t.Fatalf("encode moov: %v", err)
	}

	_, err := Probe(bytes.NewReader(buf.Bytes()))
	if !errors.Is(err, ErrNoVideoTrack) {
		t.Errorf("expected ErrNoVideoTrack, got %v", err)
	}
}

func TestCodecFromSampleEntry(t *testing.T) {
	tests := map[string]Codec{
		"avc3": CodecH264,
		"hev1": CodecHEVC,
		"vp09": CodecVP9,
		"mp4v": CodecMPEG4,
		"mp4a": CodecUnknown,
	}
	for fourcc, expected := range tests {
		if got := codecFromSampleEntry(fourcc); got != expected {
			t.Errorf("codecFromSampleEntry(%q) = %s, expected %s", fourcc, got, expected)
		}
	}
}

func TestProbeFile_Missing(t *testing.T) {
	if _, err := ProbeFile(filepath.Join(t.TempDir(), "missing.mp4")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestTrackInfo_FPSWithoutTiming(t *testing.T) {
	if fps := (TrackInfo{Samples: 10}).FPS(); fps != 0 {
		t.Errorf("expected 0 fps without duration, got %f", fps)
	}
}
