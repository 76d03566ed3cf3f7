// Package codecdetect reads the video track of an MP4 file: codec, frame
// size, sample count and timing.
package codecdetect

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Eyevinn/mp4ff/mp4"
)

// Codec represents a video codec type.
type Codec string

const (
	CodecH264    Codec = "h264"
	CodecHEVC    Codec = "hevc"
	CodecAV1     Codec = "av1"
	CodecVP9     Codec = "vp9"
	CodecMPEG4   Codec = "mpeg4"
	CodecUnknown Codec = "unknown"
)

// ErrNoVideoTrack is returned when the file has no video track.
var ErrNoVideoTrack = errors.New("codecdetect: no video track found")

// TrackInfo describes the first video track of a file.
type TrackInfo struct {
	Codec     Codec
	Width     int
	Height    int
	Samples   int    // one sample per frame
	Timescale uint32 // ticks per second
	Duration  uint64 // in timescale ticks
}

// FPS returns the average frame rate, or 0 when timing is missing.
func (t TrackInfo) FPS() float64 {
	if t.Samples == 0 || t.Duration == 0 || t.Timescale == 0 {
		return 0
	}
	return float64(t.Samples) * float64(t.Timescale) / float64(t.Duration)
}

// ProbeFile reads the video track of an MP4 file.
func ProbeFile(path string) (TrackInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return TrackInfo{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return Probe(f)
}

// Probe reads the video track from an io.ReadSeeker.
func Probe(reader io.ReadSeeker) (TrackInfo, error) {
	mp4File, err := mp4.DecodeFile(reader)
	if err != nil {
		return TrackInfo{}, fmt.Errorf("decode mp4: %w", err)
	}

	moov := mp4File.Moov
	if moov == nil && mp4File.Init != nil {
		moov = mp4File.Init.Moov
	}
	if moov == nil {
		return TrackInfo{}, ErrNoVideoTrack
	}

	trak := videoTrack(moov)
	if trak == nil {
		return TrackInfo{}, ErrNoVideoTrack
	}

	info := TrackInfo{Codec: CodecUnknown, Timescale: 1000}
	if trak.Mdia.Mdhd != nil && trak.Mdia.Mdhd.Timescale != 0 {
		info.Timescale = trak.Mdia.Mdhd.Timescale
	}

	stbl := trak.Mdia.Minf.Stbl
	if stbl.Stsd != nil {
		for _, child := range stbl.Stsd.Children {
			codec := codecFromSampleEntry(child.Type())
			if codec == CodecUnknown {
				continue
			}
			info.Codec = codec
			if vse, ok := child.(*mp4.VisualSampleEntryBox); ok {
				info.Width = int(vse.Width)
				info.Height = int(vse.Height)
			}
			break
		}
	}

	if mp4File.IsFragmented() {
		if err := countFragmentSamples(mp4File, moov, trak.Tkhd.TrackID, &info); err != nil {
			return TrackInfo{}, err
		}
		return info, nil
	}

	if stbl.Stsz != nil {
		info.Samples = int(stbl.Stsz.SampleNumber)
	}
	if stbl.Stts != nil && info.Samples > 0 {
		// End of the last sample.
		decodeTime, dur := stbl.Stts.GetDecodeTime(uint32(info.Samples))
		info.Duration = decodeTime + uint64(dur)
	}
	return info, nil
}

func videoTrack(moov *mp4.MoovBox) *mp4.TrakBox {
	for _, trak := range moov.Traks {
		if trak.Mdia == nil || trak.Mdia.Hdlr == nil || trak.Mdia.Hdlr.HandlerType != "vide" {
			continue
		}
		if trak.Mdia.Minf == nil || trak.Mdia.Minf.Stbl == nil {
			continue
		}
		return trak
	}
	return nil
}

func countFragmentSamples(mp4File *mp4.File, moov *mp4.MoovBox, trackID uint32, info *TrackInfo) error {
	var trex *mp4.TrexBox
	if moov.Mvex != nil {
		for _, t := range moov.Mvex.Trexs {
			if t.TrackID == trackID {
				trex = t
				break
			}
		}
	}

	for _, seg := range mp4File.Segments {
		for _, frag := range seg.Fragments {
			if frag.Moof == nil || !hasTrack(frag.Moof, trackID) {
				continue
			}
			samples, err := frag.GetFullSamples(trex)
			if err != nil {
				return fmt.Errorf("get samples: %w", err)
			}
			info.Samples += len(samples)
			for _, s := range samples {
				info.Duration += uint64(s.Dur)
			}
		}
	}
	return nil
}

func hasTrack(moof *mp4.MoofBox, trackID uint32) bool {
	for _, traf := range moof.Trafs {
		if traf.Tfhd != nil && traf.Tfhd.TrackID == trackID {
			return true
		}
	}
	return false
}

func codecFromSampleEntry(fourcc string) Codec {
	switch fourcc {
	case "avc1", "avc3":
		return CodecH264
	case "hvc1", "hev1":
		return CodecHEVC
	case "av01":
		return CodecAV1
	case "vp09":
		return CodecVP9
	case "mp4v":
		return CodecMPEG4
	default:
		return CodecUnknown
	}
}
