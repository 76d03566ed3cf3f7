package cropper

import "image"

// Click records a left-button release at p, given as a pixel offset from
// the frame's top-left corner. The second click of a pair proposes a box;
// clicks are ignored while a box waits for save or discard.
func (s *Session) Click(p image.Point) {
	b := s.frame.Bounds()
	p = clampPoint(p, image.Rect(0, 0, b.Dx(), b.Dy())).Add(b.Min)

	switch s.State() {
	case StateIdle:
		s.clicks = append(s.clicks[:0], p)
		s.armed = true
	case StateOnePointArmed:
		s.clicks = append(s.clicks, p)
		s.propose()
	case StateBoxProposed:
		// waiting for s or d
	}
}

func (s *Session) propose() {
	s.box = BoxFromClicks(s.clicks[0], s.clicks[1])
	s.proposal = s.renderer.DrawBox(s.committed, s.box, s.color(), s.opts.StrokeWidth)
	s.display.Show(s.proposal)
	s.log.Info("Press s to save or press d to discard selected patch")
}

// save crops the proposed box out of the undrawn frame and writes it as
// the next patch of the current class.
func (s *Session) save() {
	rect := s.box.Intersect(s.frame.Bounds())
	if rect.Empty() {
		s.log.Warn("Selected patch is empty, discarded")
		s.discard()
		return
	}

	name := PatchName(s.opts.SaveDir, s.label(), s.saved[s.class], s.opts.Extension)
	data, err := s.renderer.EncodeImage(s.renderer.Crop(s.frame, rect), s.opts.Format)
	if err == nil {
		err = s.fs.WriteFile(name, data)
	}
	if err != nil {
		s.log.Error("Failed to save patch %s: %v", name, err)
		return
	}

	if s.names != nil {
		s.names[s.class] = append(s.names[s.class], name)
	}
	s.saved[s.class]++
	s.committed = s.proposal
	s.clicks = s.clicks[:0]
	s.armed = false
	s.proposal = nil

	s.log.Info("Cropped patch saved as %s", name)
	s.log.Info("%d patches cropped and saved for class %s", s.saved[s.class], s.label())
}

// discard drops the proposed box and shows the committed frame again.
func (s *Session) discard() {
	s.display.Show(s.committed)
	s.resetClicks()
}

func clampPoint(p image.Point, r image.Rectangle) image.Point {
	return image.Pt(
		min(max(p.X, r.Min.X), r.Max.X),
		min(max(p.Y, r.Min.Y), r.Max.Y),
	)
}
