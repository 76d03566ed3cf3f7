package cropper

import (
	"context"
	"fmt"
)

// Key dispatches one typed character. While a box is proposed only 's'
// and 'd' have an effect.
func (s *Session) Key(ctx context.Context, k rune) (quit bool, err error) {
	if s.State() == StateBoxProposed {
		switch k {
		case 's':
			s.save()
		case 'd':
			s.discard()
		}
		return false, nil
	}

	switch {
	case k == 'n':
		s.nextFrame()
	case k == 'p':
		if err := s.previousFrame(); err != nil {
			return false, err
		}
	case k == 'q':
		return s.confirmQuit(ctx)
	case k == 'w':
		s.writeFrame()
	case k >= '0' && k <= '9':
		s.selectClass(int(k - '0'))
	case k == 'h':
		s.printHelp()
	case k == 'i':
		s.log.Info("Current frame number: %d", s.frameIndex)
		s.log.Info("Current selected class is class %s", s.label())
	}
	return false, nil
}

func (s *Session) nextFrame() {
	if s.eos {
		s.log.Warn("This is the last frame of the video sequence being cropped. Cannot go to next frame")
		return
	}

	img, ok := s.source.ReadNext()
	if !ok {
		s.eos = true
		if err := s.source.Err(); err != nil {
			s.log.Debug("Read failed: %v", err)
		}
		s.log.Warn("This is the last frame of the video sequence being cropped. Cannot go to next frame")
		return
	}

	s.frameIndex++
	s.setFrame(img)
	s.log.Info("Current frame number: %d", s.frameIndex)
}

func (s *Session) previousFrame() error {
	if s.frameIndex == 0 {
		s.log.Warn("This is the first frame of the video sequence being cropped. Cannot go to previous frame")
		return nil
	}

	target := s.frameIndex - 1
	if !s.source.Seek(target) {
		if err := s.source.Err(); err != nil {
			return fmt.Errorf("%w to %d: %v", ErrSeek, target, err)
		}
		return fmt.Errorf("%w to %d", ErrSeek, target)
	}

	img, ok := s.source.ReadNext()
	if !ok {
		if err := s.source.Err(); err != nil {
			return fmt.Errorf("%w at frame %d: %v", ErrFrameRead, target, err)
		}
		return fmt.Errorf("%w at frame %d", ErrFrameRead, target)
	}

	s.frameIndex = target
	s.eos = false
	s.setFrame(img)
	s.log.Info("Current frame number: %d", s.frameIndex)
	return nil
}

func (s *Session) confirmQuit(ctx context.Context) (bool, error) {
	answer, err := s.prompt.Ask(ctx, "Are you sure about exiting the program? [y/n]: ")
	if err != nil {
		return false, fmt.Errorf("read confirmation: %w", err)
	}
	if answer != "y" {
		return false, nil
	}
	s.log.Info("Terminating")
	return true, nil
}

// writeFrame saves the committed frame, including boxes already saved on
// it but not a pending one.
func (s *Session) writeFrame() {
	name := SnapshotName(s.opts.SaveDir, s.frameIndex, s.frameCount, s.opts.Extension)
	data, err := s.renderer.EncodeImage(s.committed, s.opts.Format)
	if err == nil {
		err = s.fs.WriteFile(name, data)
	}
	if err != nil {
		s.log.Error("Failed to write frame %s: %v", name, err)
		return
	}
	s.snapshots++
	s.log.Info("Current displayed frame has been written to %s", name)
}

func (s *Session) selectClass(class int) {
	if class >= len(s.opts.Labels) {
		s.log.Warn("Class %d is out of range, only %d classes are configured", class, len(s.opts.Labels))
		return
	}
	s.class = class
	s.log.Info("Set selected class to %s", s.label())
}

func (s *Session) printHelp() {
	s.log.Info("Press n to go to next frame. Press p to go to previous frame. Press q to quit program.")
	s.log.Info("Press a number to change selected class to that number.")
	s.log.Info("Press w to write the current displayed frame to an image file. Saved frame will be under the same directory as cropped patches and will have same image format")
	s.log.Info("Press i for frame number and current selected class info")
	s.log.Info("Press h for help on hot keys")
	s.log.Info("Click on two points to crop a rectangular patch")
}
