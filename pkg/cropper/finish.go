package cropper

import (
	"context"
	"fmt"
	"strings"
)

// Finish writes the filename log when enabled. If the log file already
// exists and the operator declines to overwrite it, nothing is written and
// Finish returns nil.
func (s *Session) Finish(ctx context.Context) error {
	if s.names == nil {
		return nil
	}

	path := s.opts.SaveDir + NameLogFile
	exists, err := s.fs.Exists(path)
	if err != nil {
		return fmt.Errorf("check %s: %w", path, err)
	}
	if exists {
		answer, err := s.prompt.Ask(ctx, "File %s already exists. Continue saving frame patch names will overwrite that file. Do you want to continue? [y/n]: ", path)
		if err != nil {
			return fmt.Errorf("read confirmation: %w", err)
		}
		if answer != "y" {
			s.log.Info("Exit")
			return nil
		}
	}

	if err := s.fs.WriteFile(path, []byte(NameLog(s.names))); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	s.log.Info("File %s written and closed", path)
	return nil
}

// NameLog renders one file name per line, grouped by class in class order.
func NameLog(names [][]string) string {
	var b strings.Builder
	for _, class := range names {
		for _, name := range class {
			b.WriteString(name)
			b.WriteByte('\n')
		}
	}
	return b.String()
}
