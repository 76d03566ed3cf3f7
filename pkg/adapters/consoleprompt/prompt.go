// Package consoleprompt asks yes/no questions on the terminal.
package consoleprompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/ideamans/go-l10n"

	"github.com/user/videocropper/pkg/ports"
)

type answer struct {
	line string
	err  error
}

// Prompter implements ports.Prompter over a line-oriented reader.
//
// Lines are read by a single background goroutine started on the first
// question, so a cancelled question does not leave Ask blocked on input.
type Prompter struct {
	mu      sync.Mutex
	in      io.Reader
	out     io.Writer
	once    sync.Once
	answers chan answer
}

// New creates a prompter reading answers from in and writing questions to out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:      in,
		out:     out,
		answers: make(chan answer),
	}
}

func (p *Prompter) readLines() {
	reader := bufio.NewReader(p.in)
	for {
		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			p.answers <- answer{err: err}
			close(p.answers)
			return
		}
		p.answers <- answer{line: strings.TrimRight(line, "\r\n")}
		if err != nil {
			// Partial last line: the next question sees end of input.
			p.answers <- answer{err: io.EOF}
			close(p.answers)
			return
		}
	}
}

// Ask prints the translated question and returns the answer line without
// its line ending. An answer cut short by end of input is returned as is;
// end of input with nothing typed is io.EOF. Cancelling ctx returns
// ctx.Err() without waiting for the operator.
func (p *Prompter) Ask(ctx context.Context, question string, args ...interface{}) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := fmt.Fprint(p.out, l10n.F(question, args...)); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}

	p.once.Do(func() { go p.readLines() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case a, ok := <-p.answers:
		if !ok {
			return "", io.EOF
		}
		return a.line, a.err
	}
}

var _ ports.Prompter = (*Prompter)(nil)
