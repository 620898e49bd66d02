package session

import (
	"bufio"
	"context"
	"errors"
	"io"
	"sync"
)

// ErrInterrupted is returned by ReadLine when the context ends first.
var ErrInterrupted = errors.New("interrupted")

// Prompter supplies lines of user input.
type Prompter interface {
	// ReadLine blocks for the next line, without its line ending. It returns
	// io.EOF at end of input and ErrInterrupted when ctx is done.
	ReadLine(ctx context.Context) (string, error)
}

type line struct {
	text string
	err  error
}

// Console reads lines from r on a background goroutine so a pending read can
// be abandoned when the context is cancelled.
type Console struct {
	r     io.Reader
	lines chan line
	once  sync.Once
}

// NewConsole returns a Console reading from r.
func NewConsole(r io.Reader) *Console {
	return &Console{r: r, lines: make(chan line)}
}

// ReadLine implements Prompter.
func (c *Console) ReadLine(ctx context.Context) (string, error) {
	c.once.Do(func() { go c.scan() })

	select {
	case <-ctx.Done():
		return "", ErrInterrupted
	default:
	}
	select {
	case <-ctx.Done():
		return "", ErrInterrupted
	case l, ok := <-c.lines:
		if !ok {
			return "", io.EOF
		}
		return l.text, l.err
	}
}

func (c *Console) scan() {
	defer close(c.lines)
	sc := bufio.NewScanner(c.r)
	for sc.Scan() {
		c.lines <- line{text: sc.Text()}
	}
	if err := sc.Err(); err != nil {
		c.lines <- line{err: err}
	}
}
