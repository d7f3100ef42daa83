package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/ib-77/fallible/pkg/fallible"
)

func parser(base int) fallible.Function[string, int64] {
	return func(line string) (int64, error) {
		return strconv.ParseInt(strings.TrimSpace(line), base, 64)
	}
}

// maxLineSize bounds a single input line. Longer lines end the scan with
// bufio.ErrTooLong.
const maxLineSize = 1 << 20

// source reads lines from r. Err reports why the scan stopped once a
// traversal has finished.
type source struct {
	r   io.Reader
	err error
}

func newSource(r io.Reader) *source {
	return &source{r: r}
}

// lines yields r line by line. It is not restartable.
func (s *source) lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		scanner := bufio.NewScanner(s.r)
		scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
		for scanner.Scan() {
			if !yield(scanner.Text()) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			s.err = fmt.Errorf("reading input: %w", err)
		}
	}
}

// lineChan feeds the lines into a channel for the concurrent flow. Err is
// set before the channel closes.
func (s *source) lineChan(ctx context.Context) <-chan string {
	out := make(chan string)

	go func() {
		defer close(out)
		for line := range s.lines() {
			select {
			case out <- line:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

func (s *source) Err() error {
	return s.err
}
