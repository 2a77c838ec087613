package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ytget/ytpick/internal/errs"
)

// InputProvider supplies answers to prompts
type InputProvider interface {
	// Ask shows prompt and returns the trimmed answer. End of input is reported as
	// errs.ErrCancelled.
	Ask(prompt string) (string, error)
}

// LineInput reads one line per prompt
type LineInput struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewLineInput creates a line based provider, prompts are written to out
func NewLineInput(in io.Reader, out io.Writer) *LineInput {
	return &LineInput{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Ask implements InputProvider
func (l *LineInput) Ask(prompt string) (string, error) {
	if _, err := fmt.Fprint(l.out, prompt); err != nil {
		return "", err
	}

	line, err := l.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read answer: %w", err)
		}
		// A last line without newline still counts.
		if line == "" {
			return "", errs.ErrCancelled
		}
	}

	return strings.TrimSpace(line), nil
}
