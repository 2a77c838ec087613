// Package errs defines the error kinds a run can end with.
package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrToolNotFound indicates that the yt-dlp executable is not installed or not on PATH.
	ErrToolNotFound = errors.New("downloader tool not found")
	// ErrToolFailed indicates that the tool exited with a non-zero status.
	ErrToolFailed = errors.New("downloader tool failed")
	// ErrParseFailed indicates that the metadata output is not valid JSON.
	ErrParseFailed = errors.New("metadata could not be parsed")
	// ErrInvalidMode indicates an unknown menu answer.
	ErrInvalidMode = errors.New("invalid mode")
	// ErrInvalidPath indicates that the destination directory does not exist.
	ErrInvalidPath = errors.New("invalid path")
	// ErrPathNotWritable indicates that the destination directory exists but cannot be written.
	ErrPathNotWritable = errors.New("path not writable")
	// ErrNothingSelected indicates that no format was chosen.
	ErrNothingSelected = errors.New("nothing selected")
	// ErrCancelled indicates that the user declined to continue.
	ErrCancelled = errors.New("cancelled")
)

// ToolError carries the diagnostic output of a failed tool invocation.
type ToolError struct {
	Op       string
	ExitCode int
	Stderr   string
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("%s: exit status %d", e.Op, e.ExitCode)
}

// Unwrap lets errors.Is match ErrToolFailed.
func (e *ToolError) Unwrap() error {
	return ErrToolFailed
}

// Diagnostic returns the captured stderr, or the error text when nothing was captured.
func Diagnostic(err error) string {
	var te *ToolError
	if errors.As(err, &te) {
		if msg := strings.TrimSpace(te.Stderr); msg != "" {
			return msg
		}
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
