package platform

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/lrstanley/go-ytdlp"

	"github.com/ytget/ytpick/internal/errs"
	ytlogger "github.com/ytget/ytpick/internal/logger"
	"github.com/ytget/ytpick/internal/model"
)

// Timeout constants
const (
	DefaultParseTimeout = 60 * time.Second
)

// ProgressInterval is how often download progress is reported
const ProgressInterval = 500 * time.Millisecond

// DownloadLinePrefix starts yt-dlp's own download status lines
const DownloadLinePrefix = "[download]"

// Operation names used in errors and logs
const (
	OpMetadata = "metadata"
	OpDownload = "download"
)

// YTDLP runs the yt-dlp executable through go-ytdlp
type YTDLP struct {
	binary   string
	timeout  time.Duration
	logger   hclog.Logger
	lookPath func(string) (string, error)
}

// NewYTDLP creates a runner for the given executable name or path
func NewYTDLP(binary string, logger hclog.Logger) *YTDLP {
	if logger == nil {
		logger = ytlogger.Discard()
	}
	return &YTDLP{
		binary:   binary,
		timeout:  DefaultParseTimeout,
		logger:   logger.Named("ytdlp"),
		lookPath: exec.LookPath,
	}
}

// SetTimeout sets the timeout for metadata lookups. Zero disables it.
func (y *YTDLP) SetTimeout(timeout time.Duration) {
	y.timeout = timeout
}

// Executable resolves the binary on PATH
func (y *YTDLP) Executable() (string, error) {
	path, err := y.lookPath(y.binary)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", errs.ErrToolNotFound, y.binary, err)
	}
	return path, nil
}

// DumpJSON runs "yt-dlp -j <url>" and returns its standard output
func (y *YTDLP) DumpJSON(ctx context.Context, url string) ([]byte, error) {
	path, err := y.Executable()
	if err != nil {
		return nil, err
	}

	if y.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, y.timeout)
		defer cancel()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	y.logger.Debug("running metadata lookup", "executable", path, "url", url)

	result, err := ytdlp.New().
		SetExecutable(path).
		DumpJSON().
		Run(ctx, url)
	if err != nil {
		return nil, y.wrapError(ctx, OpMetadata, result, err)
	}

	return []byte(result.Stdout), nil
}

// Download runs one download job and blocks until the tool exits
func (y *YTDLP) Download(ctx context.Context, job model.Job) error {
	path, err := y.Executable()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	dl := ytdlp.New().
		SetExecutable(path).
		Format(job.Format).
		Paths(job.Dir)

	if job.IsMerge() && job.MergeFormat != "" {
		dl = dl.MergeOutputFormat(job.MergeFormat)
	}

	if job.OnProgress != nil {
		dl = dl.ProgressFunc(ProgressInterval, func(update ytdlp.ProgressUpdate) {
			job.OnProgress(toProgress(update))
		})
	}

	y.logger.Debug("running download", "executable", path, "args", job.Args())

	result, err := dl.Run(ctx, job.URL)
	if err != nil {
		// stderr of a failed run travels in the ToolError
		if result != nil {
			emitOutput(job.OnOutput, result.Stdout)
		}
		return y.wrapError(ctx, OpDownload, result, err)
	}

	if result != nil {
		emitOutput(job.OnOutput, result.Stdout)
		emitOutput(job.OnOutput, result.Stderr)
	}

	y.logger.Debug("download finished", "format", job.Format, "dir", job.Dir)
	return nil
}

// emitOutput passes every non-progress line of out to sink
func emitOutput(sink func(string), out string) {
	if sink == nil {
		return
	}
	for _, line := range OutputLines(out) {
		sink(line)
	}
}

// OutputLines splits captured tool output into the lines worth showing. Blank lines,
// progress lines and machine-readable progress records are dropped.
func OutputLines(out string) []string {
	var lines []string
	for _, line := range strings.Split(strings.ReplaceAll(out, "\r", "\n"), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || isProgressLine(line) {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

func isProgressLine(line string) bool {
	if strings.HasPrefix(line, "{") {
		return true
	}
	return strings.HasPrefix(line, DownloadLinePrefix) && strings.Contains(line, "%") && strings.Contains(line, "ETA")
}

// wrapError turns a go-ytdlp failure into a ToolError, or the context error when the
// run was interrupted or timed out.
func (y *YTDLP) wrapError(ctx context.Context, op string, result *ytdlp.Result, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		y.logger.Warn("tool stopped", "op", op, "reason", ctxErr)
		return fmt.Errorf("%s: %w", op, ctxErr)
	}

	toolErr := &errs.ToolError{Op: op, ExitCode: -1}
	if result != nil {
		toolErr.ExitCode = result.ExitCode
		toolErr.Stderr = result.Stderr
	}
	if toolErr.Stderr == "" {
		toolErr.Stderr = err.Error()
	}

	y.logger.Debug("tool failed", "op", op, "exit_code", toolErr.ExitCode, "error", err)
	return toolErr
}

// toProgress converts a go-ytdlp progress update
func toProgress(update ytdlp.ProgressUpdate) model.Progress {
	p := model.Progress{
		DownloadedBytes: int64(update.DownloadedBytes),
		TotalBytes:      int64(update.TotalBytes),
	}

	if p.TotalBytes > 0 {
		p.Percent = float64(p.DownloadedBytes) / float64(p.TotalBytes) * 100
	}

	if eta := update.ETA(); eta > 0 {
		p.ETA = eta
	}

	if update.Info != nil && update.Info.Title != nil {
		p.Title = *update.Info.Title
	}

	return p
}

// IsInterrupted reports whether err came from a signal or cancelled context
func IsInterrupted(err error) bool {
	return errors.Is(err, context.Canceled)
}
