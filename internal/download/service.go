package download

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/ytget/ytpick/internal/errs"
	ytlogger "github.com/ytget/ytpick/internal/logger"
	"github.com/ytget/ytpick/internal/model"
	"github.com/ytget/ytpick/internal/platform"
)

// Service handles metadata lookups and downloads
type Service struct {
	tool        Tool
	mergeFormat string
	logger      hclog.Logger
	recorder    Recorder
	onUpdate    func(model.Progress) // callback for progress rendering
	onOutput    func(string)         // callback for tool output lines
}

// NewService creates a new download service
func NewService(tool Tool, mergeFormat string, logger hclog.Logger) *Service {
	if logger == nil {
		logger = ytlogger.Discard()
	}
	return &Service{
		tool:        tool,
		mergeFormat: mergeFormat,
		logger:      logger.Named("download"),
	}
}

// SetUpdateCallback sets the callback function for progress updates
func (s *Service) SetUpdateCallback(callback func(model.Progress)) {
	s.onUpdate = callback
}

// SetOutputCallback sets where the tool's output lines go after a download
func (s *Service) SetOutputCallback(callback func(string)) {
	s.onOutput = callback
}

// SetRecorder sets where invocation outcomes are reported
func (s *Service) SetRecorder(recorder Recorder) {
	s.recorder = recorder
}

// FetchVariants runs the metadata lookup and parses the result
func (s *Service) FetchVariants(ctx context.Context, url string) (*model.MediaInfo, error) {
	s.logger.Info("fetching metadata", "url", url)

	out, err := s.tool.DumpJSON(ctx, url)
	s.observe(platform.OpMetadata, err)
	if err != nil {
		return nil, fmt.Errorf("fetch metadata: %w", err)
	}

	if n := platform.CountDocuments(out); n > 1 {
		s.logger.Warn("tool returned several documents, using the first", "documents", n)
	}

	info, err := platform.ParseMetadata(out)
	if err != nil {
		return nil, fmt.Errorf("fetch metadata: %w", err)
	}

	s.logger.Info("metadata parsed", "id", info.ID, "formats", len(info.Formats))
	return info, nil
}

// Download executes req into dir. An EmptyRequest never reaches the tool.
func (s *Service) Download(ctx context.Context, url string, req model.DownloadRequest, dir string) error {
	job, err := s.BuildJob(url, req, dir)
	if err != nil {
		return err
	}
	job.OnProgress = s.onUpdate
	job.OnOutput = s.onOutput

	s.logger.Info("starting download", "format", job.Format, "merge_format", job.MergeFormat, "dir", dir)

	err = s.tool.Download(ctx, job)
	s.observe(platform.OpDownload, err)
	if err != nil {
		return fmt.Errorf("download %s: %w", job.Format, err)
	}
	return nil
}

// BuildJob maps each request case onto one tool invocation
func (s *Service) BuildJob(url string, req model.DownloadRequest, dir string) (model.Job, error) {
	job := model.Job{URL: url, Dir: dir}

	switch r := req.(type) {
	case model.MergeRequest:
		job.Format = r.VideoID + "+" + r.AudioID
		job.MergeFormat = s.mergeFormat
	case model.VideoOnlyRequest:
		job.Format = r.VideoID
	case model.AudioOnlyRequest:
		job.Format = r.AudioID
	case model.EmptyRequest, nil:
		return model.Job{}, errs.ErrNothingSelected
	default:
		return model.Job{}, fmt.Errorf("unsupported download request %T", req)
	}

	return job, nil
}

// observe forwards an invocation outcome to the recorder, if any
func (s *Service) observe(op string, err error) {
	if s.recorder != nil {
		s.recorder.ObserveInvocation(op, err)
	}
}
