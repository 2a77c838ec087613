package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"github.com/ytget/ytpick/internal/download"
	"github.com/ytget/ytpick/internal/errs"
	"github.com/ytget/ytpick/internal/formats"
	"github.com/ytget/ytpick/internal/model"
	"github.com/ytget/ytpick/internal/platform"
)

// Observer receives per-run measurements
type Observer interface {
	ObserveRun(status string)
	SetFetchDuration(d time.Duration)
	SetVariants(kind string, n int)
	SetSelectedMiB(mib float64)
}

// Session drives one interactive run from URL prompt to finished download
type Session struct {
	input      InputProvider
	console    *Console
	downloader download.Downloader
	logger     hclog.Logger
	observer   Observer
	runID      string
	url        string
}

// NewSession creates a session and routes download progress to the console
func NewSession(input InputProvider, console *Console, downloader download.Downloader, logger hclog.Logger) *Session {
	runID := generateRunID()

	s := &Session{
		input:      input,
		console:    console,
		downloader: downloader,
		logger:     logger.With("run_id", runID),
		runID:      runID,
	}

	downloader.SetUpdateCallback(s.showProgress)
	downloader.SetOutputCallback(console.ToolOutput)
	return s
}

// SetObserver sets where run measurements are reported
func (s *Session) SetObserver(observer Observer) {
	s.observer = observer
}

// RunID returns the identifier attached to this run's log lines
func (s *Session) RunID() string {
	return s.runID
}

// Run executes the prompt sequence once. The returned error is set only when input
// could not be read; every other outcome is described by the status.
func (s *Session) Run(ctx context.Context) (status model.RunStatus, err error) {
	defer func() {
		if err == nil {
			s.logger.Info("run finished", "status", status)
			if s.observer != nil {
				s.observer.ObserveRun(status.String())
			}
		}
	}()

	url, err := s.input.Ask(s.console.Text(KeyPromptURL))
	if err != nil {
		return s.inputFailed(err)
	}
	s.url = url

	s.console.Info(KeyFetching)
	info, status, ok := s.fetch(ctx, url)
	if !ok {
		return status, nil
	}

	if info.Title != "" {
		s.console.Info(KeyMediaTitle, info.Title)
	}

	video, audio := formats.Partition(info.Formats)
	s.logger.Debug("variants classified", "video", len(video), "audio", len(audio), "total", len(info.Formats))
	if s.observer != nil {
		s.observer.SetVariants(formats.KindVideoOnly.String(), len(video))
		s.observer.SetVariants(formats.KindAudioOnly.String(), len(audio))
	}
	s.console.ListFormats(video, audio)

	answer, err := s.input.Ask(s.console.Text(KeyPromptMode))
	if err != nil {
		return s.inputFailed(err)
	}

	mode, err := model.ParseMode(answer)
	if err != nil {
		s.logger.Debug("mode rejected", "error", err)
		s.console.Failure(KeyInvalidChoice)
		return model.RunStatusInvalidInput, nil
	}
	s.logger.Debug("mode selected", "mode", mode.Label())

	selection, status, ok, err := s.choose(mode, info, video, audio)
	if err != nil {
		return s.inputFailed(err)
	}
	if !ok {
		return status, nil
	}

	answer, err = s.input.Ask(s.console.Text(KeyPromptPath))
	if err != nil {
		return s.inputFailed(err)
	}

	dir, status, ok := s.destination(answer)
	if !ok {
		return status, nil
	}

	if selection.IsEmpty() {
		s.console.Info(KeyNothingSelected)
		return model.RunStatusNothingSelected, nil
	}

	return s.download(ctx, url, selection.Request(), dir), nil
}

// showProgress renders a progress update under the media title, or the URL before
// the tool reports one
func (s *Session) showProgress(p model.Progress) {
	s.console.Progress(p.GetDisplayTitle(s.url), p)
}

// fetch looks up the variants of url and reports failures on the console
func (s *Session) fetch(ctx context.Context, url string) (*model.MediaInfo, model.RunStatus, bool) {
	if platform.IsPlaylistURL(url) {
		s.logger.Warn("URL refers to a playlist, only the first entry is listed", "url", url)
	}

	start := time.Now()
	info, err := s.downloader.FetchVariants(ctx, url)
	if s.observer != nil {
		s.observer.SetFetchDuration(time.Since(start))
	}

	if err == nil {
		return info, "", true
	}

	s.logger.Error("metadata lookup failed", "error", err)
	switch {
	case platform.IsInterrupted(err):
		s.console.Failure(KeyInterrupted)
		return nil, model.RunStatusInterrupted, false
	case errors.Is(err, errs.ErrToolNotFound):
		s.console.Failure(KeyToolNotFound)
	default:
		s.console.Failure(KeyCommandFailed, errs.Diagnostic(err))
	}
	return nil, model.RunStatusFailed, false
}

// choose collects the format identifiers for mode. It reports false with the terminal
// status when the run ends here.
func (s *Session) choose(mode model.Mode, info *model.MediaInfo, video, audio []model.StreamVariant) (model.Selection, model.RunStatus, bool, error) {
	var sel model.Selection
	var err error

	switch mode {
	case model.ModeVideoOnly:
		sel.VideoID, err = s.input.Ask(s.console.Text(KeyPromptVideoID))
	case model.ModeAudioOnly:
		sel.AudioID, err = s.input.Ask(s.console.Text(KeyPromptAudioID))
	case model.ModeAutoBoth:
		return s.autoPick(video, audio)
	case model.ModeManualBoth:
		sel.VideoID, err = s.input.Ask(s.console.Text(KeyPromptVideoManual))
		if err == nil {
			sel.AudioID, err = s.input.Ask(s.console.Text(KeyPromptAudioManual))
		}
	}
	if err != nil {
		return model.Selection{}, "", false, err
	}

	s.warnUnlisted(info, sel.VideoID, sel.AudioID)
	return sel, "", true, nil
}

// autoPick shows the automatic choice and asks for confirmation
func (s *Session) autoPick(video, audio []model.StreamVariant) (model.Selection, model.RunStatus, bool, error) {
	pick, ok := formats.AutoPick(video, audio)
	if !ok {
		s.logger.Warn("auto-pick needs both a video and an audio variant", "video", len(video), "audio", len(audio))
		s.console.Info(KeyCancelled)
		return model.Selection{}, model.RunStatusNothingSelected, false, nil
	}

	s.console.ShowPick(pick)

	answer, err := s.input.Ask(s.console.Text(KeyPromptConfirm))
	if err != nil {
		return model.Selection{}, "", false, err
	}

	if answer = strings.ToLower(answer); answer != "" && answer != ConfirmYes {
		s.logger.Debug("auto-pick declined", "answer", answer)
		s.console.Info(KeyCancelled)
		return model.Selection{}, model.RunStatusCancelled, false, nil
	}

	sel := pick.Selection()
	s.logger.Info("auto-pick accepted", "video", sel.VideoID, "audio", sel.AudioID, "estimated_mib", sel.EstimatedMiB)
	if s.observer != nil {
		s.observer.SetSelectedMiB(sel.EstimatedMiB)
	}
	return sel, "", true, nil
}

// warnUnlisted logs identifiers that are not in the metadata. They are still passed to
// the tool, which also accepts selector expressions.
func (s *Session) warnUnlisted(info *model.MediaInfo, ids ...string) {
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, found := info.FindFormat(id); !found {
			s.logger.Warn("format code not in listing, passing it through", "format", id)
		}
	}
}

// destination expands and validates the answer to the path prompt
func (s *Session) destination(answer string) (string, model.RunStatus, bool) {
	dir, err := platform.ExpandPath(answer)
	if err == nil {
		err = platform.ValidateDestination(dir)
	}
	if err == nil {
		return dir, "", true
	}

	s.logger.Debug("destination rejected", "path", answer, "error", err)
	if errors.Is(err, errs.ErrPathNotWritable) {
		s.console.Failure(KeyPathNotWritable)
	} else {
		s.console.Failure(KeyInvalidPath)
	}
	return "", model.RunStatusInvalidInput, false
}

// download announces and runs the request
func (s *Session) download(ctx context.Context, url string, req model.DownloadRequest, dir string) model.RunStatus {
	switch r := req.(type) {
	case model.MergeRequest:
		s.console.Info(KeyDownloadMerge, r.VideoID, r.AudioID)
	case model.VideoOnlyRequest:
		s.console.Info(KeyDownloadVideo, r.VideoID)
	case model.AudioOnlyRequest:
		s.console.Info(KeyDownloadAudio, r.AudioID)
	}

	err := s.downloader.Download(ctx, url, req, dir)
	s.console.EndProgress()

	switch {
	case err == nil:
	case platform.IsInterrupted(err):
		s.logger.Warn("download interrupted", "error", err)
		s.console.Failure(KeyInterrupted)
		return model.RunStatusInterrupted
	case errors.Is(err, errs.ErrNothingSelected):
		s.console.Info(KeyNothingSelected)
		return model.RunStatusNothingSelected
	case errors.Is(err, errs.ErrToolNotFound):
		s.logger.Error("download failed", "error", err)
		s.console.Failure(KeyToolNotFound)
		return model.RunStatusFailed
	default:
		s.logger.Error("download failed", "error", err)
		s.console.Failure(KeyDownloadFailed, errs.Diagnostic(err))
		return model.RunStatusFailed
	}

	if _, merged := req.(model.MergeRequest); merged {
		s.console.Success(KeyMergeComplete)
	} else {
		s.console.Success(KeyDownloadComplete)
	}
	return model.RunStatusCompleted
}

// inputFailed maps an input error onto the run result. End of input cancels the run.
func (s *Session) inputFailed(err error) (model.RunStatus, error) {
	if errors.Is(err, errs.ErrCancelled) {
		s.logger.Debug("input closed")
		s.console.Info(KeyCancelled)
		return model.RunStatusCancelled, nil
	}
	return model.RunStatusFailed, fmt.Errorf("read input: %w", err)
}

// generateRunID returns a UUID v7, or a timestamp when no UUID can be generated
func generateRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return id.String()
}
