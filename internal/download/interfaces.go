package download

import (
	"context"

	"github.com/ytget/ytpick/internal/model"
)

// Tool is the external downloader the service invokes.
type Tool interface {
	// DumpJSON returns the raw metadata document for url.
	DumpJSON(ctx context.Context, url string) ([]byte, error)
	// Download runs a single job to completion.
	Download(ctx context.Context, job model.Job) error
}

// Downloader defines the interface for the download service.
type Downloader interface {
	SetUpdateCallback(func(model.Progress))
	SetOutputCallback(func(string))
	FetchVariants(ctx context.Context, url string) (*model.MediaInfo, error)
	Download(ctx context.Context, url string, req model.DownloadRequest, dir string) error
}

// Recorder receives per-invocation observations.
type Recorder interface {
	ObserveInvocation(op string, err error)
}
