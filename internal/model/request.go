package model

import "strings"

// DownloadRequest is one of MergeRequest, VideoOnlyRequest, AudioOnlyRequest or EmptyRequest.
// The interface is sealed so a type switch over the four cases is exhaustive.
type DownloadRequest interface {
	isDownloadRequest()
}

// MergeRequest downloads a video and an audio format and merges them into one file
type MergeRequest struct {
	VideoID string
	AudioID string
}

// VideoOnlyRequest downloads a single video format
type VideoOnlyRequest struct {
	VideoID string
}

// AudioOnlyRequest downloads a single audio format
type AudioOnlyRequest struct {
	AudioID string
}

// EmptyRequest means nothing was selected
type EmptyRequest struct{}

func (MergeRequest) isDownloadRequest()     {}
func (VideoOnlyRequest) isDownloadRequest() {}
func (AudioOnlyRequest) isDownloadRequest() {}
func (EmptyRequest) isDownloadRequest()     {}

// NewDownloadRequest maps the optional identifiers onto the matching request case.
// Blank identifiers count as absent.
func NewDownloadRequest(videoID, audioID string) DownloadRequest {
	videoID = strings.TrimSpace(videoID)
	audioID = strings.TrimSpace(audioID)

	switch {
	case videoID != "" && audioID != "":
		return MergeRequest{VideoID: videoID, AudioID: audioID}
	case videoID != "":
		return VideoOnlyRequest{VideoID: videoID}
	case audioID != "":
		return AudioOnlyRequest{AudioID: audioID}
	default:
		return EmptyRequest{}
	}
}

// Selection is the pair of chosen identifiers and their estimated combined size
type Selection struct {
	VideoID      string
	AudioID      string
	EstimatedMiB float64
}

// Request returns the download request for the selection
func (s Selection) Request() DownloadRequest {
	return NewDownloadRequest(s.VideoID, s.AudioID)
}

// IsEmpty returns true if neither identifier is set
func (s Selection) IsEmpty() bool {
	_, empty := s.Request().(EmptyRequest)
	return empty
}
