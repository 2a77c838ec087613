package platform

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ytget/ytpick/internal/errs"
	"github.com/ytget/ytpick/internal/model"
)

// URL parameters
const (
	PlaylistParam = "list="
)

// ParseMetadata decodes the output of "yt-dlp -j". When the tool printed one
// document per line (playlist URLs) only the first document is used.
func ParseMetadata(output []byte) (*model.MediaInfo, error) {
	trimmed := bytes.TrimSpace(output)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty output", errs.ErrParseFailed)
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	var info model.MediaInfo
	if err := dec.Decode(&info); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrParseFailed, err)
	}

	return &info, nil
}

// CountDocuments reports how many JSON documents the output holds. It stops at the
// first malformed document.
func CountDocuments(output []byte) int {
	dec := json.NewDecoder(bytes.NewReader(output))
	n := 0
	for {
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return n
		}
		n++
	}
}

// IsPlaylistURL checks if the URL carries a playlist parameter
func IsPlaylistURL(url string) bool {
	return strings.Contains(url, PlaylistParam)
}
