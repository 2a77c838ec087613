package model

import (
	"encoding/json"
	"math"
)

// CodecNone is the codec value yt-dlp reports for a missing video or audio track
const CodecNone = "none"

// StreamVariant is one encoded rendition of the source media as described by yt-dlp.
// Optional numeric fields are nil when the tool does not report them.
type StreamVariant struct {
	FormatID       string   `json:"format_id"`
	Ext            string   `json:"ext"`
	VCodec         *string  `json:"vcodec"`
	ACodec         *string  `json:"acodec"`
	Height         *int     `json:"height"`
	ABR            *float64 `json:"abr"`
	TBR            *float64 `json:"tbr"`
	FileSize       *int64   `json:"filesize"`
	FileSizeApprox *int64   `json:"filesize_approx"`
}

// MediaInfo is the subset of the yt-dlp metadata document the app relies on.
// Formats keeps the order reported by the tool.
type MediaInfo struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Duration float64         `json:"duration"`
	Formats  []StreamVariant `json:"formats"`
}

// UnmarshalJSON accepts height and sizes written as floats (e.g. 5000000.0), which some
// extractors emit for integral values.
func (v *StreamVariant) UnmarshalJSON(data []byte) error {
	type plain StreamVariant
	var raw struct {
		plain
		Height         *float64 `json:"height"`
		FileSize       *float64 `json:"filesize"`
		FileSizeApprox *float64 `json:"filesize_approx"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*v = StreamVariant(raw.plain)
	if raw.Height != nil {
		h := int(math.Round(*raw.Height))
		v.Height = &h
	}
	v.FileSize = roundedInt64(raw.FileSize)
	v.FileSizeApprox = roundedInt64(raw.FileSizeApprox)
	return nil
}

func roundedInt64(f *float64) *int64 {
	if f == nil {
		return nil
	}
	n := int64(math.Round(*f))
	return &n
}

// HasVideo returns true if the variant declares a real video codec
func (v StreamVariant) HasVideo() bool {
	return v.VCodec != nil && *v.VCodec != CodecNone
}

// HasAudio returns true if the variant declares a real audio codec
func (v StreamVariant) HasAudio() bool {
	return v.ACodec != nil && *v.ACodec != CodecNone
}

// VideoCodec returns the video codec string, empty if unknown
func (v StreamVariant) VideoCodec() string {
	if v.VCodec == nil {
		return ""
	}
	return *v.VCodec
}

// AudioCodec returns the audio codec string, empty if unknown
func (v StreamVariant) AudioCodec() string {
	if v.ACodec == nil {
		return ""
	}
	return *v.ACodec
}

// HeightOrZero returns the vertical resolution, 0 if unknown
func (v StreamVariant) HeightOrZero() int {
	if v.Height == nil {
		return 0
	}
	return *v.Height
}

// TBROrZero returns the total bitrate, 0 if unknown
func (v StreamVariant) TBROrZero() float64 {
	if v.TBR == nil {
		return 0
	}
	return *v.TBR
}

// ABROrZero returns the average audio bitrate, 0 if unknown
func (v StreamVariant) ABROrZero() float64 {
	if v.ABR == nil {
		return 0
	}
	return *v.ABR
}

// SizeBytes returns the declared size, falling back to the approximate size.
// A zero declared size counts as missing.
func (v StreamVariant) SizeBytes() int64 {
	if v.FileSize != nil && *v.FileSize != 0 {
		return *v.FileSize
	}
	if v.FileSizeApprox != nil {
		return *v.FileSizeApprox
	}
	return 0
}

// FindFormat returns the variant with the given identifier
func (m *MediaInfo) FindFormat(formatID string) (StreamVariant, bool) {
	for _, f := range m.Formats {
		if f.FormatID == formatID {
			return f, true
		}
	}
	return StreamVariant{}, false
}
