// Package formats classifies, ranks and auto-picks yt-dlp stream variants.
package formats

import (
	"cmp"
	"slices"

	"github.com/ytget/ytpick/internal/model"
)

// Kind is the classification of a variant
type Kind int

const (
	// KindOther covers muxed variants and variants without any real codec
	KindOther Kind = iota
	KindVideoOnly
	KindAudioOnly
)

// PreferredAudioExt is the extension auto-pick prefers for the audio track
const PreferredAudioExt = "m4a"

const bytesPerMiB = 1024 * 1024

// String returns a short name used in logs and metrics.
func (k Kind) String() string {
	switch k {
	case KindVideoOnly:
		return "video"
	case KindAudioOnly:
		return "audio"
	default:
		return "other"
	}
}

// Classify puts v into exactly one kind. A variant is video-only when it declares a
// real video codec and its audio codec is "none", and audio-only in the reverse case.
func Classify(v model.StreamVariant) Kind {
	switch {
	case v.HasVideo() && isNone(v.ACodec):
		return KindVideoOnly
	case v.HasAudio() && isNone(v.VCodec):
		return KindAudioOnly
	default:
		return KindOther
	}
}

func isNone(codec *string) bool {
	return codec != nil && *codec == model.CodecNone
}

// Partition splits variants into ranked video-only and audio-only groups.
// The input slice is not modified.
func Partition(variants []model.StreamVariant) (video, audio []model.StreamVariant) {
	for _, v := range variants {
		switch Classify(v) {
		case KindVideoOnly:
			video = append(video, v)
		case KindAudioOnly:
			audio = append(audio, v)
		}
	}
	RankVideo(video)
	RankAudio(audio)
	return video, audio
}

// RankVideo sorts in place by height, then total bitrate, both descending.
// Missing values rank as zero and ties keep their input order.
func RankVideo(video []model.StreamVariant) {
	slices.SortStableFunc(video, compareVideo)
}

// RankAudio sorts in place by average bitrate, descending.
func RankAudio(audio []model.StreamVariant) {
	slices.SortStableFunc(audio, func(a, b model.StreamVariant) int {
		return cmp.Compare(b.ABROrZero(), a.ABROrZero())
	})
}

func compareVideo(a, b model.StreamVariant) int {
	if c := cmp.Compare(b.HeightOrZero(), a.HeightOrZero()); c != 0 {
		return c
	}
	return cmp.Compare(b.TBROrZero(), a.TBROrZero())
}

// EstimateMiB converts the declared (or approximate) size to mebibytes.
// Variants without any size estimate to exactly 0.
func EstimateMiB(v model.StreamVariant) float64 {
	return float64(v.SizeBytes()) / bytesPerMiB
}

// Top returns at most n leading entries.
func Top(variants []model.StreamVariant, n int) []model.StreamVariant {
	if n < 0 {
		n = 0
	}
	if len(variants) <= n {
		return variants
	}
	return variants[:n]
}
