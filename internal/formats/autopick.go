package formats

import (
	"strings"

	"github.com/ytget/ytpick/internal/model"
)

// Pick is the automatically chosen video and audio pair
type Pick struct {
	Video model.StreamVariant
	Audio model.StreamVariant
}

// AutoPick takes the best ranked video and the best ranked m4a audio, falling back to
// the best audio overall. Both groups must already be ranked. It reports false when
// either group is empty.
func AutoPick(video, audio []model.StreamVariant) (Pick, bool) {
	if len(video) == 0 || len(audio) == 0 {
		return Pick{}, false
	}

	chosen := audio[0]
	for _, a := range audio {
		if strings.Contains(a.Ext, PreferredAudioExt) {
			chosen = a
			break
		}
	}

	return Pick{Video: video[0], Audio: chosen}, true
}

// VideoMiB returns the estimated size of the video track
func (p Pick) VideoMiB() float64 {
	return EstimateMiB(p.Video)
}

// AudioMiB returns the estimated size of the audio track
func (p Pick) AudioMiB() float64 {
	return EstimateMiB(p.Audio)
}

// TotalMiB returns the sum of both estimates
func (p Pick) TotalMiB() float64 {
	return p.VideoMiB() + p.AudioMiB()
}

// Selection converts the pick into identifiers for the downloader
func (p Pick) Selection() model.Selection {
	return model.Selection{
		VideoID:      p.Video.FormatID,
		AudioID:      p.Audio.FormatID,
		EstimatedMiB: p.TotalMiB(),
	}
}
