package model

import (
	"fmt"
	"strings"

	"github.com/ytget/ytpick/internal/errs"
)

// Mode is the download option chosen from the menu
type Mode string

const (
	ModeVideoOnly  Mode = "1"
	ModeAudioOnly  Mode = "2"
	ModeAutoBoth   Mode = "3"
	ModeManualBoth Mode = "4"
)

// ParseMode validates a menu answer
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.TrimSpace(s))
	switch m {
	case ModeVideoOnly, ModeAudioOnly, ModeAutoBoth, ModeManualBoth:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", errs.ErrInvalidMode, s)
}

// String returns the menu key of the mode
func (m Mode) String() string {
	return string(m)
}

// Label returns a short name used in logs and metrics
func (m Mode) Label() string {
	switch m {
	case ModeVideoOnly:
		return "video"
	case ModeAudioOnly:
		return "audio"
	case ModeAutoBoth:
		return "auto"
	case ModeManualBoth:
		return "manual"
	default:
		return "unknown"
	}
}
