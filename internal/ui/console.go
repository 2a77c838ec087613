package ui

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"

	"github.com/ytget/ytpick/internal/formats"
	"github.com/ytget/ytpick/internal/model"
)

// Console renders listings and status lines
type Console struct {
	out  io.Writer
	text *Localization

	heading *color.Color
	success *color.Color
	failure *color.Color

	progressShown bool
	lastWidth     int
}

// NewConsole creates a console writing to out. With colorize false no escape codes are
// emitted even on a terminal.
func NewConsole(out io.Writer, text *Localization, colorize bool) *Console {
	c := &Console{
		out:     out,
		text:    text,
		heading: color.New(color.FgCyan, color.Bold),
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed),
	}

	if !colorize {
		c.heading.DisableColor()
		c.success.DisableColor()
		c.failure.DisableColor()
	}

	return c
}

// Text returns the localized text for key formatted with args
func (c *Console) Text(key string, args ...any) string {
	if len(args) == 0 {
		return c.text.GetText(key)
	}
	return fmt.Sprintf(c.text.GetText(key), args...)
}

// Info prints a plain message
func (c *Console) Info(key string, args ...any) {
	fmt.Fprintln(c.out, c.Text(key, args...))
}

// Success prints a message in the success color
func (c *Console) Success(key string, args ...any) {
	c.success.Fprintln(c.out, c.Text(key, args...))
}

// Failure prints a message in the failure color
func (c *Console) Failure(key string, args ...any) {
	c.failure.Fprintln(c.out, c.Text(key, args...))
}

// ListFormats prints the top ranked variants of both groups
func (c *Console) ListFormats(video, audio []model.StreamVariant) {
	if len(video) > 0 {
		c.heading.Fprintln(c.out, c.Text(KeyVideoHeading))
		for _, v := range formats.Top(video, VideoDisplayLimit) {
			fmt.Fprintln(c.out, VideoRow(v))
		}
	} else {
		c.Info(KeyNoVideo)
	}

	if len(audio) > 0 {
		c.heading.Fprintln(c.out, c.Text(KeyAudioHeading))
		for _, a := range formats.Top(audio, AudioDisplayLimit) {
			fmt.Fprintln(c.out, AudioRow(a))
		}
	} else {
		c.Info(KeyNoAudio)
	}
}

// ShowPick prints the auto-selected pair and the estimated total
func (c *Console) ShowPick(p formats.Pick) {
	c.heading.Fprintln(c.out, c.Text(KeyAutoHeading))
	c.Info(KeyAutoVideo, p.Video.FormatID, Resolution(p.Video), p.Video.Ext, p.VideoMiB())
	c.Info(KeyAutoAudio, p.Audio.FormatID, p.Audio.Ext, p.AudioMiB())
	c.Info(KeyAutoTotal, p.TotalMiB())
}

// Progress redraws the progress line in place. title names what is being downloaded.
func (c *Console) Progress(title string, p model.Progress) {
	line := c.Text(KeyProgress, title, p.Percent, p.GetETAString())
	width := utf8.RuneCountInString(line)

	pad := ""
	if n := c.lastWidth - width; n > 0 {
		pad = strings.Repeat(" ", n)
	}

	fmt.Fprint(c.out, CarriageReturn+line+pad)
	c.progressShown = true
	c.lastWidth = width
}

// EndProgress terminates the progress line, if one was drawn
func (c *Console) EndProgress() {
	if !c.progressShown {
		return
	}
	fmt.Fprintln(c.out)
	c.progressShown = false
	c.lastWidth = 0
}

// ToolOutput prints one line of the tool's own output below any progress line
func (c *Console) ToolOutput(line string) {
	c.EndProgress()
	fmt.Fprintln(c.out, ToolOutputIndent+line)
}

// Resolution formats the height as "1080p", or N/A when unknown
func Resolution(v model.StreamVariant) string {
	if v.Height == nil {
		return NotAvailable
	}
	return fmt.Sprintf(ResolutionFormat, v.HeightOrZero())
}

// VideoRow formats one line of the video listing
func VideoRow(v model.StreamVariant) string {
	return fmt.Sprintf(VideoRowFormat, v.FormatID, v.Ext, Resolution(v), formats.EstimateMiB(v), v.VideoCodec())
}

// AudioRow formats one line of the audio listing
func AudioRow(a model.StreamVariant) string {
	return fmt.Sprintf(AudioRowFormat, a.FormatID, a.Ext, formats.EstimateMiB(a), a.AudioCodec())
}
