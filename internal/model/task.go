package model

import (
	"fmt"
	"strings"
	"time"
)

// Job is a single yt-dlp download invocation built from a DownloadRequest
type Job struct {
	URL         string
	Format      string         // format expression passed to -f
	MergeFormat string         // container for merged output, empty when nothing is merged
	Dir         string         // destination directory passed to -P
	OnProgress  func(Progress) // optional progress callback
	OnOutput    func(string)   // optional sink for the tool's own output lines
}

// Progress is a snapshot of a running download
type Progress struct {
	DownloadedBytes int64
	TotalBytes      int64
	Percent         float64       // 0 to 100, 0 when the total is unknown
	ETA             time.Duration // 0 if unknown
	Title           string        // video title if the tool reported it
}

// Args returns the yt-dlp arguments for the job, URL last
func (j Job) Args() []string {
	args := []string{"-f", j.Format}
	if j.MergeFormat != "" {
		args = append(args, "--merge-output-format", j.MergeFormat)
	}
	args = append(args, "-P", j.Dir, j.URL)
	return args
}

// IsMerge returns true if the job combines two formats
func (j Job) IsMerge() bool {
	return strings.Contains(j.Format, "+")
}

// GetETAString returns ETA formatted as hh:mm:ss, or "—" if unknown
func (p Progress) GetETAString() string {
	etaSec := int(p.ETA.Seconds())
	if etaSec <= 0 {
		return "—"
	}

	hours := etaSec / 3600
	minutes := (etaSec % 3600) / 60
	seconds := etaSec % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// GetDisplayTitle returns the title, or the URL when the title is unknown
func (p Progress) GetDisplayTitle(url string) string {
	if p.Title != "" && !strings.HasPrefix(p.Title, "http") {
		return p.Title
	}
	return url
}
