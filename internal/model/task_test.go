package model

import (
	"reflect"
	"testing"
	"time"
)

func TestProgress_GetETAString(t *testing.T) {
	tests := []struct {
		etaSec   int
		expected string
	}{
		{-1, "—"},
		{0, "—"},
		{30, "00:30"},
		{90, "01:30"},
		{3600, "01:00:00"},
		{3661, "01:01:01"},
		{7323, "02:02:03"},
	}

	for _, test := range tests {
		p := Progress{ETA: time.Duration(test.etaSec) * time.Second}
		result := p.GetETAString()
		if result != test.expected {
			t.Errorf("GetETAString() with ETA=%ds = %s, expected %s", test.etaSec, result, test.expected)
		}
	}
}

func TestProgress_GetDisplayTitle(t *testing.T) {
	tests := []struct {
		title    string
		url      string
		expected string
	}{
		{"Video Title", "https://youtube.com/watch?v=123", "Video Title"},
		{"", "https://youtube.com/watch?v=123", "https://youtube.com/watch?v=123"},
		{"https://youtube.com/watch?v=456", "https://youtube.com/watch?v=456", "https://youtube.com/watch?v=456"},
	}

	for _, test := range tests {
		p := Progress{Title: test.title}
		result := p.GetDisplayTitle(test.url)
		if result != test.expected {
			t.Errorf("GetDisplayTitle() with Title=%q = %q, expected %q", test.title, result, test.expected)
		}
	}
}

func TestJob_Args(t *testing.T) {
	tests := []struct {
		name     string
		job      Job
		expected []string
	}{
		{
			name:     "merged download",
			job:      Job{URL: "https://youtu.be/x", Format: "137+140", MergeFormat: "mp4", Dir: "/tmp/out"},
			expected: []string{"-f", "137+140", "--merge-output-format", "mp4", "-P", "/tmp/out", "https://youtu.be/x"},
		},
		{
			name:     "single format",
			job:      Job{URL: "https://youtu.be/x", Format: "140", Dir: "/tmp/out"},
			expected: []string{"-f", "140", "-P", "/tmp/out", "https://youtu.be/x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.job.Args(); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Args() = %v, expected %v", got, tt.expected)
			}
			if tt.job.IsMerge() != (tt.job.MergeFormat != "") {
				t.Errorf("IsMerge() = %v for format %q", tt.job.IsMerge(), tt.job.Format)
			}
		})
	}
}
