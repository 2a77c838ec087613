package model

// Package model defines the domain data structures shared across the app: stream
// variants parsed from yt-dlp metadata, the user's selection, the four-case download
// request, tool jobs and the terminal status of a run.
