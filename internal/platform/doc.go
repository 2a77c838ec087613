package platform

// Package platform contains OS integration and external tooling glue: destination
// path handling, yt-dlp invocation through go-ytdlp, and metadata parsing.
