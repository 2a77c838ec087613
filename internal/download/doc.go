package download

// Package download drives yt-dlp for the two steps of a run: fetching the metadata
// document for a URL and executing the chosen download request.
