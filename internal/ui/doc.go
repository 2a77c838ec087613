package ui

// Package ui contains the interactive terminal front end: the prompt sequence, the
// format listing and the auto-pick summary. Answers come from an InputProvider so the
// flow can be driven without a terminal, and all strings go through Localization.
