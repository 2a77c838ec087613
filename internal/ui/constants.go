package ui

// Console-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconFetch   = "📥"
	IconTitle   = "🎬"
	IconVideo   = "🎥"
	IconAudio   = "🎧"
	IconPin     = "📌"
	IconPackage = "📦"
)

// Listing limits
const (
	VideoDisplayLimit = 6
	AudioDisplayLimit = 4
)

// Text fragments
const (
	NotAvailable     = "N/A"
	ResolutionFormat = "%dp"
	VideoRowFormat   = "  %5s  %4s  %s  %.1f MiB  %s"
	AudioRowFormat   = "  %5s  %4s  %.1f MiB  %s"
	ConfirmYes       = "y"
	CarriageReturn   = "\r"
	ToolOutputIndent = "  "
)
