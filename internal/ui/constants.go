package ui

import "github.com/mediagrab/mediagrab/internal/model"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings  = "⚙"
	IconYouTube   = "▶️"
	IconFacebook  = "📘"
	IconInstagram = "📷"
	IconUnknown   = "🎬"
)

// Text fragments
const (
	URLPlaceholder       = "Paste a YouTube, Facebook or Instagram video URL"
	ExtractButtonLabel   = "Get Video"
	DownloadButtonLabel  = "Download"
	HistoryHeading       = "Recent Downloads"
	EmptyHistoryText     = "No downloads yet"
	ExtractingStatusText = "Extracting video information..."
	DownloadingText      = "Downloading..."
)

// PlatformIcon returns the display symbol for a platform. A pure constant
// mapping; classification itself belongs to the backend.
func PlatformIcon(p model.Platform) string {
	switch p {
	case model.PlatformYouTube:
		return IconYouTube
	case model.PlatformFacebook:
		return IconFacebook
	case model.PlatformInstagram:
		return IconInstagram
	default:
		return IconUnknown
	}
}
