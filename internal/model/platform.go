package model

import "strings"

// Platform identifies the source site of a video
type Platform string

const (
	PlatformYouTube   Platform = "YouTube"
	PlatformFacebook  Platform = "Facebook"
	PlatformInstagram Platform = "Instagram"
	PlatformUnknown   Platform = "Unknown"
)

// String returns the string representation of Platform
func (p Platform) String() string {
	return string(p)
}

// DetectPlatform classifies a URL by its host as a best-effort display hint
// before extraction completes. The backend's classification in VideoInfo is
// authoritative once metadata has been returned.
func DetectPlatform(url string) Platform {
	lower := strings.ToLower(url)
	switch {
	case strings.Contains(lower, "youtube.com"), strings.Contains(lower, "youtu.be"):
		return PlatformYouTube
	case strings.Contains(lower, "facebook.com"), strings.Contains(lower, "fb.watch"):
		return PlatformFacebook
	case strings.Contains(lower, "instagram.com"):
		return PlatformInstagram
	default:
		return PlatformUnknown
	}
}
