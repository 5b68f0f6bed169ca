package config

import (
	"fyne.io/fyne/v2"

	"github.com/mediagrab/mediagrab/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyBackendURL  = "backend_url"
	KeyDownloadDir = "download_directory"
)

// Default values
const (
	DefaultBackendURL = "http://localhost:8001"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetBackendURL returns the configured backend base URL
func (s *Settings) GetBackendURL() string {
	url := s.app.Preferences().String(KeyBackendURL)
	if url == "" {
		s.SetBackendURL(DefaultBackendURL)
		return DefaultBackendURL
	}
	return url
}

// SetBackendURL sets the backend base URL
func (s *Settings) SetBackendURL(url string) {
	s.app.Preferences().SetString(KeyBackendURL, url)
}

// GetDownloadDirectory returns the configured download directory
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		// Use system default Downloads directory
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = "/tmp/downloads"
		}
		s.SetDownloadDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}
