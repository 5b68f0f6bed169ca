package api

// Package api implements the HTTP client for the media-extraction backend:
// metadata extraction, download streaming with filename recovery from the
// Content-Disposition header, and the recent-downloads history feed.
