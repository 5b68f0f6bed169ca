package model

import "testing"

func TestPhase_IsBusy(t *testing.T) {
	tests := []struct {
		phase    Phase
		expected bool
	}{
		{PhaseIdle, false},
		{PhaseExtracting, true},
		{PhaseDownloading, true},
	}

	for _, test := range tests {
		if test.phase.IsBusy() != test.expected {
			t.Errorf("IsBusy() for %s = %v, expected %v", test.phase, test.phase.IsBusy(), test.expected)
		}
	}
}

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		url      string
		expected Platform
	}{
		{"https://www.youtube.com/watch?v=abc", PlatformYouTube},
		{"https://youtu.be/abc", PlatformYouTube},
		{"https://www.facebook.com/watch/?v=1", PlatformFacebook},
		{"https://fb.watch/xyz/", PlatformFacebook},
		{"https://www.instagram.com/reel/abc/", PlatformInstagram},
		{"https://example.com/video", PlatformUnknown},
		{"", PlatformUnknown},
	}

	for _, test := range tests {
		result := DetectPlatform(test.url)
		if result != test.expected {
			t.Errorf("DetectPlatform(%s) = %s, expected %s", test.url, result, test.expected)
		}
	}
}
