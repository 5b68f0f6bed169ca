package model

import (
	"encoding/json"
	"testing"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds  Seconds
		expected string
	}{
		{0, "0:00"},
		{5, "0:05"},
		{59, "0:59"},
		{60, "1:00"},
		{125, "2:05"},
		{600, "10:00"},
		{3661, "61:01"},
	}

	for _, test := range tests {
		result := FormatDuration(test.seconds)
		if result != test.expected {
			t.Errorf("FormatDuration(%d) = %s, expected %s", test.seconds, result, test.expected)
		}
	}
}

func TestSeconds_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		input    string
		expected Seconds
		wantErr  bool
	}{
		{`123`, 123, false},
		{`"123"`, 123, false},
		{`"123.0"`, 123, false},
		{`0`, 0, false},
		{`null`, 0, false},
		{`""`, 0, false},
		{`"abc"`, 0, true},
	}

	for _, test := range tests {
		var s Seconds
		err := json.Unmarshal([]byte(test.input), &s)
		if test.wantErr {
			if err == nil {
				t.Errorf("Unmarshal(%s): expected error, got nil", test.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("Unmarshal(%s): unexpected error: %v", test.input, err)
			continue
		}
		if s != test.expected {
			t.Errorf("Unmarshal(%s) = %d, expected %d", test.input, s, test.expected)
		}
	}
}

func TestVideoInfo_CatalogAccessors(t *testing.T) {
	info := &VideoInfo{
		Title: "Test Video",
		Formats: []FormatOption{
			{FormatID: "137", QualityDesc: "1080p"},
			{FormatID: "22", QualityDesc: "720p"},
		},
	}

	if info.FormatCount() != 2 {
		t.Errorf("Expected FormatCount 2, got %d", info.FormatCount())
	}

	if !info.HasFormat("22") {
		t.Error("Expected HasFormat(\"22\") to be true")
	}

	if info.HasFormat("18") {
		t.Error("Expected HasFormat(\"18\") to be false")
	}

	if info.DefaultFormatID() != "137" {
		t.Errorf("Expected default format '137', got '%s'", info.DefaultFormatID())
	}
}

func TestVideoInfo_EmptyCatalog(t *testing.T) {
	info := &VideoInfo{Title: "No Formats"}

	if info.FormatCount() != 0 {
		t.Errorf("Expected FormatCount 0, got %d", info.FormatCount())
	}

	if info.DefaultFormatID() != "" {
		t.Errorf("Expected empty default format, got '%s'", info.DefaultFormatID())
	}

	if info.HasFormat("") {
		t.Error("Expected HasFormat(\"\") to be false for empty catalog")
	}
}

func TestVideoInfo_UnmarshalBackendResponse(t *testing.T) {
	// Shape returned by POST /api/extract-info: duration arrives as a string.
	payload := `{
		"id": "abc-123",
		"url": "https://youtube.com/watch?v=test",
		"title": "Test Video",
		"platform": "YouTube",
		"thumbnail": "https://img.example/t.jpg",
		"duration": "125",
		"formats": [
			{"format_id": "22", "quality_desc": "720p • 30fps • MP4", "ext": "mp4", "size_mb": 10.5},
			{"format_id": "18", "quality_desc": "360p • MP4", "ext": "mp4"}
		]
	}`

	var info VideoInfo
	if err := json.Unmarshal([]byte(payload), &info); err != nil {
		t.Fatalf("Unexpected unmarshal error: %v", err)
	}

	if info.Title != "Test Video" {
		t.Errorf("Expected title 'Test Video', got '%s'", info.Title)
	}
	if info.Platform != PlatformYouTube {
		t.Errorf("Expected platform YouTube, got %s", info.Platform)
	}
	if info.Duration != 125 {
		t.Errorf("Expected duration 125, got %d", info.Duration)
	}
	if info.FormatCount() != 2 {
		t.Fatalf("Expected 2 formats, got %d", info.FormatCount())
	}
	if info.Formats[0].SizeMB == nil || *info.Formats[0].SizeMB != 10.5 {
		t.Error("Expected first format size_mb 10.5")
	}
}

func TestFormatOption_Label(t *testing.T) {
	size := 10.5
	tests := []struct {
		name     string
		format   FormatOption
		expected string
	}{
		{
			name:     "quality with size",
			format:   FormatOption{FormatID: "22", QualityDesc: "720p • 30fps • MP4", Ext: "mp4", SizeMB: &size},
			expected: "720p • 30fps • MP4 • 10.5 MB",
		},
		{
			name:     "quality without extension in desc",
			format:   FormatOption{FormatID: "22", QualityDesc: "720p", Ext: "webm"},
			expected: "720p • WEBM",
		},
		{
			name:     "note only",
			format:   FormatOption{FormatID: "22", FormatNote: "premium"},
			expected: "premium",
		},
		{
			name:     "bare id fallback",
			format:   FormatOption{FormatID: "22"},
			expected: "22",
		},
	}

	for _, test := range tests {
		result := test.format.Label()
		if result != test.expected {
			t.Errorf("%s: Label() = '%s', expected '%s'", test.name, result, test.expected)
		}
	}
}
