package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Seconds is a non-negative duration in whole seconds. The backend is not
// consistent about its JSON encoding: extraction responses carry it as a
// numeric string while history records carry it as a number, so both forms
// are accepted.
type Seconds int

// UnmarshalJSON accepts a JSON number, a numeric string, or null.
func (s *Seconds) UnmarshalJSON(data []byte) error {
	str := strings.Trim(string(data), `"`)
	if str == "null" || str == "" {
		*s = 0
		return nil
	}

	// Durations occasionally arrive as floats (e.g. "123.0")
	f, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", str, err)
	}
	if f < 0 {
		f = 0
	}
	*s = Seconds(f)
	return nil
}

// FormatDuration renders a duration as m:ss with seconds zero-padded to two
// digits, e.g. 125 -> "2:05", 0 -> "0:00".
func FormatDuration(d Seconds) string {
	if d < 0 {
		d = 0
	}
	return fmt.Sprintf("%d:%02d", d/60, d%60)
}

// FormatOption describes one downloadable variant of a video
type FormatOption struct {
	FormatID    string   `json:"format_id"`
	QualityDesc string   `json:"quality_desc"`
	Ext         string   `json:"ext,omitempty"`
	SizeMB      *float64 `json:"size_mb,omitempty"`
	FormatNote  string   `json:"format_note,omitempty"`
}

// Label returns the display string for a format selector entry. The extension
// is upper-cased for display only; the stored value is left untouched.
func (f *FormatOption) Label() string {
	parts := []string{}
	if f.QualityDesc != "" {
		parts = append(parts, f.QualityDesc)
	}
	if f.Ext != "" && !strings.Contains(f.QualityDesc, strings.ToUpper(f.Ext)) {
		parts = append(parts, strings.ToUpper(f.Ext))
	}
	if f.SizeMB != nil {
		parts = append(parts, fmt.Sprintf("%.1f MB", *f.SizeMB))
	}
	if f.FormatNote != "" {
		parts = append(parts, f.FormatNote)
	}
	if len(parts) == 0 {
		return f.FormatID
	}
	return strings.Join(parts, " • ")
}

// VideoInfo is the metadata returned by one successful extraction. It is
// installed and replaced wholesale; the format order is the backend's and is
// treated as the display/selection order.
type VideoInfo struct {
	ID        string         `json:"id"`
	URL       string         `json:"url"`
	Title     string         `json:"title"`
	Platform  Platform       `json:"platform"`
	Thumbnail string         `json:"thumbnail,omitempty"`
	Duration  Seconds        `json:"duration"`
	Formats   []FormatOption `json:"formats"`
}

// FormatCount returns the number of downloadable variants
func (v *VideoInfo) FormatCount() int {
	return len(v.Formats)
}

// HasFormat reports whether id names a variant of this catalog
func (v *VideoInfo) HasFormat(id string) bool {
	for i := range v.Formats {
		if v.Formats[i].FormatID == id {
			return true
		}
	}
	return false
}

// DefaultFormatID returns the first variant's id, or "" for an empty catalog
func (v *VideoInfo) DefaultFormatID() string {
	if len(v.Formats) == 0 {
		return ""
	}
	return v.Formats[0].FormatID
}

// FormatLabels returns the display labels in catalog order
func (v *VideoInfo) FormatLabels() []string {
	labels := make([]string, 0, len(v.Formats))
	for i := range v.Formats {
		labels = append(labels, v.Formats[i].Label())
	}
	return labels
}
