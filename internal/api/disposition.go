package api

import (
	"net/url"
	"regexp"
	"strings"
)

// DefaultFilename is used when no usable filename can be recovered from the
// response headers. A download never fails over a missing filename.
const DefaultFilename = "video.mp4"

var (
	// RFC 5987 extended form: filename*=UTF-8''x%20y.mp4. Tried first since
	// it is the unambiguous encoding for non-ASCII names.
	extendedFilenamePattern = regexp.MustCompile(`(?i)filename\*=(?:utf-8'')?([^';\r\n]+)`)
	// Plain form, quoted or bare. Inside quotes only the active delimiter
	// ends the value, so a title with an apostrophe survives intact.
	plainFilenamePattern = regexp.MustCompile(`(?i)filename=(?:"([^"\r\n]*)"|'([^'\r\n]*)'|([^'";\r\n]+))`)
)

// FilenameFromDisposition recovers the suggested filename from a
// Content-Disposition header value. The captured value may be
// percent-encoded; when decoding fails or nothing matches, DefaultFilename
// is returned.
func FilenameFromDisposition(header string) string {
	if header == "" {
		return DefaultFilename
	}

	var value string
	if m := extendedFilenamePattern.FindStringSubmatch(header); m != nil {
		value = m[1]
	} else if m := plainFilenamePattern.FindStringSubmatch(header); m != nil {
		for _, group := range m[1:] {
			if group != "" {
				value = group
				break
			}
		}
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return DefaultFilename
	}

	decoded, err := url.PathUnescape(value)
	if err != nil || strings.TrimSpace(decoded) == "" {
		return DefaultFilename
	}
	return decoded
}
