package platform

// Package platform contains OS/filesystem integration: download directory
// lookup, filename sanitization, and the temp-file save procedure that
// persists a streamed payload under its final name.
