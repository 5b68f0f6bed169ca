package model

// Package model defines domain data structures used across the app: video
// metadata with its format catalog, download history records, and workflow
// phase enums. Structures are designed for direct binding in the UI and
// explicit state transitions.
