package ui

// Package ui contains the Fyne-based desktop user interface. It wires user
// interactions to the workflow session and renders the extraction result,
// format selector, and recent-downloads history. The session is the single
// source of truth; the UI only applies state snapshots it receives.
