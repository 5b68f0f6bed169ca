package workflow

// Package workflow implements the session state machine that drives the
// extract -> pick format -> download flow against the backend. It owns the
// single mutable WorkflowState (phase, error slot, current catalog, selected
// format, history cache), enforces the one-in-flight discipline per phase,
// and propagates state snapshots to the UI via callback.
