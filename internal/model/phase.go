package model

// Phase represents the current stage of the session workflow
type Phase string

const (
	// PhaseIdle means no network operation is in flight
	PhaseIdle Phase = "Idle"

	// PhaseExtracting means a metadata extraction is in flight
	PhaseExtracting Phase = "Extracting"

	// PhaseDownloading means a download is in flight
	PhaseDownloading Phase = "Downloading"
)

// String returns the string representation of Phase
func (p Phase) String() string {
	return string(p)
}

// IsBusy returns true if a network operation is in flight
func (p Phase) IsBusy() bool {
	return p == PhaseExtracting || p == PhaseDownloading
}
