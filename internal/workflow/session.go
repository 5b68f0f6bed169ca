package workflow

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"sync"

	"github.com/mediagrab/mediagrab/internal/api"
	"github.com/mediagrab/mediagrab/internal/model"
	"github.com/mediagrab/mediagrab/internal/platform"
)

// Validation and phase-exclusion errors. These are caught before any network
// call is made.
var (
	ErrEmptyURL           = errors.New("workflow: URL is empty")
	ErrNoFormatSelected   = errors.New("workflow: no format selected")
	ErrUnknownFormat      = errors.New("workflow: format not in current catalog")
	ErrExtractionInFlight = errors.New("workflow: extraction already in progress")
	ErrDownloadInFlight   = errors.New("workflow: download already in progress")
)

// Operator-facing error messages for the shared error slot
const (
	MsgEmptyURL         = "Please enter a video URL"
	MsgNoFormatSelected = "Please select a format"
	MsgExtractFailed    = "Failed to extract video information"
	MsgDownloadFailed   = "Failed to download video"
	MsgSaveFailed       = "Failed to save video to disk"
	MsgNetworkError     = "Network error. Please check your connection and try again."
)

// Backend is the remote collaborator contract the session depends on,
// satisfied by *api.Client and faked in tests.
type Backend interface {
	ExtractInfo(ctx context.Context, url string) (*model.VideoInfo, error)
	StartDownload(ctx context.Context, url, formatID string) (*api.DownloadResult, error)
	RecentDownloads(ctx context.Context) ([]model.DownloadRecord, error)
}

// Saver persists one download payload and returns the final local path.
type Saver interface {
	Save(filename string, r io.Reader) (string, error)
}

// DirSaver saves payloads into a fixed directory via the platform temp-file
// procedure.
type DirSaver struct {
	Dir string
}

// Save implements Saver
func (d DirSaver) Save(filename string, r io.Reader) (string, error) {
	return platform.SaveStream(d.Dir, filename, r)
}

// State is a read-only snapshot of the session's workflow state, handed to
// the presentation layer on every change.
type State struct {
	Phase            model.Phase
	ErrorMessage     string
	Video            *model.VideoInfo
	SelectedFormatID string
	Recent           []model.DownloadRecord
}

// CanDownload reports whether the download action should be enabled: not
// already downloading, and once a catalog exists a selection is required.
// Before any extraction the format is optional and the backend picks its
// default quality.
func (s State) CanDownload() bool {
	if s.Phase == model.PhaseDownloading {
		return false
	}
	if s.Video != nil && s.SelectedFormatID == "" {
		return false
	}
	return true
}

// Session owns the workflow state for one operator session. All mutation
// goes through Extract, Download, SelectFormat and RefreshHistory; the UI
// only ever sees snapshots.
type Session struct {
	backend Backend
	saver   Saver

	mu             sync.Mutex
	phase          model.Phase
	errMsg         string
	video          *model.VideoInfo
	selectedFormat string
	recent         []model.DownloadRecord
	onChange       func(State)
}

// NewSession creates a session in the idle phase.
func NewSession(backend Backend, saver Saver) *Session {
	return &Session{
		backend: backend,
		saver:   saver,
		phase:   model.PhaseIdle,
	}
}

// SetUpdateCallback sets the callback invoked with a fresh snapshot after
// every state change. The callback runs outside the session lock.
func (s *Session) SetUpdateCallback(callback func(State)) {
	s.mu.Lock()
	s.onChange = callback
	s.mu.Unlock()
}

// State returns a snapshot of the current workflow state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() State {
	recent := make([]model.DownloadRecord, len(s.recent))
	copy(recent, s.recent)
	return State{
		Phase:            s.phase,
		ErrorMessage:     s.errMsg,
		Video:            s.video,
		SelectedFormatID: s.selectedFormat,
		Recent:           recent,
	}
}

// notify hands st to the update callback, if one is set.
func (s *Session) notify(st State) {
	s.mu.Lock()
	callback := s.onChange
	s.mu.Unlock()
	if callback != nil {
		callback(st)
	}
}

// Extract runs the metadata extraction phase for url. On success the new
// catalog replaces any previous one wholesale and the first format becomes
// the selection. The phase always returns to idle.
func (s *Session) Extract(ctx context.Context, url string) (*model.VideoInfo, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		s.failValidation(MsgEmptyURL)
		return nil, ErrEmptyURL
	}

	s.mu.Lock()
	if s.phase == model.PhaseExtracting {
		s.mu.Unlock()
		return nil, ErrExtractionInFlight
	}
	s.phase = model.PhaseExtracting
	s.errMsg = ""
	s.video = nil
	s.selectedFormat = ""
	st := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(st)

	info, err := s.backend.ExtractInfo(ctx, url)

	s.mu.Lock()
	s.phase = model.PhaseIdle
	if err != nil {
		s.errMsg = operatorMessage(err, MsgExtractFailed)
	} else {
		s.video = info
		s.selectedFormat = info.DefaultFormatID()
	}
	st = s.snapshotLocked()
	s.mu.Unlock()
	s.notify(st)

	if err != nil {
		return nil, err
	}
	return info, nil
}

// SelectFormat changes the selected format. The id must name a variant of
// the current catalog. Re-selecting the current format is a no-op and does
// not notify, so a UI that re-applies the selection while rendering a
// snapshot cannot feed a new snapshot back into itself.
func (s *Session) SelectFormat(id string) error {
	s.mu.Lock()
	if s.video == nil || !s.video.HasFormat(id) {
		s.mu.Unlock()
		return ErrUnknownFormat
	}
	if id == s.selectedFormat {
		s.mu.Unlock()
		return nil
	}
	s.selectedFormat = id
	st := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(st)
	return nil
}

// Download runs the download phase for url using the current selection. The
// selection is optional until a non-empty catalog exists, then required. On
// success the payload is saved locally and a history refresh is triggered in
// the background; refresh failures never fail the download. A failed
// download leaves the current catalog and selection untouched.
func (s *Session) Download(ctx context.Context, url string) (string, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		s.failValidation(MsgEmptyURL)
		return "", ErrEmptyURL
	}

	s.mu.Lock()
	if s.phase == model.PhaseDownloading {
		s.mu.Unlock()
		return "", ErrDownloadInFlight
	}
	formatID := s.selectedFormat
	if s.video != nil {
		if formatID == "" {
			s.errMsg = MsgNoFormatSelected
			st := s.snapshotLocked()
			s.mu.Unlock()
			s.notify(st)
			return "", ErrNoFormatSelected
		}
		if !s.video.HasFormat(formatID) {
			s.mu.Unlock()
			return "", ErrUnknownFormat
		}
	}
	s.phase = model.PhaseDownloading
	s.errMsg = ""
	st := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(st)

	path, err := s.runDownload(ctx, url, formatID)

	s.mu.Lock()
	s.phase = model.PhaseIdle
	if err != nil {
		s.errMsg = operatorMessage(err, MsgDownloadFailed)
	}
	st = s.snapshotLocked()
	s.mu.Unlock()
	s.notify(st)

	if err != nil {
		return "", err
	}

	// History refresh is a side effect of a completed download, never part
	// of its outcome.
	go func() {
		if refreshErr := s.RefreshHistory(context.Background()); refreshErr != nil {
			log.Printf("history refresh after download failed: %v", refreshErr)
		}
	}()

	return path, nil
}

// runDownload performs the network call and the local save. The response
// body is closed on every path.
func (s *Session) runDownload(ctx context.Context, url, formatID string) (string, error) {
	result, err := s.backend.StartDownload(ctx, url, formatID)
	if err != nil {
		return "", err
	}
	defer result.Body.Close()

	path, err := s.saver.Save(result.Filename, result.Body)
	if err != nil {
		return "", saveError{err}
	}
	if result.Size >= 0 {
		log.Printf("saved download to %s (%d bytes advertised)", path, result.Size)
	} else {
		log.Printf("saved download to %s", path)
	}
	return path, nil
}

// RefreshHistory fetches the recent-downloads list. On success the cached
// list is replaced wholesale; on failure the previous list is retained and
// the error is only logged by callers that treat it as soft.
func (s *Session) RefreshHistory(ctx context.Context) error {
	records, err := s.backend.RecentDownloads(ctx)
	if err != nil {
		log.Printf("failed to refresh download history: %v", err)
		return err
	}

	s.mu.Lock()
	s.recent = records
	st := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(st)
	return nil
}

// failValidation records a pre-network validation failure in the error slot.
func (s *Session) failValidation(msg string) {
	s.mu.Lock()
	s.errMsg = msg
	st := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(st)
}

// saveError marks a failure in the local save step so it is not mistaken for
// a transport failure.
type saveError struct {
	err error
}

func (e saveError) Error() string { return e.err.Error() }
func (e saveError) Unwrap() error { return e.err }

// operatorMessage maps an operation error onto the operator-facing message
// for the shared error slot: the backend's detail string when present, the
// operation's generic message for other completed-but-failed calls, and the
// network message for transport failures.
func operatorMessage(err error, generic string) string {
	if detail, ok := api.BackendDetail(err); ok {
		return detail
	}
	if api.IsStatusError(err) {
		return generic
	}
	var se saveError
	if errors.As(err, &se) {
		return MsgSaveFailed
	}
	return MsgNetworkError
}
