package ui

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/mediagrab/mediagrab/internal/config"
	"github.com/mediagrab/mediagrab/internal/model"
	"github.com/mediagrab/mediagrab/internal/workflow"
)

// RootUI represents the main UI structure
type RootUI struct {
	window   fyne.Window
	session  *workflow.Session
	settings *config.Settings

	urlEntry     *widget.Entry
	platformHint *widget.Label
	extractBtn   *widget.Button
	downloadBtn  *widget.Button

	// Notification row under the URL input
	statusLabel     *widget.Label
	statusSpinner   *widget.ProgressBarInfinite
	statusContainer *fyne.Container

	errorLabel *widget.Label

	// Extraction result card
	titleLabel   *widget.Label
	metaLabel    *widget.Label
	formatSelect *widget.Select
	formatCount  *widget.Label
	infoCard     *fyne.Container

	// History panel; recent is the UI's copy for the list callbacks
	historyList  *widget.List
	historyEmpty *widget.Label
	recent       []model.DownloadRecord

	// Maps the selector index back to a format id
	formatIDs []string
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, session *workflow.Session) *RootUI {
	ui := &RootUI{
		window:   window,
		session:  session,
		settings: config.NewSettings(app),
	}

	session.SetUpdateCallback(ui.onStateChange)

	ui.setupUI()
	ui.applyState(session.State())

	// Populate the history panel once at session start; a failure here is
	// soft and only logged by the session.
	go session.RefreshHistory(context.Background())

	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// URL row
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(URLPlaceholder)
	ui.urlEntry.Validator = ui.validateURL
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onExtractClick()
	}
	// Best-effort platform hint while typing; the backend's classification
	// replaces it once metadata arrives
	ui.platformHint = widget.NewLabel(IconUnknown)
	ui.urlEntry.OnChanged = func(text string) {
		ui.platformHint.SetText(PlatformIcon(model.DetectPlatform(text)))
	}

	ui.extractBtn = widget.NewButton(ExtractButtonLabel, ui.onExtractClick)
	ui.extractBtn.Importance = widget.HighImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	topPanel := container.NewBorder(nil, nil,
		container.NewHBox(settingsBtn, ui.platformHint), ui.extractBtn, ui.urlEntry)

	// Status row (spinner + phase text), hidden while idle
	ui.statusLabel = widget.NewLabel("")
	ui.statusSpinner = widget.NewProgressBarInfinite()
	ui.statusContainer = container.NewHBox(ui.statusSpinner, ui.statusLabel)
	ui.statusContainer.Hide()

	// Shared error slot
	ui.errorLabel = widget.NewLabel("")
	ui.errorLabel.Importance = widget.DangerImportance
	ui.errorLabel.Wrapping = fyne.TextWrapWord
	ui.errorLabel.Hide()

	// Extraction result card
	ui.titleLabel = widget.NewLabel("")
	ui.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	ui.titleLabel.Wrapping = fyne.TextWrapWord

	ui.metaLabel = widget.NewLabel("")

	ui.formatSelect = widget.NewSelect(nil, ui.onFormatSelected)
	ui.formatSelect.PlaceHolder = "Select a format"

	ui.formatCount = widget.NewLabel("")

	ui.downloadBtn = widget.NewButton(DownloadButtonLabel, ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance

	ui.infoCard = container.NewVBox(
		ui.titleLabel,
		ui.metaLabel,
		container.NewBorder(nil, nil, nil, ui.formatCount, ui.formatSelect),
		ui.downloadBtn,
	)
	ui.infoCard.Hide()

	// History panel
	ui.historyList = widget.NewList(
		func() int { return len(ui.recent) },
		func() fyne.CanvasObject { return ui.createHistoryItem() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateHistoryItem(id, obj) },
	)

	ui.historyEmpty = widget.NewLabel(EmptyHistoryText)
	ui.historyEmpty.Importance = widget.LowImportance

	historyPanel := container.NewBorder(
		container.NewVBox(
			widget.NewLabelWithStyle(HistoryHeading, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			ui.historyEmpty,
		),
		nil, nil, nil,
		ui.historyList,
	)

	top := container.NewVBox(topPanel, ui.statusContainer, ui.errorLabel, ui.infoCard)

	content := container.NewBorder(top, nil, nil, nil, historyPanel)
	ui.window.SetContent(content)
}

// validateURL validates the entered URL
func (ui *RootUI) validateURL(input string) error {
	if strings.TrimSpace(input) == "" {
		return nil // Empty is allowed
	}

	parsedURL, err := url.Parse(input)
	if err != nil {
		return err
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("URL must start with http:// or https://")
	}

	return nil
}

// onExtractClick handles the extract button click
func (ui *RootUI) onExtractClick() {
	urlText := strings.TrimSpace(ui.urlEntry.Text)

	go func() {
		if _, err := ui.session.Extract(context.Background(), urlText); err != nil {
			log.Printf("extraction failed: %v", err)
		}
	}()
}

// onDownloadClick handles the download button click
func (ui *RootUI) onDownloadClick() {
	urlText := strings.TrimSpace(ui.urlEntry.Text)

	go func() {
		path, err := ui.session.Download(context.Background(), urlText)
		if err != nil {
			log.Printf("download failed: %v", err)
			return
		}
		fyne.Do(func() {
			widget.ShowPopUp(widget.NewLabel("Saved to "+path), ui.window.Canvas())
		})
	}()
}

// onFormatSelected maps the selector index back to a format id
func (ui *RootUI) onFormatSelected(string) {
	idx := ui.formatSelect.SelectedIndex()
	if idx < 0 || idx >= len(ui.formatIDs) {
		return
	}
	if err := ui.session.SelectFormat(ui.formatIDs[idx]); err != nil {
		log.Printf("format selection rejected: %v", err)
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings)
}

// onStateChange receives session snapshots; rendering happens on the Fyne
// thread.
func (ui *RootUI) onStateChange(st workflow.State) {
	fyne.Do(func() {
		ui.applyState(st)
	})
}

// applyState renders one workflow state snapshot. All enable/disable
// decisions live here so the triggering controls always reflect the phase.
func (ui *RootUI) applyState(st workflow.State) {
	// Extraction control is disabled only while its own phase is active
	if st.Phase == model.PhaseExtracting {
		ui.extractBtn.Disable()
	} else {
		ui.extractBtn.Enable()
	}

	if st.CanDownload() {
		ui.downloadBtn.Enable()
	} else {
		ui.downloadBtn.Disable()
	}

	switch st.Phase {
	case model.PhaseExtracting:
		ui.statusLabel.SetText(ExtractingStatusText)
		ui.statusContainer.Show()
	case model.PhaseDownloading:
		ui.statusLabel.SetText(DownloadingText)
		ui.statusContainer.Show()
	default:
		ui.statusContainer.Hide()
	}

	if st.ErrorMessage != "" {
		ui.errorLabel.SetText(st.ErrorMessage)
		ui.errorLabel.Show()
	} else {
		ui.errorLabel.Hide()
	}

	ui.renderVideo(st)

	ui.recent = st.Recent
	if len(ui.recent) == 0 {
		ui.historyEmpty.Show()
	} else {
		ui.historyEmpty.Hide()
	}
	ui.historyList.Refresh()
}

// renderVideo fills the extraction result card from the snapshot
func (ui *RootUI) renderVideo(st workflow.State) {
	video := st.Video
	if video == nil {
		ui.infoCard.Hide()
		ui.formatIDs = nil
		return
	}

	ui.titleLabel.SetText(video.Title)
	ui.metaLabel.SetText(fmt.Sprintf("%s %s · %s",
		PlatformIcon(video.Platform), video.Platform, model.FormatDuration(video.Duration)))

	ui.formatIDs = make([]string, 0, video.FormatCount())
	for i := range video.Formats {
		ui.formatIDs = append(ui.formatIDs, video.Formats[i].FormatID)
	}
	ui.formatSelect.Options = video.FormatLabels()
	ui.formatCount.SetText(fmt.Sprintf("%d formats", video.FormatCount()))

	selectedIdx := -1
	for i, id := range ui.formatIDs {
		if id == st.SelectedFormatID {
			selectedIdx = i
			break
		}
	}
	// SetSelectedIndex fires OnChanged even for an unchanged value, which
	// would loop the render back through the session
	if selectedIdx >= 0 {
		if ui.formatSelect.SelectedIndex() != selectedIdx {
			ui.formatSelect.SetSelectedIndex(selectedIdx)
		}
	} else if ui.formatSelect.SelectedIndex() >= 0 {
		ui.formatSelect.ClearSelected()
	}

	ui.infoCard.Show()
}

// createHistoryItem builds the template row for the history list
func (ui *RootUI) createHistoryItem() fyne.CanvasObject {
	icon := widget.NewLabel(IconUnknown)
	title := widget.NewLabel("")
	title.Truncation = fyne.TextTruncateEllipsis
	duration := widget.NewLabel("")
	return container.NewBorder(nil, nil, icon, duration, title)
}

// updateHistoryItem fills one history row from the cached records
func (ui *RootUI) updateHistoryItem(id widget.ListItemID, obj fyne.CanvasObject) {
	if id >= len(ui.recent) {
		return
	}
	record := ui.recent[id]

	// Border containers list the center objects first, then the edges in
	// top, bottom, left, right order
	row := obj.(*fyne.Container)
	title := row.Objects[0].(*widget.Label)
	icon := row.Objects[1].(*widget.Label)
	duration := row.Objects[2].(*widget.Label)

	icon.SetText(PlatformIcon(record.Platform))
	title.SetText(record.DisplayTitle())
	duration.SetText(model.FormatDuration(record.Duration))
}
