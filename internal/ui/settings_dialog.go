package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/mediagrab/mediagrab/internal/config"
)

// ShowSettingsDialog displays the settings dialog. Changes to the backend
// URL take effect on the next application start.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings) {
	backendEntry := widget.NewEntry()
	backendEntry.SetPlaceHolder(config.DefaultBackendURL)
	backendEntry.SetText(settings.GetBackendURL())

	downloadDirEntry := widget.NewEntry()
	downloadDirEntry.SetPlaceHolder("Download directory path")
	downloadDirEntry.SetText(settings.GetDownloadDirectory())

	browseDirBtn := widget.NewButton("Browse", func() {
		dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
			if err != nil || uri == nil {
				return
			}
			downloadDirEntry.SetText(uri.Path())
		}, window)
	})
	downloadDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, downloadDirEntry)

	form := container.NewVBox(
		widget.NewLabel("Backend URL:"),
		backendEntry,
		widget.NewLabel("Download Directory:"),
		downloadDirRow,
	)

	d := dialog.NewCustomConfirm(
		"Settings",
		"Save",
		"Cancel",
		form,
		func(confirmed bool) {
			if !confirmed {
				return
			}
			if backendEntry.Text != "" {
				settings.SetBackendURL(backendEntry.Text)
			}
			if downloadDirEntry.Text != "" {
				settings.SetDownloadDirectory(downloadDirEntry.Text)
			}
		},
		window,
	)

	d.Resize(fyne.NewSize(480, 260))
	d.Show()
}
