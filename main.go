package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/mediagrab/mediagrab/internal/api"
	"github.com/mediagrab/mediagrab/internal/config"
	"github.com/mediagrab/mediagrab/internal/platform"
	"github.com/mediagrab/mediagrab/internal/ui"
	"github.com/mediagrab/mediagrab/internal/workflow"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.mediagrab.mediagrab"
	AppName = "MediaGrab"

	WindowWidth  = 700
	WindowHeight = 560
)

func main() {
	fmt.Printf("MediaGrab v%s starting...\n", version)

	myApp := app.NewWithID(AppID)

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	downloadsDir := settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(downloadsDir); err != nil {
		fmt.Printf("failed to ensure downloads dir: %v\n", err)
	}

	backend := api.NewClient(settings.GetBackendURL(), api.DefaultOptions())
	session := workflow.NewSession(backend, workflow.DirSaver{Dir: downloadsDir})

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, session)

	// Show and run
	myWindow.ShowAndRun()
}
