package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"github.com/mediagrab/mediagrab/internal/api"
	"github.com/mediagrab/mediagrab/internal/config"
	"github.com/mediagrab/mediagrab/internal/model"
	"github.com/mediagrab/mediagrab/internal/workflow"
)

func main() {
	app := &cli.App{
		Name:  "mediagrab",
		Usage: "download videos through a media-extraction backend",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to a YAML config file",
			},
			&cli.StringFlag{
				Name:  "backend",
				Usage: "backend base URL (overrides config)",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "extract",
				Usage:     "fetch metadata and list downloadable formats",
				ArgsUsage: "URL",
				Action:    runExtract,
			},
			{
				Name:      "download",
				Usage:     "download a video to the output directory",
				ArgsUsage: "URL",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "format id (backend default quality when omitted)",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "output directory (overrides config)",
					},
				},
				Action: runDownload,
			},
			{
				Name:   "history",
				Usage:  "list the backend's recent downloads",
				Action: runHistory,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// newSession builds a workflow session from config file, env, and flags.
func newSession(c *cli.Context) (*workflow.Session, error) {
	cfg, err := config.LoadFileConfig(c.String("config"))
	if err != nil {
		return nil, err
	}
	if backend := c.String("backend"); backend != "" {
		cfg.BackendURL = backend
	}
	if output := c.String("output"); output != "" {
		cfg.OutputDir = output
	}

	client := api.NewClient(cfg.BackendURL, api.Options{Timeout: cfg.Timeout})
	return workflow.NewSession(client, workflow.DirSaver{Dir: cfg.OutputDir}), nil
}

func requireURL(c *cli.Context) (string, error) {
	url := c.Args().First()
	if url == "" {
		return "", cli.Exit("a video URL argument is required", 2)
	}
	return url, nil
}

// sessionErr prefers the operator-facing message from the session's error
// slot over the raw error.
func sessionErr(session *workflow.Session, err error) error {
	if msg := session.State().ErrorMessage; msg != "" {
		return errors.New(msg)
	}
	return err
}

func runExtract(c *cli.Context) error {
	url, err := requireURL(c)
	if err != nil {
		return err
	}
	session, err := newSession(c)
	if err != nil {
		return err
	}

	info, err := session.Extract(context.Background(), url)
	if err != nil {
		return sessionErr(session, err)
	}

	fmt.Printf("%s [%s] %s\n", info.Title, info.Platform, model.FormatDuration(info.Duration))

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FORMAT\tQUALITY")
	for i := range info.Formats {
		fmt.Fprintf(w, "%s\t%s\n", info.Formats[i].FormatID, info.Formats[i].Label())
	}
	return w.Flush()
}

func runDownload(c *cli.Context) error {
	url, err := requireURL(c)
	if err != nil {
		return err
	}
	session, err := newSession(c)
	if err != nil {
		return err
	}

	// An explicit format is validated against a fresh catalog before the
	// download request is sent.
	if formatID := c.String("format"); formatID != "" {
		if _, err := session.Extract(context.Background(), url); err != nil {
			return sessionErr(session, err)
		}
		if err := session.SelectFormat(formatID); err != nil {
			return fmt.Errorf("format %q is not offered for this video", formatID)
		}
	}

	path, err := session.Download(context.Background(), url)
	if err != nil {
		return sessionErr(session, err)
	}

	fmt.Printf("Saved to %s\n", path)
	return nil
}

func runHistory(c *cli.Context) error {
	session, err := newSession(c)
	if err != nil {
		return err
	}

	if err := session.RefreshHistory(context.Background()); err != nil {
		return fmt.Errorf("failed to fetch download history: %w", err)
	}

	records := session.State().Recent
	if len(records) == 0 {
		fmt.Println("No downloads yet")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PLATFORM\tDURATION\tTITLE")
	for i := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			records[i].Platform, model.FormatDuration(records[i].Duration), records[i].DisplayTitle())
	}
	return w.Flush()
}
