package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/docgrab"
	"github.com/fwojciec/docgrab/fs"
	"github.com/fwojciec/docgrab/pipeline"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Pipeline *pipeline.Pipeline
	Writer   *fs.Writer
}

// GrabCmd handles a single search-and-grab run.
type GrabCmd struct {
	Query      string
	MaxResults int
}

// Run executes the grab command: search, fan-out fetch+extract, write.
func (c *GrabCmd) Run(deps *Dependencies) error {
	progress := func(p pipeline.ProgressEvent) {
		switch p.Type {
		case pipeline.ProgressStarted:
			if p.Total > 0 {
				fmt.Fprintf(deps.Stdout, "Processing %d articles\n", p.Total)
			}
		case pipeline.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "skip %s: %s\n", p.URL, docgrab.ErrorMessage(p.Error))
			fmt.Fprintf(deps.Stdout, "\r[%d/%d] %s", p.Completed, p.Total, pipeline.TruncateURL(p.URL, 40))
		case pipeline.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "\r[%d/%d] %s", p.Completed, p.Total, pipeline.TruncateURL(p.URL, 40))
		case pipeline.ProgressFinished:
			if p.Total > 0 {
				// Clear the progress line
				fmt.Fprintf(deps.Stdout, "\r%80s\r", "")
			}
		}
	}

	set, err := deps.Pipeline.Run(deps.Ctx, c.Query, c.MaxResults, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docgrab.ErrorMessage(err))
		return err
	}

	if len(set.Articles) == 0 {
		fmt.Fprintln(deps.Stdout, "No articles extracted")
	}

	if err := deps.Writer.WriteResultSet(deps.Ctx, set); err != nil {
		fmt.Fprintf(deps.Stderr, "error writing results: %s\n", docgrab.ErrorMessage(err))
		return err
	}

	size := "0 B"
	if info, err := os.Stat(deps.Writer.Path()); err == nil {
		size = pipeline.FormatBytes(int(info.Size()))
	}
	fmt.Fprintf(deps.Stdout, "Saved %d articles (%s) to '%s'\n", len(set.Articles), size, deps.Writer.Path())

	return nil
}
