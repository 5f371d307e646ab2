package main

import (
	"context"
	"fmt"
	"time"

	"github.com/hulla/docugen"
	dgfs "github.com/hulla/docugen/fs"
	"github.com/hulla/docugen/fsnotify"
	"github.com/hulla/docugen/generate"
	"github.com/hulla/docugen/goquery"
	"github.com/hulla/docugen/htmltomarkdown"
	"github.com/hulla/docugen/markdown"
	"github.com/hulla/docugen/render"
	dgslog "github.com/hulla/docugen/slog"
	"golang.org/x/time/rate"
)

// Progress line settings.
const (
	progressInterval = 200 * time.Millisecond
	progressPathLen  = 60
)

// Run executes the generate command.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	g := c.generator(deps)
	opts := generate.Options{
		OutDir:     c.OutDir,
		Includes:   c.Includes,
		Excludes:   c.Excludes,
		Extensions: c.Files,
		Index:      c.Index,
	}

	if err := c.generate(deps.Ctx, deps, g, opts); err != nil && !c.Watch {
		return err
	}
	if !c.Watch {
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Watching %v for changes\n", c.Includes)
	w := &fsnotify.Watcher{
		Ignore: append([]string{c.OutDir, c.OutDir + ".tmp"}, c.Excludes...),
	}
	// Errors are printed by generate; watching continues.
	return w.Watch(deps.Ctx, c.Includes, func(ctx context.Context) {
		_ = c.generate(ctx, deps, g, opts)
	})
}

func (c *GenerateCmd) generate(ctx context.Context, deps *Dependencies, g *generate.Generator, opts generate.Options) error {
	sometimes := rate.Sometimes{Interval: progressInterval}
	progress := func(event generate.ProgressEvent) {
		switch event.Type {
		case generate.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Found %d files\n", event.Total)
		case generate.ProgressCompleted:
			sometimes.Do(func() {
				fmt.Fprintf(deps.Stdout, "  [%d/%d] %s\n", event.Completed, event.Total, generate.TruncatePath(event.Path, progressPathLen))
			})
		case generate.ProgressFailed, generate.ProgressFinished:
			// Failures are reported as warnings; the summary follows the run.
		}
	}

	result, err := g.Run(ctx, opts, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docugen.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Wrote %d pages (%d records) to %s\n", result.Pages, result.Records, c.OutDir)
	if result.Cached > 0 {
		fmt.Fprintf(deps.Stdout, "  %d files unchanged since last run\n", result.Cached)
	}
	if result.Warnings > 0 {
		fmt.Fprintf(deps.Stdout, "  %d warnings, %d files skipped\n", result.Warnings, result.Failed)
	}
	return nil
}

// generator wires the services for one output configuration.
func (c *GenerateCmd) generator(deps *Dependencies) *generate.Generator {
	logger := deps.Logger
	return &generate.Generator{
		Lister: dgslog.NewLoggingLister(dgfs.NewLister(), logger),
		Scanner: &generate.Scanner{
			Reader:      dgslog.NewLoggingReader(dgfs.NewReader(), logger),
			Cache:       deps.Cache,
			Concurrency: c.Concurrency,
			FileTimeout: c.Timeout,
		},
		Renderer: &render.Renderer{
			Adapter:   docugen.Adapter(c.Adapter),
			Format:    docugen.Format(c.Format),
			Meta:      c.Meta,
			Detector:  goquery.NewDetector(),
			Converter: htmltomarkdown.NewConverter(),
			HTML:      markdown.NewRenderer(),
		},
		Pages:    dgslog.NewLoggingPageStore(dgfs.NewPageStore(c.OutDir), logger),
		Warnings: dgslog.NewWarningReporter(logger),
		Runs:     deps.Runs,
	}
}
