package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/hulla/docugen"
)

// Run executes the runs command.
func (c *RunsCmd) Run(deps *Dependencies) error {
	if deps.Runs == nil {
		err := docugen.Errorf(docugen.EINVALID, "run history requires --cache")
		fmt.Fprintf(deps.Stderr, "error: %s\n", docugen.ErrorMessage(err))
		return err
	}

	filter := docugen.RunFilter{Limit: c.Limit}
	if c.OutDir != "" {
		filter.OutDir = &c.OutDir
	}

	runs, err := deps.Runs.FindRuns(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docugen.ErrorMessage(err))
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No runs recorded yet. Generate with --cache to record runs.")
		return nil
	}

	w := tabwriter.NewWriter(deps.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STARTED\tOUT DIR\tFILES\tPAGES\tRECORDS\tWARNINGS\tCACHED\tDURATION")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\t%d\t%s\n",
			run.StartedAt.Local().Format(time.DateTime),
			run.OutDir, run.Files, run.Pages, run.Records, run.Warnings, run.Cached,
			run.Duration.Round(time.Millisecond))
	}
	return w.Flush()
}
