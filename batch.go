package html2pdf

import (
	"context"
	"time"
)

// Job is one export request in a batch.
type Job struct {
	Source  string
	Output  string // empty = DefaultOutput
	Options ExportOptions
}

// JobResult is the outcome of one job.
type JobResult struct {
	Success bool
	Path    string // absolute path, set on success
	Error   string // error message, set on failure
}

// BatchResult holds one JobResult per job, in job order.
type BatchResult []JobResult

// Failed returns the number of failed jobs.
func (r BatchResult) Failed() int {
	n := 0
	for _, jr := range r {
		if !jr.Success {
			n++
		}
	}
	return n
}

// ExportMultiple exports jobs one at a time, in order, each with its own
// browser session. A failing job is recorded and the batch moves on; the
// result always has len(jobs) entries.
func (e *Exporter) ExportMultiple(ctx context.Context, jobs []Job) BatchResult {
	results := make(BatchResult, len(jobs))
	start := time.Now()

	for i, job := range jobs {
		path, err := e.Export(ctx, job.Source, job.Output, job.Options)
		if err != nil {
			results[i] = JobResult{Error: err.Error()}
			e.logger.Warn("job failed", "index", i, "source", truncate(job.Source), "err", err)
			continue
		}
		results[i] = JobResult{Success: true, Path: path}
	}

	e.logger.Info("batch done",
		"jobs", len(jobs),
		"failed", results.Failed(),
		"duration", time.Since(start),
	)
	return results
}

// maxLoggedSource keeps inline HTML sources from flooding logs.
const maxLoggedSource = 80

func truncate(s string) string {
	if len(s) <= maxLoggedSource {
		return s
	}
	return s[:maxLoggedSource] + "..."
}
