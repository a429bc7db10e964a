// Package driver orchestrates pipeline runs over many files for the CLI.
package driver

import (
	"context"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"loupe/internal/diag"
	"loupe/internal/pipeline"
)

// Stage identifies the coarse phase a file is in.
type Stage uint8

const (
	StageParse Stage = iota
	StageAnalyze
	StageLint
)

// Status is the lifecycle of one file within a check.
type Status uint8

const (
	StatusQueued Status = iota
	StatusWorking
	StatusDone
	StatusError
)

// Event is one progress notification. File is always set.
type Event struct {
	File   string
	Stage  Stage
	Status Status
}

// FileReport is the outcome for one checked file.
type FileReport struct {
	Path        string
	Diagnostics []diag.Flat
	// Err is set when the file could not be read; Diagnostics is then empty.
	Err error
}

// Failed reports whether the file produced errors.
func (r *FileReport) Failed() bool {
	if r.Err != nil {
		return true
	}
	for _, d := range r.Diagnostics {
		if d.Severity == "Error" {
			return true
		}
	}
	return false
}

// CheckOptions configure a multi-file check.
type CheckOptions struct {
	// Lint enables the lint stage per file.
	Lint bool
	// Workers caps parallelism; 0 means GOMAXPROCS.
	Workers int
	// Events, when set, receives progress notifications. CheckFiles closes
	// the channel when every file has been reported.
	Events chan<- Event
}

// CheckFiles runs a syntax (and optionally lint) check over every path in
// parallel. Each file gets its own pipeline runner: a runner is single-run
// state and must not be shared between goroutines.
func CheckFiles(ctx context.Context, paths []string, opts CheckOptions) ([]FileReport, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	reports := make([]FileReport, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			reports[i] = checkOne(path, opts)
			return nil
		})
	}
	err := g.Wait()
	if opts.Events != nil {
		close(opts.Events)
	}
	if err != nil {
		return nil, err
	}
	return reports, nil
}

func checkOne(path string, opts CheckOptions) FileReport {
	emit := func(stage Stage, status Status) {
		if opts.Events != nil {
			opts.Events <- Event{File: path, Stage: stage, Status: status}
		}
	}

	emit(StageParse, StatusWorking)
	content, err := os.ReadFile(path)
	if err != nil {
		emit(StageParse, StatusError)
		return FileReport{Path: path, Err: err}
	}

	cfg := pipeline.DefaultConfig()
	cfg.SourceFilename = path
	cfg.RunSyntaxDiagnostics = true
	cfg.RunLint = opts.Lint

	emit(StageAnalyze, StatusWorking)
	if opts.Lint {
		emit(StageLint, StatusWorking)
	}
	res, runErr := pipeline.NewRunner().Run(string(content), cfg)
	if runErr != nil {
		emit(StageLint, StatusError)
		return FileReport{Path: path, Err: runErr}
	}

	report := FileReport{
		Path: path,
		// Copy out: the result bundle is owned by the runner.
		Diagnostics: append([]diag.Flat(nil), res.Diagnostics...),
	}
	if report.Failed() {
		emit(StageLint, StatusError)
	} else {
		emit(StageLint, StatusDone)
	}
	return report
}
