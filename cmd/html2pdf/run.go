package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	flag "github.com/spf13/pflag"

	html2pdf "github.com/alnah/go-html2pdf"
	"github.com/alnah/go-html2pdf/internal/manifest"
)

// run executes the command and returns the process exit code.
func run(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	f, positional, err := parseFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(env.Stdout)
			return ExitSuccess
		}
		fmt.Fprintf(env.Stderr, "error: %v\n\n", err)
		printUsage(env.Stderr)
		return ExitUsage
	}

	switch {
	case f.run.help:
		printUsage(env.Stdout)
		return ExitSuccess
	case f.run.version:
		fmt.Fprintf(env.Stdout, "html2pdf %s\n", Version)
		return ExitSuccess
	case f.run.doctor:
		return runDoctorCmd(env, f.run.json)
	}

	logger := newLogger(env, f.run.verbose)
	reg := prometheus.NewRegistry()
	exp := env.NewExporter(exporterOptions(env, f, logger, html2pdf.NewMetrics(reg))...)

	ctx, stop := notifyContext(context.Background())
	defer stop()

	var code int
	if f.run.batch != "" {
		code = runBatch(ctx, env, exp, f)
	} else {
		code = runSingle(ctx, env, exp, f, positional, logger)
	}

	if f.run.metrics != "" && code != ExitUsage {
		if err := prometheus.WriteToTextfile(f.run.metrics, reg); err != nil {
			fmt.Fprintf(env.Stderr, "error: writing metrics: %v\n", err)
			return ExitFailure
		}
	}
	return code
}

// runSingle exports one source.
func runSingle(ctx context.Context, env *Environment, exp *html2pdf.Exporter, f *cliFlags, positional []string, logger *slog.Logger) int {
	source, dest, ignored := splitPositional(positional)
	if source == "" {
		fmt.Fprintln(env.Stderr, "error: missing source")
		fmt.Fprintln(env.Stderr)
		printUsage(env.Stderr)
		return ExitUsage
	}
	if len(ignored) > 0 {
		logger.Warn("ignoring arguments; destination must end in .pdf", "args", ignored)
	}

	path, err := exp.Export(ctx, source, dest, f.exportOptions())
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err, f.readiness.wait, env.Getenv("ROD_BROWSER_BIN")))
		return exitCodeFor(err)
	}

	fmt.Fprintln(env.Stdout, path)
	return ExitSuccess
}

// runBatch exports every job of the manifest. Flags act as defaults under
// the manifest's own defaults.
func runBatch(ctx context.Context, env *Environment, exp *html2pdf.Exporter, f *cliFlags) int {
	m, err := manifest.Load(f.run.batch)
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return ExitUsage
	}

	jobs := m.ToJobs()
	flagDefaults := f.exportOptions()
	for i := range jobs {
		jobs[i].Options = html2pdf.Merge(flagDefaults, jobs[i].Options)
	}

	results := exp.ExportMultiple(ctx, jobs)
	for i, r := range results {
		if r.Success {
			fmt.Fprintf(env.Stdout, "ok    %s\n", r.Path)
			continue
		}
		fmt.Fprintf(env.Stderr, "FAIL  job %d (%s): %s\n", i+1, m.Jobs[i].Source, r.Error)
	}

	if failed := results.Failed(); failed > 0 {
		fmt.Fprintf(env.Stderr, "%d of %d jobs failed\n", failed, len(results))
		return ExitFailure
	}
	return ExitSuccess
}

// exporterOptions maps the environment and run-level flags to Exporter
// options.
func exporterOptions(env *Environment, f *cliFlags, logger *slog.Logger, metrics *html2pdf.Metrics) []html2pdf.Option {
	opts := []html2pdf.Option{
		html2pdf.WithLogger(logger),
		html2pdf.WithMetrics(metrics),
		html2pdf.WithBrowserBin(env.Getenv("ROD_BROWSER_BIN")),
	}
	if f.readiness.timeout > 0 {
		opts = append(opts, html2pdf.WithTimeout(f.readiness.timeout))
	}
	if f.run.verify {
		opts = append(opts, html2pdf.WithVerify())
	}
	return opts
}

// newLogger logs to stderr: debug with --verbose, warnings otherwise.
func newLogger(env *Environment, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(env.Stderr, &slog.HandlerOptions{Level: level}))
}
