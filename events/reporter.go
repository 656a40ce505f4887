package events

import (
	"context"
	"log/slog"

	"github.com/samber/oops"
)

// Reporter is the error-reporting side channel for non-fatal failures.
// Nothing reported here stops the simulation; the loop stays alive.
type Reporter interface {
	Report(err error)
}

// ReporterFunc adapts a function to the Reporter interface
type ReporterFunc func(err error)

func (f ReporterFunc) Report(err error) { f(err) }

// NopReporter discards all reports
type NopReporter struct{}

func (NopReporter) Report(error) {}

// LogReporter writes reports to a slog logger, surfacing oops context
// attributes when present.
type LogReporter struct {
	Logger *slog.Logger
}

func (r LogReporter) Report(err error) {
	if err == nil {
		return
	}
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if o, ok := oops.AsOops(err); ok {
		logger.LogAttrs(context.Background(), slog.LevelWarn, err.Error(),
			slog.Any("code", o.Code()),
			slog.Any("context", o.Context()),
		)
		return
	}
	logger.Warn(err.Error())
}

// Recorder captures reports for tests
type Recorder struct {
	Errors []error
}

func (r *Recorder) Report(err error) { r.Errors = append(r.Errors, err) }
