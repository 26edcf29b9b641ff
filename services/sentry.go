package services

import (
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"
)

// ErrorReporter forwards unexpected failures to Sentry. The zero value and a
// reporter built without a DSN drop every event.
type ErrorReporter struct {
	initialized bool
}

func NewErrorReporter(dsn, environment string, log *zap.Logger) *ErrorReporter {
	if dsn == "" {
		log.Info("SENTRY_DSN not set, error reporting disabled")
		return &ErrorReporter{}
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Environment:      environment,
		TracesSampleRate: 1.0,
	})
	if err != nil {
		log.Warn("sentry initialization failed", zap.Error(err))
		return &ErrorReporter{}
	}

	log.Info("sentry initialized", zap.String("environment", environment))
	return &ErrorReporter{initialized: true}
}

func (r *ErrorReporter) Enabled() bool {
	return r != nil && r.initialized
}

// Capture sends err with the given tags attached to its scope.
func (r *ErrorReporter) Capture(err error, tags map[string]string) {
	if !r.Enabled() {
		return
	}
	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetTags(tags)
		scope.SetLevel(sentry.LevelError)
		sentry.CaptureException(err)
	})
}

func (r *ErrorReporter) Flush(timeout time.Duration) bool {
	if !r.Enabled() {
		return true
	}
	return sentry.Flush(timeout)
}
