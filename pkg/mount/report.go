package mount

import (
	"log/slog"
	"runtime/debug"

	"github.com/vango-dev/vmount/internal/errors"
)

// Reporter receives runtime diagnostics. Implementations must not panic.
type Reporter interface {
	// WarnDoubleUnmount is called when Unmount gets an instance that is not mounted.
	WarnDoubleUnmount()

	// WarnHydrationMismatch is called when existing markup does not match.
	WarnHydrationMismatch(cause error)

	// ErrorHydrationFailed builds the fatal error returned when a mismatch
	// cannot be recovered.
	ErrorHydrationFailed(cause error) error
}

// logReporter reports through slog and Prometheus.
type logReporter struct {
	logger      *slog.Logger
	diagnostics bool
	metrics     *metrics
}

func (l *logReporter) WarnDoubleUnmount() {
	l.metrics.doubleUnmounts.Inc()
	if !l.diagnostics {
		return
	}
	err := errors.New("E050").WithStack(debug.Stack())
	l.logger.Warn(err.Message,
		"code", err.Code,
		"stack", err.Stack,
	)
}

func (l *logReporter) WarnHydrationMismatch(cause error) {
	err := errors.New("E040").Wrap(cause)
	l.logger.Warn(err.Message,
		"code", err.Code,
		"error", cause,
	)
}

func (l *logReporter) ErrorHydrationFailed(cause error) error {
	return errors.New("E041").Wrap(cause)
}
