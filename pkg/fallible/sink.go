package fallible

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Diagnostic is a warning about a failure that was recovered locally.
type Diagnostic struct {
	ID      uuid.UUID
	At      time.Time
	Message string
	Element any
	Err     error
}

// Sink records diagnostics. Implementations must be safe for concurrent use.
type Sink interface {
	Warn(ctx context.Context, d Diagnostic)
}

// SinkFunc adapts a plain function to Sink.
type SinkFunc func(ctx context.Context, d Diagnostic)

func (f SinkFunc) Warn(ctx context.Context, d Diagnostic) {
	f(ctx, d)
}

type slogSink struct {
	logger *slog.Logger
}

// NewSlogSink writes diagnostics at slog.LevelWarn. A nil logger means slog.Default().
func NewSlogSink(logger *slog.Logger) Sink {
	if logger == nil {
		logger = slog.Default()
	}
	return slogSink{logger: logger}
}

func (s slogSink) Warn(ctx context.Context, d Diagnostic) {
	s.logger.LogAttrs(ctx, slog.LevelWarn, d.Message,
		slog.String("id", d.ID.String()),
		slog.Time("at", d.At),
		slog.Any("element", d.Element),
		slog.Any("error", d.Err),
	)
}

// Report sends a diagnostic stamped with the clock from ctx to the sink from ctx.
func Report(ctx context.Context, id uuid.UUID, msg string, element any, err error) {
	SinkFrom(ctx).Warn(ctx, Diagnostic{
		ID:      id,
		At:      ClockFrom(ctx).Now(),
		Message: msg,
		Element: element,
		Err:     err,
	})
}
