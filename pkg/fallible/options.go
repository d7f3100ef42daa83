package fallible

import (
	"context"
	"log/slog"

	"github.com/zoobzio/clockz"
	"github.com/zoobzio/metricz"
)

type OptionKey string

const (
	SinkOptionKey    OptionKey = "sink_options"
	ClockOptionKey   OptionKey = "clock_options"
	MetricsOptionKey OptionKey = "metrics_options"
	WorkerOptionKey  OptionKey = "worker_options"
)

type MaxLimitOption struct {
	Value int
}

type WorkerOptions struct {
	MaxCount MaxLimitOption
}

// WithSink sets the diagnostic sink used by Settle and the sequence transforms.
func WithSink(ctx context.Context, sink Sink) context.Context {
	return context.WithValue(ctx, SinkOptionKey, sink)
}

// SinkFrom returns the sink set with WithSink, or a slog sink over slog.Default().
func SinkFrom(ctx context.Context) Sink {
	if sink, ok := ctx.Value(SinkOptionKey).(Sink); ok && sink != nil {
		return sink
	}
	return NewSlogSink(slog.Default())
}

func WithClock(ctx context.Context, clock clockz.Clock) context.Context {
	return context.WithValue(ctx, ClockOptionKey, clock)
}

func ClockFrom(ctx context.Context) clockz.Clock {
	if clock, ok := ctx.Value(ClockOptionKey).(clockz.Clock); ok && clock != nil {
		return clock
	}
	return clockz.RealClock
}

// WithMetrics enables the sequence counters on the given registry.
func WithMetrics(ctx context.Context, registry *metricz.Registry) context.Context {
	return context.WithValue(ctx, MetricsOptionKey, registry)
}

// MetricsFrom returns nil when no registry was set.
func MetricsFrom(ctx context.Context) *metricz.Registry {
	registry, _ := ctx.Value(MetricsOptionKey).(*metricz.Registry)
	return registry
}

func WithWorkers(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, WorkerOptionKey, WorkerOptions{MaxLimitOption{Value: maxWorkers}})
}

func WorkersFrom(ctx context.Context, defaultMaxWorkers int) int {
	options, ok := ctx.Value(WorkerOptionKey).(WorkerOptions)
	if ok && options.MaxCount.Value > 0 {
		return options.MaxCount.Value
	}
	return defaultMaxWorkers
}
