package fallible

import (
	"context"

	"github.com/zoobzio/metricz"
)

// Metric keys for the sequence transforms.
const (
	SeqProcessedTotal = metricz.Key("fallible.seq.processed.total")
	SeqPassedTotal    = metricz.Key("fallible.seq.passed.total")
	SeqDroppedTotal   = metricz.Key("fallible.seq.dropped.total")
)

// Count increments the counter for key when a registry is set on ctx.
func Count(ctx context.Context, key metricz.Key) {
	if registry := MetricsFrom(ctx); registry != nil {
		registry.Counter(key).Inc()
	}
}
