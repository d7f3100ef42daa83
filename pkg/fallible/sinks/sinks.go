package sinks

import (
	"context"
	"fmt"

	"github.com/dapr/kit/logger"
	"github.com/sirupsen/logrus"

	"github.com/ib-77/fallible/pkg/fallible"
)

// Discard drops every diagnostic.
var Discard fallible.Sink = fallible.SinkFunc(func(context.Context, fallible.Diagnostic) {})

// Logrus writes diagnostics at logrus.WarnLevel.
func Logrus(l logrus.FieldLogger) fallible.Sink {
	return fallible.SinkFunc(func(ctx context.Context, d fallible.Diagnostic) {
		l.WithFields(logrus.Fields{
			"id":            d.ID.String(),
			"at":            d.At,
			"element":       d.Element,
			logrus.ErrorKey: d.Err,
		}).WithContext(ctx).Warn(d.Message)
	})
}

// Kit writes diagnostics through a dapr kit logger.
func Kit(l logger.Logger) fallible.Sink {
	return fallible.SinkFunc(func(_ context.Context, d fallible.Diagnostic) {
		l.WithFields(map[string]any{
			"id":      d.ID.String(),
			"element": fmt.Sprint(d.Element),
		}).Warn(d.Message)
	})
}
