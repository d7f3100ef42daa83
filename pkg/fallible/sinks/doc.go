// Package sinks provides fallible.Sink back-ends for logrus and the dapr kit
// logger, a no-op sink, and a Recorder that keeps diagnostics in memory for
// tests and assertions.
//
// The slog back-end lives in the fallible package itself because it is the
// default sink.
package sinks
