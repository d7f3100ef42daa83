// Package fallible contains the shared vocabulary for adapting functions that
// return an error into shapes that compose without one.
//
// Highlights:
// - Runnable/Consumer/Supplier/Function (and Bi/Tri/Poly forms): fallible shapes
// - Attempt/Dispatch: invoke once, capture the error, hand it to a disposition
// - Abort/AbortError: escalate a failure to a panic with a reproducible message
// - Settle/Optional: downgrade a failure to absence plus a warning diagnostic
// - ErrorText: the message format shared by every adapter
// - WithSink/WithClock/WithMetrics/WithWorkers: context-carried configuration
//
// The per-family adapters live in runs, consumers, suppliers and functions.
// Sequence transforms live in streams (iter.Seq) and flow (channels).
package fallible
