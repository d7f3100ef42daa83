// Package flow runs the sequence transforms over channels with a configurable
// number of worker lines (fallible.WithWorkers). Output keeps input order;
// rejects are recorded in the order workers finish with them, which differs
// from input order when more than one line runs.
//
// Cancelling ctx stops reading input and emitting output. An element already
// handed to a line is still evaluated to completion.
package flow
