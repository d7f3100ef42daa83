// Package runs adapts fallible.Runnable: Handle routes a failure to a callback,
// Must escalates it to a fallible.AbortError panic.
package runs
