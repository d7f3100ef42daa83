// Package consumers adapts fallible procedures of one, two, three or any number
// of inputs.
//
// - Handle/Handle2/Handle3/HandleN: pass (err, inputs...) to a callback on failure
// - Must/Must2/Must3/MustN: panic with a fallible.AbortError on failure
//
// Consumers have no Optional form; there is no value to make optional.
package consumers
