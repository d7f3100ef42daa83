// Package suppliers adapts fallible.Supplier.
//
// - Handle: return the callback's value on failure
// - Must: panic with a fallible.AbortError on failure
// - Optional: return an empty fallible.Optional on failure or nil, and log a warning
package suppliers
