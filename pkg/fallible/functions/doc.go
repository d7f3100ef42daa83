// Package functions adapts fallible transforms of one, two, three or any number
// of inputs.
//
//   - Handle/Handle2/Handle3/HandleN: return the callback's value on failure; the
//     callback receives (err, inputs...)
//   - Must/Must2/Must3/MustN: panic with a fallible.AbortError on failure
//   - Optional/Optional2/Optional3: return an empty fallible.Optional on failure or
//     nil, and log one warning to the sink carried by ctx
package functions
