package fallible

import "errors"

// ErrNilResult is reported when a producer succeeds with a nil value where an
// Optional is expected.
var ErrNilResult = errors.New("callable returned a nil value")
