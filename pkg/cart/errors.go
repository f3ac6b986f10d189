package cart

import "errors"

// ErrClosed is returned once the service goroutine has stopped.
var ErrClosed = errors.New("cart service closed")
