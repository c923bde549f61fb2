package parallel

import "errors"

// ErrClosed is returned by Do on a closed pool.
var ErrClosed = errors.New("parallel: pool closed")
