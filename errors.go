package consoleink

import "errors"

// ErrClosed is returned by WriteString, Write, WriteLine and Flush when
// called after Complete has already run (a repeated Complete returns nil).
// A Writer never un-closes; once finalized it stays finalized for the rest
// of its lifetime.
var ErrClosed = errors.New("consoleink: writer already completed")
