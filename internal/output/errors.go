package output

import "errors"

// ErrUnsupportedFormat is returned when a requested format has no formatter.
var ErrUnsupportedFormat = errors.New("unsupported report format")
