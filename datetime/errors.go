package datetime

import (
	"errors"
	"fmt"
)

// ErrFormat is the only error this package returns. Every parse failure
// wraps it, so errors.Is(err, ErrFormat) identifies them.
var ErrFormat = errors.New("format error")

/***** STRUCT **********************************/

/*
FormatError describes why a text did not match a pattern. Offset is the
position in Input where the scan stopped.
*/
type FormatError struct {
	Pattern string
	Input   string
	Offset  int
	Reason  string
}

/***** METHOD **********************************/

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: parsing %q as %q: %s at offset %d", ErrFormat, e.Input, e.Pattern, e.Reason, e.Offset)
}

/***********************************************/

func (e *FormatError) Unwrap() error {
	return ErrFormat
}

/***********************************************/
