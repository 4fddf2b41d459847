package writers

import (
	"errors"
	"io"
	"syscall"
)

// IsBrokenPipe reports whether err means the reader of stdout went away,
// e.g. `revcomp | head -c0`. Such errors end the run successfully.
func IsBrokenPipe(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe)
}
