package showcase_test

import (
	"errors"
	"fmt"
	"io"
)

// streamLogger writes diagnostics to the same stream as the narration.
type streamLogger struct {
	w io.Writer
}

func (l streamLogger) Infof(format string, args ...any) {
	fmt.Fprintf(l.w, "INFO "+format+"\n", args...)
}

func (l streamLogger) Warnf(format string, args ...any) {
	fmt.Fprintf(l.w, "WARN "+format+"\n", args...)
}

var errWrite = errors.New("write failed")

// failAfter accepts n writes and fails every one after that.
type failAfter struct {
	n int
}

func (f *failAfter) Write(b []byte) (int, error) {
	if f.n == 0 {
		return 0, errWrite
	}
	f.n--
	return len(b), nil
}
