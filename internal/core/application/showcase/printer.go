package showcase

import (
	"fmt"
	"io"
)

// printer keeps the first write error so the scenario can narrate without
// checking every line.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) Write(b []byte) (int, error) {
	if p.err != nil {
		return 0, p.err
	}
	n, err := p.w.Write(b)
	p.err = err
	return n, err
}

func (p *printer) println(args ...any) {
	_, _ = fmt.Fprintln(p, args...)
}

func (p *printer) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p, format, args...)
}

// check records err unless an earlier one is already kept.
func (p *printer) check(err error) {
	if p.err == nil {
		p.err = err
	}
}
