package pipeline

import (
	"fmt"
	"io"

	"golang.org/x/time/rate"
)

// Progress throttles paragraph-count updates so a large corpus does not
// flood stderr. The final count is always printed.
type Progress struct {
	w       io.Writer
	total   int
	limiter *rate.Limiter
}

// NewProgress creates a progress reporter capped at updatesPerSecond
func NewProgress(w io.Writer, total int, updatesPerSecond float64) *Progress {
	if updatesPerSecond <= 0 {
		updatesPerSecond = 1
	}
	return &Progress{
		w:       w,
		total:   total,
		limiter: rate.NewLimiter(rate.Limit(updatesPerSecond), 1),
	}
}

// Update reports done paragraphs, rate-limited
func (p *Progress) Update(done int) {
	if done == p.total || p.limiter.Allow() {
		fmt.Fprintf(p.w, "\rParsing paragraphs: %d/%d", done, p.total)
	}
}

// Done terminates the progress line
func (p *Progress) Done() {
	fmt.Fprintln(p.w)
}
