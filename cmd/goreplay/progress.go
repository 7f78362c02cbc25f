package main

import (
	"fmt"
	"io"
	"time"
)

// progress prints a running count of written games, at most twice a second
type progress struct {
	w           io.Writer
	description string
	start       time.Time
	last        time.Time
	count       int
	lastCount   int
}

func newProgress(w io.Writer, description string) *progress {
	now := time.Now()
	return &progress{w: w, description: description, start: now, last: now}
}

func (p *progress) update(n int) {
	p.count += n
	if elapsed := time.Since(p.last); elapsed > 500*time.Millisecond {
		fmt.Fprintf(p.w, "%s: %d games\t%.0f games/s\t\r",
			p.description, p.count, float64(p.count-p.lastCount)/elapsed.Seconds())
		p.last = time.Now()
		p.lastCount = p.count
	}
}

func (p *progress) close() {
	fmt.Fprintf(p.w, "%s: %d games\t%.0f games/s\t\r\n",
		p.description, p.count, float64(p.count)/time.Since(p.start).Seconds())
}
