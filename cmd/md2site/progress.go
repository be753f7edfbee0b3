package main

import (
	"io"

	"github.com/cheggaaa/pb/v3"
)

// progressBar tracks built pages. The zero value and a nil pointer are
// silent no-ops.
type progressBar struct {
	bar *pb.ProgressBar
}

// newProgressBar starts a bar counting to total on w, or returns a silent
// bar when disabled.
func newProgressBar(w io.Writer, total int, enabled bool) *progressBar {
	if !enabled || total <= 0 {
		return &progressBar{}
	}
	bar := pb.New(total)
	bar.SetWriter(w)
	bar.Start()
	return &progressBar{bar: bar}
}

// Increment advances the bar by one page. Safe for concurrent use.
func (p *progressBar) Increment() {
	if p == nil || p.bar == nil {
		return
	}
	p.bar.Increment()
}

// Finish stops the bar and prints its final state.
func (p *progressBar) Finish() {
	if p == nil || p.bar == nil {
		return
	}
	p.bar.Finish()
}
