// Package progressbar implements functionality of printing a progress
// bar to the terminal window
package progressbar

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// ManualProgressBar implement progress bar functionality that must
// be manually managed. That is, the Display() function must be called
// whenever an updated progress bar should be printed.
//
// ManualProgressBar does not use concurrency.
type ManualProgressBar struct {
	w               io.Writer
	label           string
	width           int
	maxProgress     int
	currentProgress int
	bar             strings.Builder
	startTime       time.Time
}

// NewLabelled returns a new ManualProgressBar that writes to w,
// prefixes the bar with label and is full after max calls to
// Increment()
func NewLabelled(w io.Writer, label string, width,
	max int) *ManualProgressBar {
	return &ManualProgressBar{
		w:           w,
		label:       label,
		width:       width,
		maxProgress: max,
		startTime:   time.Now(),
	}
}

// Increment increments the interal progress counter. Each time an
// iteration is performed, Increment should be called.
func (p *ManualProgressBar) Increment() {
	if p.currentProgress < p.maxProgress {
		p.currentProgress++
	}
}

// Progress returns the fraction of iterations performed
func (p *ManualProgressBar) Progress() float64 {
	if p.maxProgress <= 0 {
		return 1.0
	}
	return float64(p.currentProgress) / float64(p.maxProgress)
}

// String returns the progress bar without terminal control codes
func (p *ManualProgressBar) String() string {
	p.bar.Reset()
	if p.label != "" {
		p.bar.WriteString(p.label + " ")
	}
	p.bar.WriteString("|")

	filled := int(p.Progress() * float64(p.width))
	p.bar.WriteString(strings.Repeat("█", filled))
	p.bar.WriteString(strings.Repeat(" ", p.width-filled))

	p.bar.WriteString(fmt.Sprintf("| %d/%d [%.2f%% | elapsed: %v]",
		p.currentProgress, p.maxProgress, p.Progress()*100,
		time.Since(p.startTime).Truncate(time.Second)))

	return p.bar.String()
}

// Display overwrites the current terminal line with the progress bar
func (p *ManualProgressBar) Display() {
	fmt.Fprintf(p.w, "\n\033[1A\033[K%v", p.String())
}
