package utils

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"golang.org/x/term"
)

// Progress is a spinner style indicator reporting how many items
// out of a known total have been processed.
type Progress struct {
	mu         sync.Mutex
	delay      time.Duration
	writer     io.Writer
	message    string
	lastOutput string
	total      int64
	done       atomic.Int64
	enabled    bool
	running    bool
	stopChan   chan struct{}
	exited     chan struct{}

	// StopMsg is printed in place of the indicator once it is stopped.
	StopMsg string
}

// NewProgress instantiates a new progress indicator writing to w.
// The indicator only animates when w is a terminal; otherwise it just counts.
func NewProgress(w io.Writer, msg string, total int, d time.Duration) *Progress {
	return &Progress{
		delay:   d,
		writer:  w,
		message: msg,
		total:   int64(total),
		enabled: IsTerminal(w),
	}
}

// IsTerminal reports whether w is a file descriptor attached to a terminal.
func IsTerminal(w any) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Add marks n more items as processed.
func (p *Progress) Add(n int) {
	p.done.Add(int64(n))
}

// Done returns the number of processed items.
func (p *Progress) Done() int {
	return int(p.done.Load())
}

// Start starts the progress indicator.
func (p *Progress) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || p.running {
		return
	}
	p.running = true
	p.stopChan = make(chan struct{})
	p.exited = make(chan struct{})

	// hides the cursor
	fmt.Fprint(p.writer, "\033[?25l")

	go func() {
		defer close(p.exited)
		for {
			for _, r := range `⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏` {
				select {
				case <-p.stopChan:
					return
				case <-time.After(p.delay):
				}
				p.mu.Lock()
				output := fmt.Sprintf("\r%s%s %c%s %s/%s", p.message, SuccessColor, r, DefaultColor,
					FormatCount(p.Done()), FormatCount(int(p.total)))
				fmt.Fprint(p.writer, output)
				p.lastOutput = output
				p.mu.Unlock()
			}
		}
	}()
}

// Stop stops the progress indicator and prints StopMsg, if any.
func (p *Progress) Stop() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	p.running = false
	close(p.stopChan)
	p.mu.Unlock()

	<-p.exited

	p.mu.Lock()
	defer p.mu.Unlock()

	p.clear()
	p.RestoreCursor()
	if len(p.StopMsg) > 0 {
		fmt.Fprint(p.writer, p.StopMsg)
	}
}

// RestoreCursor restores back the cursor visibility.
func (p *Progress) RestoreCursor() {
	if p.enabled {
		fmt.Fprint(p.writer, "\033[?25h")
	}
}

// clear deletes the last line. Caller must hold the lock.
func (p *Progress) clear() {
	n := utf8.RuneCountInString(p.lastOutput)
	fmt.Fprint(p.writer, "\r"+strings.Repeat(" ", n)+"\r")
	p.lastOutput = ""
}
