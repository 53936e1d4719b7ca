package blink

import (
	"io"
	"sync"

	"github.com/muesli/termenv"
)

// TitleSink receives every rendered title.
type TitleSink interface {
	SetTitle(title string)
}

// SinkFunc adapts a plain function to the TitleSink interface.
type SinkFunc func(title string)

// SetTitle calls f(title).
func (f SinkFunc) SetTitle(title string) {
	f(title)
}

// TerminalSink sets the terminal window title with the OSC escape sequence.
type TerminalSink struct {
	output *termenv.Output
}

// NewTerminalSink writes title sequences to w.
func NewTerminalSink(w io.Writer) *TerminalSink {
	return &TerminalSink{output: termenv.NewOutput(w)}
}

// SetTitle emits the window title sequence.
func (s *TerminalSink) SetTitle(title string) {
	s.output.SetWindowTitle(title)
}

// RecordingSink keeps every title it receives. Safe for concurrent use.
type RecordingSink struct {
	mu     sync.Mutex
	titles []string
}

// SetTitle appends title to the record.
func (s *RecordingSink) SetTitle(title string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.titles = append(s.titles, title)
}

// Titles returns a copy of the recorded titles in write order.
func (s *RecordingSink) Titles() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.titles))
	copy(out, s.titles)
	return out
}

// Len returns the number of recorded writes.
func (s *RecordingSink) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.titles)
}

// Last returns the most recent title, or "" if none was written.
func (s *RecordingSink) Last() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.titles) == 0 {
		return ""
	}
	return s.titles[len(s.titles)-1]
}
