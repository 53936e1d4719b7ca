package components

import (
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
)

// TitleMsg carries a rendered window title into the Bubble Tea loop.
type TitleMsg struct {
	Title string
	Seq   uint64 // increases with every write; lets the model drop stale titles
}

// Sender is the subset of *tea.Program used by ProgramSink.
type Sender interface {
	Send(msg tea.Msg)
}

// SenderFunc adapts a plain function to the Sender interface.
type SenderFunc func(msg tea.Msg)

// Send calls f(msg).
func (f SenderFunc) Send(msg tea.Msg) {
	f(msg)
}

// ProgramSink forwards titles to a running program as TitleMsg values.
// SetTitle never blocks: the blinker holds its lock while writing, and the
// program loop may be waiting on that lock in Stop.
type ProgramSink struct {
	sender Sender
	seq    atomic.Uint64
}

// NewProgramSink returns a sink that sends to s.
func NewProgramSink(s Sender) *ProgramSink {
	return &ProgramSink{sender: s}
}

// SetTitle sends the title asynchronously.
func (p *ProgramSink) SetTitle(title string) {
	msg := TitleMsg{Title: title, Seq: p.seq.Add(1)}
	go p.sender.Send(msg)
}

// SetWindowTitle returns the command that updates the terminal title.
func SetWindowTitle(title string) tea.Cmd {
	return tea.SetWindowTitle(title)
}
