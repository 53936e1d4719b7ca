package components

import (
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chanSender struct {
	ch chan tea.Msg
}

func (c chanSender) Send(msg tea.Msg) { c.ch <- msg }

func TestProgramSinkDoesNotBlock(t *testing.T) {
	sender := chanSender{ch: make(chan tea.Msg)} // unbuffered, nobody reading yet
	sink := NewProgramSink(sender)

	done := make(chan struct{})
	go func() {
		sink.SetTitle("a")
		sink.SetTitle("b")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("SetTitle blocked on an unread program")
	}

	var got []TitleMsg
	for i := 0; i < 2; i++ {
		select {
		case msg := <-sender.ch:
			got = append(got, msg.(TitleMsg))
		case <-time.After(time.Second):
			t.Fatal("title never delivered")
		}
	}

	seqs := map[string]uint64{}
	for _, m := range got {
		seqs[m.Title] = m.Seq
	}
	assert.Equal(t, uint64(1), seqs["a"])
	assert.Equal(t, uint64(2), seqs["b"])
}

func TestProgramSinkConcurrentSequence(t *testing.T) {
	sender := chanSender{ch: make(chan tea.Msg, 64)}
	sink := NewProgramSink(sender)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sink.SetTitle("x")
		}()
	}
	wg.Wait()

	seen := map[uint64]bool{}
	for i := 0; i < 32; i++ {
		msg := (<-sender.ch).(TitleMsg)
		require.False(t, seen[msg.Seq], "duplicate seq %d", msg.Seq)
		seen[msg.Seq] = true
	}
}

func TestSetWindowTitleCmd(t *testing.T) {
	assert.NotNil(t, SetWindowTitle("🧊 c O O L"))
}
