package blink

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// manualScheduler fires callbacks only when the test advances it.
type manualScheduler struct {
	mu        sync.Mutex
	schedules []*manualSchedule
}

type manualSchedule struct {
	interval  time.Duration
	fn        func()
	cancelled bool
}

func (s *manualScheduler) Every(d time.Duration, fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	sched := &manualSchedule{interval: d, fn: fn}
	s.schedules = append(s.schedules, sched)
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		sched.cancelled = true
	}
}

// advance fires every live schedule n times.
func (s *manualScheduler) advance(n int) {
	for i := 0; i < n; i++ {
		s.mu.Lock()
		var live []func()
		for _, sched := range s.schedules {
			if !sched.cancelled {
				live = append(live, sched.fn)
			}
		}
		s.mu.Unlock()
		for _, fn := range live {
			fn()
		}
	}
}

// fireAll invokes every callback ever registered, cancelled or not, to model
// a callback that was already in flight when Stop ran.
func (s *manualScheduler) fireAll() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.schedules))
	for _, sched := range s.schedules {
		fns = append(fns, sched.fn)
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

func (s *manualScheduler) live() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, sched := range s.schedules {
		if !sched.cancelled {
			n++
		}
	}
	return n
}

func newTestBlinker(t *testing.T) (*Blinker, *RecordingSink, *manualScheduler) {
	t.Helper()
	sink := &RecordingSink{}
	sched := &manualScheduler{}
	b, err := New(DefaultConfig(), sink, sched)
	require.NoError(t, err)
	return b, sink, sched
}

func TestTickRendersCoolBeansSequence(t *testing.T) {
	b, sink, _ := newTestBlinker(t)

	var got []string
	for i := 0; i < 10; i++ {
		got = append(got, b.Tick())
	}

	assert.Equal(t, "🧊 c O O L B E A N S", got[0])
	assert.Equal(t, "🧊 C o O L B E A N S", got[1])
	assert.Equal(t, "🧊 C O O L B E A N s", got[8])
	assert.Equal(t, got[0], got[9], "tick 9 wraps to tick 0")
	assert.Equal(t, got, sink.Titles())
}

func TestTickRestoresLetters(t *testing.T) {
	b, _, _ := newTestBlinker(t)
	want := ParseWord(DefaultWord)

	for n := 1; n <= 40; n++ {
		b.Tick()
		require.Equal(t, want, b.Letters(), "after %d ticks", n)
	}
}

func TestTickLowercasesExactlyOnePosition(t *testing.T) {
	var snapshots [][]string
	cfg := DefaultConfig()

	var b *Blinker
	sink := SinkFunc(func(string) {
		// Runs inside the tick body, while the letter is lowercased.
		snapshots = append(snapshots, append([]string(nil), b.letters...))
	})
	b, err := New(cfg, sink, &manualScheduler{})
	require.NoError(t, err)

	for i := 0; i < 2*len(cfg.Letters); i++ {
		b.Tick()
	}

	for tick, snap := range snapshots {
		want := tick % len(cfg.Letters)
		for idx, letter := range snap {
			if idx == want {
				assert.Equal(t, strings.ToLower(cfg.Letters[idx]), letter, "tick %d idx %d", tick, idx)
			} else {
				assert.Equal(t, cfg.Letters[idx], letter, "tick %d idx %d", tick, idx)
			}
		}
	}
}

func TestCursorWrapsWithoutGrowing(t *testing.T) {
	cfg := Config{Letters: []string{"A", "B", "C"}, Interval: time.Millisecond}
	b, err := New(cfg, &RecordingSink{}, &manualScheduler{})
	require.NoError(t, err)

	var cursors []int
	for i := 0; i < 7; i++ {
		cursors = append(cursors, b.Cursor())
		b.Tick()
	}
	assert.Equal(t, []int{0, 1, 2, 0, 1, 2, 0}, cursors)
	assert.Equal(t, 1, b.Cursor())
}

func TestRenderWithoutIcon(t *testing.T) {
	assert.Equal(t, "A B", Render("", []string{"A", "B"}))
	assert.Equal(t, "* A B", Render("*", []string{"A", "B"}))
}

func TestNewDoesNotAliasCallerLetters(t *testing.T) {
	letters := []string{"H", "I"}
	b, err := New(Config{Letters: letters, Interval: time.Second}, &RecordingSink{}, &manualScheduler{})
	require.NoError(t, err)

	letters[0] = "X"
	assert.Equal(t, []string{"H", "I"}, b.Letters())
}

func TestNewRejectsInvalidConfiguration(t *testing.T) {
	sink := &RecordingSink{}
	sched := &manualScheduler{}

	tests := []struct {
		name  string
		cfg   Config
		sink  TitleSink
		sched Scheduler
	}{
		{name: "empty letters", cfg: Config{Interval: time.Second}, sink: sink, sched: sched},
		{name: "zero interval", cfg: Config{Letters: []string{"A"}}, sink: sink, sched: sched},
		{name: "negative interval", cfg: Config{Letters: []string{"A"}, Interval: -time.Second}, sink: sink, sched: sched},
		{name: "multi character entry", cfg: Config{Letters: []string{"AB"}, Interval: time.Second}, sink: sink, sched: sched},
		{name: "empty entry", cfg: Config{Letters: []string{""}, Interval: time.Second}, sink: sink, sched: sched},
		{name: "digit entry", cfg: Config{Letters: []string{"7"}, Interval: time.Second}, sink: sink, sched: sched},
		{name: "nil sink", cfg: DefaultConfig(), sched: sched},
		{name: "nil scheduler", cfg: DefaultConfig(), sink: sink},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := New(tt.cfg, tt.sink, tt.sched)
			assert.Nil(t, b)
			assert.True(t, errors.Is(err, ErrInvalidConfiguration), "got %v", err)
		})
	}
	assert.Equal(t, 0, sched.live(), "no schedule may start on a failed construction")
}

func TestStartIsIdempotent(t *testing.T) {
	b, sink, sched := newTestBlinker(t)

	b.Start()
	b.Start()
	b.Start()
	require.Equal(t, 1, sched.live())
	assert.True(t, b.Running())

	sched.advance(3)
	assert.Equal(t, 3, sink.Len())
}

func TestStartUsesConfiguredInterval(t *testing.T) {
	b, _, sched := newTestBlinker(t)
	b.Start()
	defer b.Stop()

	require.Len(t, sched.schedules, 1)
	assert.Equal(t, time.Second, sched.schedules[0].interval)
}

func TestStopPreventsFurtherWrites(t *testing.T) {
	b, sink, sched := newTestBlinker(t)

	b.Start()
	sched.advance(2)
	b.Stop()
	b.Stop()

	sched.advance(50)
	sched.fireAll()
	assert.Equal(t, 2, sink.Len())
	assert.False(t, b.Running())
	assert.Equal(t, ParseWord(DefaultWord), b.Letters())
}

func TestRestartResumesFromCursor(t *testing.T) {
	b, sink, sched := newTestBlinker(t)

	b.Start()
	sched.advance(2)
	b.Stop()
	b.Start()
	sched.advance(1)

	// Only the second schedule's callback is current; the first is stale.
	sched.fireAll()
	b.Stop()
	titles := sink.Titles()
	require.Len(t, titles, 4)
	assert.Equal(t, "🧊 C O o L B E A N S", titles[2])
	assert.Equal(t, "🧊 C O O l B E A N S", titles[3])
}

func TestTitleIsUnanimated(t *testing.T) {
	b, _, _ := newTestBlinker(t)
	b.Tick()
	assert.Equal(t, "🧊 C O O L B E A N S", b.Title())
}

func TestParseWord(t *testing.T) {
	assert.Equal(t, []string{"C", "O", "O", "L"}, ParseWord("COOL"))
	assert.Equal(t, []string{"A", "B"}, ParseWord(" A B "))
	assert.Equal(t, []string{"Ä", "Ö"}, ParseWord("ÄÖ"))
	assert.Empty(t, ParseWord(""))
}
