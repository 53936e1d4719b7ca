// Package blink animates a host title by lowercasing one letter of a fixed
// word per tick, cycling left to right.
package blink

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode"
	"unicode/utf8"
)

// ErrInvalidConfiguration is returned by New when the configuration cannot
// drive an animation.
var ErrInvalidConfiguration = errors.New("invalid blink configuration")

// Default values for the reference animation.
const (
	DefaultWord     = "COOLBEANS"
	DefaultIcon     = "🧊"
	DefaultInterval = time.Second
)

// Config describes the word to animate and how often to advance.
type Config struct {
	Letters  []string      // one letter per entry, non-empty
	Interval time.Duration // tick period, positive
	Icon     string        // prefix rendered before the letters
}

// DefaultConfig returns the COOLBEANS animation with the ice cube prefix.
func DefaultConfig() Config {
	return Config{
		Letters:  ParseWord(DefaultWord),
		Interval: DefaultInterval,
		Icon:     DefaultIcon,
	}
}

// Validate reports whether the configuration can be used by New.
func (c Config) Validate() error {
	if len(c.Letters) == 0 {
		return fmt.Errorf("%w: letters must not be empty", ErrInvalidConfiguration)
	}
	if c.Interval <= 0 {
		return fmt.Errorf("%w: interval must be positive, got %s", ErrInvalidConfiguration, c.Interval)
	}
	for i, l := range c.Letters {
		r, size := utf8.DecodeRuneInString(l)
		if size == 0 || size != len(l) || !unicode.IsLetter(r) {
			return fmt.Errorf("%w: entry %d (%q) is not a single letter", ErrInvalidConfiguration, i, l)
		}
	}
	return nil
}

// Blinker owns the letters, the rotating cursor and the repeating schedule.
type Blinker struct {
	mu       sync.Mutex
	letters  []string
	cursor   int
	icon     string
	interval time.Duration

	sink  TitleSink
	sched Scheduler

	cancel func()
	gen    uint64 // bumped on every Start and Stop; stale callbacks compare against it
}

// New validates cfg and returns a stopped Blinker. The letters are copied.
func New(cfg Config, sink TitleSink, sched Scheduler) (*Blinker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if sink == nil {
		return nil, fmt.Errorf("%w: title sink is required", ErrInvalidConfiguration)
	}
	if sched == nil {
		return nil, fmt.Errorf("%w: scheduler is required", ErrInvalidConfiguration)
	}

	letters := make([]string, len(cfg.Letters))
	copy(letters, cfg.Letters)

	return &Blinker{
		letters:  letters,
		icon:     cfg.Icon,
		interval: cfg.Interval,
		sink:     sink,
		sched:    sched,
	}, nil
}

// Tick lowercases the letter under the cursor, writes the rendered title to
// the sink, restores the letter and advances the cursor. It returns the
// title that was written.
func (b *Blinker) Tick() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.tickLocked()
}

func (b *Blinker) tickLocked() string {
	idx := b.cursor
	original := b.letters[idx]

	b.letters[idx] = strings.ToLower(original)
	title := Render(b.icon, b.letters)
	b.sink.SetTitle(title)
	b.letters[idx] = original

	b.cursor = (b.cursor + 1) % len(b.letters)
	return title
}

// Start begins the repeating schedule. Calling Start while already running
// does nothing.
func (b *Blinker) Start() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.cancel != nil {
		return
	}

	b.gen++
	gen := b.gen
	b.cancel = b.sched.Every(b.interval, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.gen != gen {
			return
		}
		b.tickLocked()
	})
}

// Stop cancels the schedule. Once Stop returns no further title is written.
// Stopping a stopped Blinker does nothing.
func (b *Blinker) Stop() {
	b.mu.Lock()
	cancel := b.cancel
	b.cancel = nil
	if cancel != nil {
		b.gen++
	}
	b.mu.Unlock()

	// Outside the lock: cancel may wait for an in-flight callback.
	if cancel != nil {
		cancel()
	}
}

// Running reports whether a schedule is active.
func (b *Blinker) Running() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cancel != nil
}

// Cursor returns the index the next tick will lowercase.
func (b *Blinker) Cursor() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cursor
}

// Letters returns a copy of the configured letters.
func (b *Blinker) Letters() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.letters))
	copy(out, b.letters)
	return out
}

// Interval returns the tick period.
func (b *Blinker) Interval() time.Duration {
	return b.interval
}

// Title renders the word with no letter lowercased.
func (b *Blinker) Title() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return Render(b.icon, b.letters)
}

// Render joins letters with single spaces behind the icon.
func Render(icon string, letters []string) string {
	word := strings.Join(letters, " ")
	if icon == "" {
		return word
	}
	return icon + " " + word
}

// ParseWord splits word into one entry per rune, skipping whitespace.
func ParseWord(word string) []string {
	letters := make([]string, 0, utf8.RuneCountInString(word))
	for _, r := range word {
		if unicode.IsSpace(r) {
			continue
		}
		letters = append(letters, string(r))
	}
	return letters
}
