package effect

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/udisondev/elemental/internal/attribute"
	"github.com/udisondev/elemental/internal/cooldown"
)

// Selector picks the stat an effect modifies.
type Selector func(s *attribute.Set) attribute.Modifiable

// SelectStat builds a selector from a stat path such as "atk" or
// "res:physical". The path is validated up front.
func SelectStat(path string) (Selector, error) {
	if _, err := attribute.NewSet(1, 1, 1).Stat(path); err != nil {
		return nil, fmt.Errorf("select stat: %w", err)
	}
	return func(s *attribute.Set) attribute.Modifiable {
		m, _ := s.Stat(path)
		return m
	}, nil
}

// StatEffect adds one modifier to one stat for as long as it is attached.
type StatEffect struct {
	name   string
	id     attribute.ModifierID
	stat   Selector
	mod    attribute.Modifier
	target attribute.Modifiable
}

// NewStatEffect creates a permanent stat modifier effect.
func NewStatEffect(name string, stat Selector, mod attribute.Modifier) *StatEffect {
	return &StatEffect{
		name: name,
		id:   attribute.NewModifierID(),
		stat: stat,
		mod:  mod,
	}
}

func (e *StatEffect) Name() string { return e.name }

func (e *StatEffect) Apply(h Host) {
	e.target = e.stat(h.Attributes())
	e.target.Add(e.id, e.mod)
	slog.Debug("stat effect applied", "effect", e.name, "kind", e.mod.Kind.String(), "value", e.mod.Value)
}

func (e *StatEffect) Remove(Host) {
	if e.target == nil {
		return
	}
	e.target.Remove(e.id)
	e.target = nil
	slog.Debug("stat effect removed", "effect", e.name)
}

func (e *StatEffect) Update(time.Duration) {}
func (e *StatEffect) Active() bool         { return true }

// TimedEffect expires its inner effect after a fixed duration.
type TimedEffect struct {
	inner    Effect
	duration *cooldown.CountDown
}

// NewTimedEffect wraps inner so it expires after d.
func NewTimedEffect(inner Effect, d time.Duration) *TimedEffect {
	return &TimedEffect{inner: inner, duration: cooldown.NewCountDown(d)}
}

// Remaining returns the time left before the effect expires.
func (e *TimedEffect) Remaining() time.Duration { return e.duration.Remaining() }

func (e *TimedEffect) Apply(h Host)  { e.inner.Apply(h) }
func (e *TimedEffect) Remove(h Host) { e.inner.Remove(h) }

func (e *TimedEffect) Update(elapsed time.Duration) {
	e.duration.Update(elapsed)
	e.inner.Update(elapsed)
}

func (e *TimedEffect) Active() bool {
	return !e.duration.IsOver() && e.inner.Active()
}
