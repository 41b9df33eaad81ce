package effect

import (
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Manager tracks the active effects of one host.
//
// Effects are keyed by id so a source can refresh or remove exactly its own
// effect. Iteration follows insertion order.
// Not safe for concurrent use; the combat core is single-threaded.
type Manager struct {
	host    Host
	effects map[uuid.UUID]Effect
	order   []uuid.UUID
}

// NewManager creates an empty manager for host.
func NewManager(host Host) *Manager {
	return &Manager{
		host:    host,
		effects: make(map[uuid.UUID]Effect),
		order:   make([]uuid.UUID, 0, 8),
	}
}

// Add attaches e under id. An effect already stored under id is removed
// first, so re-applying a debuff refreshes it instead of stacking.
func (m *Manager) Add(id uuid.UUID, e Effect) {
	if old, ok := m.effects[id]; ok {
		old.Remove(m.host)
		slog.Debug("effect replaced", "id", id)
	} else {
		m.order = append(m.order, id)
	}
	m.effects[id] = e
	e.Apply(m.host)
}

// Remove detaches the effect stored under id. Unknown ids are ignored.
func (m *Manager) Remove(id uuid.UUID) {
	e, ok := m.effects[id]
	if !ok {
		return
	}
	delete(m.effects, id)
	m.order = slices.DeleteFunc(m.order, func(o uuid.UUID) bool { return o == id })
	e.Remove(m.host)
	slog.Debug("effect removed", "id", id)
}

// Get returns the effect stored under id.
func (m *Manager) Get(id uuid.UUID) (Effect, bool) {
	e, ok := m.effects[id]
	return e, ok
}

// Has reports whether an effect is stored under id.
func (m *Manager) Has(id uuid.UUID) bool {
	_, ok := m.effects[id]
	return ok
}

// Len returns the number of attached effects.
func (m *Manager) Len() int { return len(m.effects) }

// Update ticks every effect and detaches the ones that became inactive.
// Effects added or removed by a ticking effect are picked up next tick.
func (m *Manager) Update(elapsed time.Duration) {
	for _, id := range slices.Clone(m.order) {
		e, ok := m.effects[id]
		if !ok {
			continue
		}
		if e.Active() {
			e.Update(elapsed)
		}
		if !e.Active() {
			m.Remove(id)
		}
	}
}

// Clear detaches every effect.
func (m *Manager) Clear() {
	for _, id := range slices.Clone(m.order) {
		m.Remove(id)
	}
}
