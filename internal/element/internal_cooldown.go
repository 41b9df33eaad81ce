package element

import (
	"fmt"
	"time"
)

// InternalCooldown gates how often a repeating attack may apply its element.
// It is independent of the ability's own action cooldown.
//
// The sequence lists, hit by hit inside one window, whether the hit applies.
// The window opens on the first gated hit; when it elapses the gate resets to
// the start of the sequence.
type InternalCooldown struct {
	tag       string
	window    time.Duration
	sequence  []bool
	repeating bool

	index    int
	canApply bool
	running  bool
	elapsed  time.Duration
}

// NewInternalCooldown creates an open gate.
func NewInternalCooldown(window time.Duration, sequence []bool, repeating bool, tag string) *InternalCooldown {
	seq := make([]bool, len(sequence))
	copy(seq, sequence)
	icd := &InternalCooldown{
		tag:       tag,
		window:    window,
		sequence:  seq,
		repeating: repeating,
	}
	icd.reset()
	return icd
}

// Tag returns the lookup identity of the cooldown.
func (c *InternalCooldown) Tag() string { return c.tag }

// Window returns the reset window.
func (c *InternalCooldown) Window() time.Duration { return c.window }

// CanApply reports whether the next hit may apply its element.
func (c *InternalCooldown) CanApply() bool { return c.canApply }

// OnAttacked advances the gate after a hit consulted it.
func (c *InternalCooldown) OnAttacked() {
	if !c.running {
		c.running = true
		c.elapsed = 0
	}
	if len(c.sequence) == 0 {
		c.canApply = false
		return
	}

	c.index++
	if c.index >= len(c.sequence) {
		if c.repeating {
			c.index = 0
		} else {
			c.index = len(c.sequence) - 1
		}
	}
	c.canApply = c.sequence[c.index]
}

// Update advances the window timer.
func (c *InternalCooldown) Update(elapsed time.Duration) {
	if !c.running {
		return
	}
	c.elapsed += elapsed
	if c.elapsed >= c.window {
		c.reset()
	}
}

func (c *InternalCooldown) reset() {
	c.index = 0
	c.running = false
	c.elapsed = 0
	c.canApply = len(c.sequence) == 0 || c.sequence[0]
}

// CooldownManager is a registry of internal cooldowns keyed by tag and window.
type CooldownManager struct {
	cooldowns map[string]*InternalCooldown
	order     []string
}

// NewCooldownManager creates an empty registry.
func NewCooldownManager() *CooldownManager {
	return &CooldownManager{cooldowns: make(map[string]*InternalCooldown)}
}

// Add registers a cooldown. A cooldown with the same tag and window is replaced.
func (m *CooldownManager) Add(c *InternalCooldown) {
	key := cooldownKey(c.tag, c.window)
	if _, ok := m.cooldowns[key]; !ok {
		m.order = append(m.order, key)
	}
	m.cooldowns[key] = c
}

// Get looks a cooldown up by tag and window.
func (m *CooldownManager) Get(tag string, window time.Duration) (*InternalCooldown, bool) {
	c, ok := m.cooldowns[cooldownKey(tag, window)]
	return c, ok
}

// MustGet looks a cooldown up and panics if it was never registered.
func (m *CooldownManager) MustGet(tag string, window time.Duration) *InternalCooldown {
	c, ok := m.Get(tag, window)
	if !ok {
		panic(fmt.Sprintf("element: internal cooldown %q not registered", cooldownKey(tag, window)))
	}
	return c
}

// Len returns the number of registered cooldowns.
func (m *CooldownManager) Len() int { return len(m.cooldowns) }

// Update advances every registered cooldown.
func (m *CooldownManager) Update(elapsed time.Duration) {
	for _, key := range m.order {
		m.cooldowns[key].Update(elapsed)
	}
}

func cooldownKey(tag string, window time.Duration) string {
	return fmt.Sprintf("%s:%.3f", tag, window.Seconds())
}
