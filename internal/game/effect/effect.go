// Package effect tracks buffs and debuffs applied to a combatant's stats.
package effect

import (
	"time"

	"github.com/udisondev/elemental/internal/attribute"
)

// Host is the combatant an effect is attached to.
type Host interface {
	Attributes() *attribute.Set
}

// Effect is a long-lived change on a host.
//
// Apply is called once when the effect is added, Remove once when it leaves
// the manager, whether it expired or was replaced. Update is called every
// tick while the effect is attached.
type Effect interface {
	Apply(h Host)
	Remove(h Host)
	Update(elapsed time.Duration)
	Active() bool
}
