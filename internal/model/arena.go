package model

import (
	"log/slog"
	"slices"
	"time"

	"github.com/udisondev/elemental/internal/attribute"
	"github.com/udisondev/elemental/internal/element"
	"github.com/udisondev/elemental/internal/game/combat"
	"github.com/udisondev/elemental/internal/game/reaction"
	"github.com/udisondev/elemental/internal/rng"
)

// Combatant is anything that can attack inside an arena.
type Combatant interface {
	combat.Attacker
	Attributes() *attribute.Set
}

// DamageEvent is one hit that landed.
type DamageEvent struct {
	At       time.Duration
	Source   string
	Target   string
	Hit      string
	Amount   float64
	Critical bool
	Reaction element.ReactionType
	Reacted  bool
}

// Arena is the combat context: the team, the enemies, the damage
// calculator and the combat clock. Everything that needs to look at other
// combatants goes through it.
type Arena struct {
	calc    *combat.Calculator
	members []*Playable
	enemies []*Lifeform
	elapsed time.Duration
	events  []DamageEvent
}

// NewArena creates an empty arena rolling crits from src.
func NewArena(src rng.Source) *Arena {
	return &Arena{calc: combat.NewCalculator(src)}
}

func (a *Arena) Calculator() *combat.Calculator { return a.calc }
func (a *Arena) Elapsed() time.Duration         { return a.elapsed }

// AddEnemy places l in the arena as an enemy.
func (a *Arena) AddEnemy(l *Lifeform) {
	l.arena = a
	a.enemies = append(a.enemies, l)
}

// AddMember places p in the arena as a team member.
func (a *Arena) AddMember(p *Playable) {
	p.arena = a
	a.members = append(a.members, p)
}

// Enemies returns a copy of the enemy list.
func (a *Arena) Enemies() []*Lifeform { return slices.Clone(a.enemies) }

// Members returns a copy of the team.
func (a *Arena) Members() []*Playable { return slices.Clone(a.members) }

// Events returns a copy of the damage log.
func (a *Arena) Events() []DamageEvent { return slices.Clone(a.events) }

// EnemiesWithin returns the enemies within radius of loc, in arena order.
func (a *Arena) EnemiesWithin(loc Location, radius float64) []*Lifeform {
	r2 := radius * radius
	var out []*Lifeform
	for _, e := range a.enemies {
		if e.loc.DistanceSquared(loc) <= r2 {
			out = append(out, e)
		}
	}
	return out
}

// ClosestEnemyWith returns the nearest enemy within radius of loc that
// carries aura, skipping exclude.
func (a *Arena) ClosestEnemyWith(loc Location, radius float64, aura element.AuraType, exclude *Lifeform) (*Lifeform, bool) {
	var (
		best     *Lifeform
		bestDist = radius * radius
	)
	for _, e := range a.enemies {
		if e == exclude || !e.HasAura(aura) {
			continue
		}
		if d := e.loc.DistanceSquared(loc); d <= bestDist && (best == nil || d < bestDist) {
			best, bestDist = e, d
		}
	}
	return best, best != nil
}

// Update advances the clock, the team and every enemy, dropping the dead.
func (a *Arena) Update(elapsed time.Duration) {
	a.elapsed += elapsed
	for _, m := range slices.Clone(a.members) {
		m.Update(elapsed)
	}
	for _, e := range slices.Clone(a.enemies) {
		e.Update(elapsed)
	}
	a.enemies = slices.DeleteFunc(a.enemies, func(e *Lifeform) bool { return !e.IsAlive() })
}

// Attack freezes the attacker's stats, calculates hit against target and
// delivers it.
func (a *Arena) Attack(attacker Combatant, hit combat.Hit, target *Lifeform) combat.DMG {
	dmg := a.calc.CalculateDamage(hit, attacker, attacker.Attributes().Snapshot(), target)
	target.ReceiveDamage(dmg)
	return dmg
}

func (a *Arena) record(dmg combat.DMG, target *Lifeform, amount float64, r *reaction.Reaction) {
	ev := DamageEvent{
		At:       a.elapsed,
		Source:   dmg.Source.Name(),
		Target:   target.name,
		Hit:      dmg.Name,
		Amount:   amount,
		Critical: dmg.Critical,
	}
	if r != nil {
		ev.Reaction = r.Type
		ev.Reacted = true
	}
	a.events = append(a.events, ev)
}

func (a *Arena) remove(l *Lifeform) {
	a.enemies = slices.DeleteFunc(a.enemies, func(e *Lifeform) bool { return e == l })
	a.members = slices.DeleteFunc(a.members, func(p *Playable) bool { return p.Lifeform == l })
	slog.Debug("removed from arena", "name", l.name)
}
