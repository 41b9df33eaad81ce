package model

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/udisondev/elemental/internal/attribute"
	"github.com/udisondev/elemental/internal/element"
	"github.com/udisondev/elemental/internal/game/effect"
)

// Names of the reaction hits that bypass DEF and RES and are gated by the
// receiver's own internal cooldown.
const (
	HitOverloaded     = "Overloaded"
	HitElectroCharged = "Electro Charged"
)

const (
	defaultRES = 10

	reactionICDWindow = 500 * time.Millisecond
)

var reactionICDSequence = []bool{true, false}

// Lifeform is a combat entity: a playable character or an enemy.
//
// A Lifeform owns its stats, auras and effects exclusively. It joins an
// Arena to see other combatants; without one, area side effects are skipped.
type Lifeform struct {
	name     string
	level    int
	playable bool

	attrs   *attribute.Set
	auras   [element.AuraCount]*element.Aura
	icds    *element.CooldownManager
	effects *effect.Manager
	poise   *Poise

	loc   Location
	arena *Arena
	dead  bool

	electroChargedID uuid.UUID
	superConductID   uuid.UUID
}

// NewLifeform creates a combatant with full HP and 10% RES to every element.
// Levels below 1 are raised to 1.
func NewLifeform(name string, level int, baseHP, baseATK, baseDEF attribute.FlatValue) *Lifeform {
	l := &Lifeform{
		name:             name,
		level:            max(level, 1),
		attrs:            attribute.NewSet(baseHP, baseATK, baseDEF),
		icds:             element.NewCooldownManager(),
		poise:            Melee(),
		electroChargedID: uuid.New(),
		superConductID:   uuid.New(),
	}
	l.attrs.RES.ApplyToAll(func(p *attribute.PercentAttribute) { p.SetBaseValue(defaultRES) })
	for i := range element.AuraCount {
		l.auras[i] = element.NewAura(element.AuraType(i))
	}
	l.icds.Add(element.NewInternalCooldown(reactionICDWindow, reactionICDSequence, false, HitOverloaded))
	l.icds.Add(element.NewInternalCooldown(reactionICDWindow, reactionICDSequence, false, HitElectroCharged))
	l.effects = effect.NewManager(l)
	return l
}

func (l *Lifeform) Name() string                   { return l.name }
func (l *Lifeform) Level() int                     { return l.level }
func (l *Lifeform) IsPlayable() bool               { return l.playable }
func (l *Lifeform) Attributes() *attribute.Set     { return l.attrs }
func (l *Lifeform) ICDs() *element.CooldownManager { return l.icds }
func (l *Lifeform) Effects() *effect.Manager       { return l.effects }
func (l *Lifeform) Poise() *Poise                  { return l.poise }
func (l *Lifeform) Location() Location             { return l.loc }
func (l *Lifeform) Arena() *Arena                  { return l.arena }

// SetPoise replaces the interruption gauge.
func (l *Lifeform) SetPoise(p *Poise) { l.poise = p }

// MoveTo places the combatant at loc.
func (l *Lifeform) MoveTo(loc Location) { l.loc = loc }

// Aura returns the gauge of one aura family.
func (l *Lifeform) Aura(t element.AuraType) *element.Aura {
	return l.auras[t]
}

// HasAura reports whether the aura family has any gauge left.
func (l *Lifeform) HasAura(t element.AuraType) bool {
	return l.auras[t].IsUp()
}

// IsAlive reports whether HP is above zero.
func (l *Lifeform) IsAlive() bool {
	return l.attrs.HP.BaseValue() > 0
}

// AddEffect attaches an effect under id, replacing a previous one.
func (l *Lifeform) AddEffect(id uuid.UUID, e effect.Effect) {
	l.effects.Add(id, e)
}

// RemoveEffect detaches the effect stored under id.
func (l *Lifeform) RemoveEffect(id uuid.UUID) {
	l.effects.Remove(id)
}

// Update advances internal cooldowns, effects, auras and poise.
func (l *Lifeform) Update(elapsed time.Duration) {
	l.icds.Update(elapsed)
	l.effects.Update(elapsed)
	for _, a := range l.auras {
		a.Update(elapsed)
	}
	l.poise.Update(elapsed)
}

// Die removes the combatant from its arena. Only the first call has effect.
func (l *Lifeform) Die() {
	if l.dead {
		return
	}
	l.dead = true
	slog.Debug("lifeform died", "name", l.name)
	if l.arena != nil {
		l.arena.remove(l)
	}
}
