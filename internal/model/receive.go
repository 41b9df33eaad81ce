package model

import (
	"log/slog"
	"time"

	"github.com/udisondev/elemental/internal/attribute"
	"github.com/udisondev/elemental/internal/element"
	"github.com/udisondev/elemental/internal/game/combat"
	"github.com/udisondev/elemental/internal/game/effect"
	"github.com/udisondev/elemental/internal/game/formula"
	"github.com/udisondev/elemental/internal/game/reaction"
	"github.com/udisondev/elemental/internal/rng"
)

const (
	overloadedRadius    = 5.0
	overloadedPoise     = 90
	electroChargedPoise = 120

	superConductShred    attribute.Percent = -40
	superConductDuration                   = 12 * time.Second
)

var physicalRES = mustSelect("res:physical")

func mustSelect(path string) effect.Selector {
	sel, err := effect.SelectStat(path)
	if err != nil {
		panic(err)
	}
	return sel
}

// ReceiveDamage consumes one hit.
//
// Overloaded and Electro-Charged reaction hits bypass DEF and RES and land
// at most once per their internal cooldown window. Every other hit may apply
// its element: the first reaction candidate consumes the opposing aura and
// runs its side effects, otherwise the element lingers as an aura.
//
// Resolved hits keep their amount. Raw hits get the amplifying multiplier
// and then DEF and RES.
func (l *Lifeform) ReceiveDamage(dmg combat.DMG) {
	if l.dead {
		return
	}
	if l.receiveReactionHit(dmg) {
		return
	}
	amount, r := l.processDamage(dmg)
	l.takeDamage(dmg, amount, r)
}

func (l *Lifeform) receiveReactionHit(dmg combat.DMG) bool {
	switch dmg.Name {
	case HitOverloaded, HitElectroCharged:
		icd := l.icds.MustGet(dmg.Name, reactionICDWindow)
		if icd.CanApply() {
			l.takeDamage(dmg, dmg.Amount, nil)
			icd.OnAttacked()
		}
		return true
	default:
		return false
	}
}

func (l *Lifeform) processDamage(dmg combat.DMG) (float64, *reaction.Reaction) {
	inst := dmg.Element
	if inst.Units <= 0 {
		return l.mitigate(dmg, dmg.Amount), nil
	}

	matches := reaction.Matches(inst.Element, l)
	if len(matches) == 0 {
		if t, ok := inst.Element.AuraType(); ok {
			l.auras[t].Apply(inst.Units)
			slog.Debug("aura applied", "target", l.name, "aura", t.String(), "units", l.auras[t].Units())
		}
		return l.mitigate(dmg, dmg.Amount), nil
	}

	m := matches[0]
	r := l.reactionFor(dmg, m.Type)
	l.react(dmg, m, r)

	if dmg.Resolved {
		return dmg.Amount, &r
	}
	return l.mitigate(dmg, dmg.Amount*r.OriginalDamageMultiplier), &r
}

// reactionFor reuses the magnitude computed with the hit when it matches,
// so a transformative crit is rolled once.
func (l *Lifeform) reactionFor(dmg combat.DMG, t element.ReactionType) reaction.Reaction {
	if dmg.Reaction != nil && dmg.Reaction.Type == t {
		return *dmg.Reaction
	}
	return reaction.Calculate(t, dmg.Source, dmg.SourceAttributes, l, l.randomSource())
}

func (l *Lifeform) react(dmg combat.DMG, m reaction.Match, r reaction.Reaction) {
	units := dmg.Element.Units
	aura := l.auras[m.Aura]
	before := aura.Units()
	if ratio := reaction.ConsumptionRatio(m.Type, m.Aura); ratio > 0 {
		aura.Reduce(units * ratio)
	}
	slog.Debug("reaction triggered",
		"target", l.name,
		"reaction", m.Type.String(),
		"aura", m.Aura.String(),
		"aura_before", before,
		"aura_after", aura.Units())

	switch m.Type {
	case element.Overloaded:
		l.onOverloaded(dmg, r)
	case element.ElectroCharged:
		l.onElectroCharged(dmg, r)
	case element.SuperConduct:
		l.AddEffect(l.superConductID, effect.NewTimedEffect(
			effect.NewStatEffect("Superconduct", physicalRES, attribute.PercentModifier(superConductShred)),
			superConductDuration,
		))
	case element.Frozen:
		l.auras[element.AuraFreeze].Apply(2 * min(units, before))
	case element.Quicken:
		l.auras[element.AuraQuicken].Apply(min(units, before))
	case element.Burning:
		l.auras[element.AuraBurning].Apply(units)
	}
}

func (l *Lifeform) onOverloaded(dmg combat.DMG, r reaction.Reaction) {
	if l.arena == nil {
		return
	}
	blast := combat.NewRawDMG(
		dmg.Source,
		dmg.SourceAttributes,
		HitOverloaded,
		r.AdditionalDamage,
		combat.ElementalInstance{Element: element.Pyro},
		overloadedPoise,
		true,
	)
	blast.Critical = r.Critical
	for _, enemy := range l.arena.EnemiesWithin(l.loc, overloadedRadius) {
		enemy.ReceiveDamage(blast)
	}
}

func (l *Lifeform) onElectroCharged(dmg combat.DMG, r reaction.Reaction) {
	if t, ok := dmg.Element.Element.AuraType(); ok {
		l.auras[t].Apply(dmg.Element.Units)
	}
	tick := combat.NewRawDMG(
		dmg.Source,
		dmg.SourceAttributes,
		HitElectroCharged,
		r.AdditionalDamage,
		combat.ElementalInstance{Element: element.Electro},
		electroChargedPoise,
		false,
	)
	tick.Critical = r.Critical

	if e, ok := l.effects.Get(l.electroChargedID); ok {
		if ec, ok := e.(*ElectroChargedEffect); ok && ec.Active() {
			ec.Refresh(tick)
			return
		}
	}
	l.AddEffect(l.electroChargedID, NewElectroChargedEffect(l, tick))
}

func (l *Lifeform) mitigate(dmg combat.DMG, amount float64) float64 {
	if dmg.Resolved {
		return amount
	}
	def := formula.DefMultiplier(dmg.Source.Level(), dmg.SourceAttributes, l.attrs)
	res := formula.TargetResMultiplier(l.attrs, dmg.Element.Element)
	return amount * def * res
}

func (l *Lifeform) takeDamage(dmg combat.DMG, amount float64, r *reaction.Reaction) {
	l.poise.ReceiveDamage(dmg.Poise)
	l.attrs.HP.SetBaseValue(l.attrs.HP.BaseValue() - attribute.FlatValue(amount))

	slog.Debug("damage received",
		"source", dmg.Source.Name(),
		"hit", dmg.Name,
		"target", l.name,
		"amount", amount,
		"critical", dmg.Critical)
	if l.arena != nil {
		l.arena.record(dmg, l, amount, r)
	}

	if !l.IsAlive() {
		l.Die()
	}
}

func (l *Lifeform) randomSource() rng.Source {
	if l.arena != nil {
		return l.arena.calc.Rng()
	}
	return rng.Fixed{}
}
