package combat

import (
	"log/slog"

	"github.com/udisondev/elemental/internal/attribute"
	"github.com/udisondev/elemental/internal/game/formula"
	"github.com/udisondev/elemental/internal/game/reaction"
	"github.com/udisondev/elemental/internal/rng"
)

// Calculator runs the damage pipeline with its own random source.
type Calculator struct {
	rng rng.Source
}

// NewCalculator creates a calculator drawing crits from src.
func NewCalculator(src rng.Source) *Calculator {
	return &Calculator{rng: src}
}

// Rng returns the calculator's random source.
func (c *Calculator) Rng() rng.Source { return c.rng }

// CalculateDamage turns hit into a resolved DMG against target.
//
// snapshot is the attacker's stats frozen at cast time. The hit's ICD is
// consulted and then advanced; a closed ICD strips the element units but the
// hit still deals damage. Only the first reaction candidate is resolved.
func (c *Calculator) CalculateDamage(hit Hit, attacker Attacker, snapshot *attribute.Set, target Target) DMG {
	applies := hit.ICD == nil || hit.ICD.CanApply()
	if hit.ICD != nil {
		hit.ICD.OnAttacked()
	}
	units := hit.Units
	if !applies {
		units = 0
	}

	targetAttrs := target.Attributes()
	base := formula.InitialDamage(
		snapshot,
		hit.AttackType,
		hit.Element,
		hit.Scaling.Value(snapshot),
		hit.Multiplier,
		hit.BaseMultiplier,
		hit.FlatDMG,
	)
	bonus := formula.DmgBonusMultiplier(snapshot, targetAttrs, hit.AttackType, hit.Element)
	def := formula.DefMultiplier(attacker.Level(), snapshot, targetAttrs)
	res := formula.TargetResMultiplier(targetAttrs, hit.Element)

	out := DMG{
		Source:           attacker,
		SourceAttributes: snapshot,
		Name:             hit.Name,
		AttackType:       hit.AttackType,
		Element:          ElementalInstance{Element: hit.Element, Units: units},
		Poise:            hit.Poise,
		Blunt:            hit.Blunt,
		Resolved:         true,
	}

	if units > 0 {
		if matches := reaction.Matches(hit.Element, target); len(matches) > 0 {
			r := reaction.Calculate(matches[0].Type, attacker, snapshot, target, c.rng)
			out.Reaction = &r

			switch reaction.FamilyOf(r.Type) {
			case reaction.Amplifying:
				base = base*r.OriginalDamageMultiplier + r.AdditionalDamage
			case reaction.Transformative, reaction.Catalyze:
				out.Amount = (base + r.AdditionalDamage) * bonus * def * res
				c.log(out)
				return out
			}
		}
	}

	crit, critical := formula.CriticalDmgMultiplier(c.rng, snapshot, hit.AttackType, hit.Element)
	out.Amount = base * bonus * def * res * crit
	out.Critical = critical
	c.log(out)
	return out
}

func (c *Calculator) log(d DMG) {
	attrs := []any{
		"source", d.Source.Name(),
		"hit", d.Name,
		"amount", d.Amount,
		"element", d.Element.Element.String(),
		"units", d.Element.Units,
		"critical", d.Critical,
	}
	if d.Reaction != nil {
		attrs = append(attrs, "reaction", d.Reaction.Type.String())
	}
	slog.Debug("damage calculated", attrs...)
}
