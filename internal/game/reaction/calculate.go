package reaction

import (
	"log/slog"

	"github.com/udisondev/elemental/internal/attribute"
	"github.com/udisondev/elemental/internal/data"
	"github.com/udisondev/elemental/internal/element"
	"github.com/udisondev/elemental/internal/game/formula"
	"github.com/udisondev/elemental/internal/rng"
)

// Reaction is the resolved magnitude of one reaction.
//
// Amplifying reactions scale the triggering hit by OriginalDamageMultiplier.
// Transformative and catalyze reactions report their own damage in
// AdditionalDamage and leave the multiplier at 1.
type Reaction struct {
	Type                     element.ReactionType
	OriginalDamageMultiplier float64
	AdditionalDamage         float64
	Critical                 bool
}

var transformativeMultipliers = map[element.ReactionType]float64{
	element.Burning:        0.25,
	element.HydroSwirl:     0.6,
	element.PyroSwirl:      0.6,
	element.ElectroSwirl:   0.6,
	element.CryoSwirl:      0.6,
	element.SuperConduct:   1.5,
	element.ElectroCharged: 2.0,
	element.Bloom:          2.0,
	element.Overloaded:     2.75,
	element.Burgeon:        3.0,
	element.Hyperbloom:     3.0,
	element.Shatter:        3.0,
}

// AmplifyingMultiplier returns the directional base multiplier of an
// amplifying reaction (2 for Hydro→Pyro and Pyro→Cryo, 1.5 for the reverse).
func AmplifyingMultiplier(r element.ReactionType) float64 {
	switch r {
	case element.VaporizeHtP, element.MeltPtC:
		return 2
	case element.VaporizePtH, element.MeltCtP:
		return 1.5
	default:
		return 1
	}
}

// TransformativeMultiplier returns the fixed multiplier of a transformative
// reaction, or 0 for any other reaction.
func TransformativeMultiplier(r element.ReactionType) float64 {
	return transformativeMultipliers[r]
}

// CatalyzeMultiplier returns 1.15 for Aggravate and 1.25 for Spread.
func CatalyzeMultiplier(r element.ReactionType) float64 {
	switch r {
	case element.Aggravate:
		return 1.15
	case element.Spread:
		return 1.25
	default:
		return 1
	}
}

// LevelMultiplier picks the player or environment curve for src.
func LevelMultiplier(src Source) float64 {
	if src.IsPlayable() {
		return data.PlayerLevelMultiplier(src.Level())
	}
	return data.EnvironmentLevelMultiplier(src.Level())
}

// Calculate resolves the magnitude of r triggered by src (with its frozen
// stats snapshot) on target. Transformative reactions roll their own crit
// against the snapshot's reaction CRIT.
func Calculate(r element.ReactionType, src Source, snapshot *attribute.Set, target Target, roll rng.Source) Reaction {
	bonus := snapshot.ReactionDMG.At(r).Bonus.Value().Fraction()
	increase := float64(snapshot.ReactionDMG.At(r).Increase.Value())
	em := snapshot.ElementalMastery.Value()

	out := Reaction{Type: r, OriginalDamageMultiplier: 1}

	switch FamilyOf(r) {
	case Amplifying:
		out.OriginalDamageMultiplier = AmplifyingMultiplier(r) * (1 + formula.AmplifyingEMBonus(em) + bonus)
		out.AdditionalDamage = increase

	case Transformative:
		base := TransformativeMultiplier(r) * LevelMultiplier(src) * (1 + formula.TransformativeEMBonus(em) + bonus)
		dmg := (base + increase) * formula.TargetResMultiplier(target.Attributes(), ElementOf(r))

		crit := snapshot.ReactionCRIT.At(r)
		if roll.CriticalCheck(crit.Rate.Value()) {
			dmg *= crit.DMG.Value().Multiplier()
			out.Critical = true
		}
		out.AdditionalDamage = dmg

	case Catalyze:
		out.AdditionalDamage = CatalyzeMultiplier(r) * LevelMultiplier(src) * (1 + formula.CatalyzeEMBonus(em) + bonus)

	case Other:
	}

	slog.Debug("reaction calculated",
		"reaction", r.String(),
		"multiplier", out.OriginalDamageMultiplier,
		"additional", out.AdditionalDamage,
		"critical", out.Critical)

	return out
}
