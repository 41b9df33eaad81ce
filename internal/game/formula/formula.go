// Package formula holds the closed-form damage multipliers shared by the
// reaction engine and the damage pipeline.
package formula

import (
	"github.com/udisondev/elemental/internal/attribute"
	"github.com/udisondev/elemental/internal/element"
	"github.com/udisondev/elemental/internal/rng"
)

// resBreakpoint is where high resistance switches to the diminishing branch.
const resBreakpoint = 0.75

// InitialDamage is the pre-multiplier damage of an ability:
//
//	scaling × multiplier × baseMultiplier + flat increases + additional
//
// multiplier is the talent percentage (100 = 1×); baseMultiplier is a bonus
// on top of it (0 = identity).
func InitialDamage(
	attacker *attribute.Set,
	attackType element.AttackType,
	elem element.ElementType,
	scaling attribute.FlatValue,
	multiplier attribute.Percent,
	baseMultiplier attribute.Percent,
	additional float64,
) float64 {
	base := float64(scaling) * multiplier.Fraction() * baseMultiplier.Multiplier()
	return base +
		float64(attacker.DMG.Increase.Value()) +
		float64(attacker.AttackDMG.At(attackType).Increase.Value()) +
		float64(attacker.ElementalDMG.At(elem).Increase.Value()) +
		additional
}

// DmgBonusMultiplier returns 1 + DMG% + attack-type DMG% + elemental DMG%
// minus the target's DMG reduction.
func DmgBonusMultiplier(attacker, target *attribute.Set, attackType element.AttackType, elem element.ElementType) float64 {
	bonus := attacker.DMG.Bonus.Value().
		Add(attacker.AttackDMG.At(attackType).Bonus.Value()).
		Add(attacker.ElementalDMG.At(elem).Bonus.Value()).
		Sub(target.DMGReduction.Value())
	return bonus.Multiplier()
}

// DefMultiplier returns the share of damage that passes the target's DEF:
//
//	1 − d/(d + 5·level + 500),  d = DEF × (1 − DEF ignore) × (1 − DEF reduction)
func DefMultiplier(attackerLevel int, attacker, target *attribute.Set) float64 {
	d := float64(target.DEF.Value()) *
		(1 - attacker.DEFIgnore.Value().Fraction()) *
		(1 - attacker.DEFReduction.Value().Fraction())
	return 1 - d/(d+5*float64(attackerLevel)+500)
}

// ResMultiplier converts a resistance into a damage factor. Negative RES is
// halved, RES at or above 75% diminishes. Both branches meet at 0.75.
func ResMultiplier(res attribute.Percent) float64 {
	r := res.Fraction()
	switch {
	case r < 0:
		return 1 - r/2
	case r < resBreakpoint:
		return 1 - r
	default:
		return 1 / (4*r + 1)
	}
}

// TargetResMultiplier reads the target's RES for elem and converts it.
func TargetResMultiplier(target *attribute.Set, elem element.ElementType) float64 {
	return ResMultiplier(target.RES.At(elem).Value())
}

// CriticalDmgMultiplier rolls a critical hit against the summed CRIT Rate.
// A failed roll returns exactly 1; a successful one 1 + summed CRIT DMG.
func CriticalDmgMultiplier(src rng.Source, attacker *attribute.Set, attackType element.AttackType, elem element.ElementType) (float64, bool) {
	rate := attacker.CRIT.Rate.Value().
		Add(attacker.ElementalCRIT.At(elem).Rate.Value()).
		Add(attacker.AttackCRIT.At(attackType).Rate.Value())
	if !src.CriticalCheck(rate) {
		return 1, false
	}

	dmg := attacker.CRIT.DMG.Value().
		Add(attacker.ElementalCRIT.At(elem).DMG.Value()).
		Add(attacker.AttackCRIT.At(attackType).DMG.Value())
	return dmg.Multiplier(), true
}

// Elemental Mastery bonuses, as fractions.

func AmplifyingEMBonus(em attribute.FlatValue) float64 {
	return emRatio(2.78, em, 1400)
}

func TransformativeEMBonus(em attribute.FlatValue) float64 {
	return emRatio(16, em, 2000)
}

func CatalyzeEMBonus(em attribute.FlatValue) float64 {
	return emRatio(5, em, 1200)
}

func emRatio(scale float64, em attribute.FlatValue, k float64) float64 {
	if em <= 0 {
		return 0
	}
	return scale * float64(em) / (float64(em) + k)
}
