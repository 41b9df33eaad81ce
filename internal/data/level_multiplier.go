package data

import (
	"fmt"
	"math"
	"strings"
)

// MaxLevel is the highest character and weapon level.
const MaxLevel = 90

// Quality is the rarity of a character or weapon.
type Quality uint8

const (
	OneStar Quality = iota + 1
	TwoStars
	ThreeStars
	FourStars
	FiveStars
)

func (q Quality) String() string {
	if q >= OneStar && q <= FiveStars {
		return fmt.Sprintf("%d-star", uint8(q))
	}
	return fmt.Sprintf("quality(%d)", uint8(q))
}

// AscensionLevel is the ascension tier of a character or weapon.
type AscensionLevel uint8

const (
	AscensionNone AscensionLevel = iota
	AscensionFirst
	AscensionSecond
	AscensionThird
	AscensionFourth
	AscensionFifth
	AscensionSixth
)

// AscensionStat is the bonus stat a character gains while ascending.
type AscensionStat uint8

const (
	AscensionPhysicalDMGBonus AscensionStat = iota
	AscensionAnemoDMGBonus
	AscensionGeoDMGBonus
	AscensionElectroDMGBonus
	AscensionHydroDMGBonus
	AscensionPyroDMGBonus
	AscensionCryoDMGBonus
	AscensionDendroDMGBonus
	AscensionATK
	AscensionMaxHP
	AscensionDEF
	AscensionEnergyRecharge
	AscensionElementalMastery
	AscensionHealingBonus
	AscensionCRITRate
	AscensionCRITDamage

	// AscensionStatCount is the number of ascension stats.
	AscensionStatCount = int(AscensionCRITDamage) + 1
)

var ascensionStatNames = [AscensionStatCount]string{
	AscensionPhysicalDMGBonus: "physical_dmg",
	AscensionAnemoDMGBonus:    "anemo_dmg",
	AscensionGeoDMGBonus:      "geo_dmg",
	AscensionElectroDMGBonus:  "electro_dmg",
	AscensionHydroDMGBonus:    "hydro_dmg",
	AscensionPyroDMGBonus:     "pyro_dmg",
	AscensionCryoDMGBonus:     "cryo_dmg",
	AscensionDendroDMGBonus:   "dendro_dmg",
	AscensionATK:              "atk",
	AscensionMaxHP:            "max_hp",
	AscensionDEF:              "def",
	AscensionEnergyRecharge:   "er",
	AscensionElementalMastery: "em",
	AscensionHealingBonus:     "healing",
	AscensionCRITRate:         "crit_rate",
	AscensionCRITDamage:       "crit_dmg",
}

func (s AscensionStat) String() string {
	if int(s) < AscensionStatCount {
		return ascensionStatNames[s]
	}
	return fmt.Sprintf("ascension_stat(%d)", uint8(s))
}

// ParseAscensionStat resolves a case-insensitive ascension stat name.
func ParseAscensionStat(name string) (AscensionStat, error) {
	for i, n := range ascensionStatNames {
		if strings.EqualFold(n, name) {
			return AscensionStat(i), nil
		}
	}
	return 0, fmt.Errorf("unknown ascension stat %q", name)
}

// PlayerLevelMultiplier returns the reaction level multiplier for a
// playable attacker. Levels outside the table are clamped.
func PlayerLevelMultiplier(level int) float64 {
	return levelMultiplier(level, &playerLevelMultipliers)
}

// EnvironmentLevelMultiplier returns the reaction level multiplier for a
// non-playable attacker.
func EnvironmentLevelMultiplier(level int) float64 {
	return levelMultiplier(level, &environmentLevelMultipliers)
}

func levelMultiplier(level int, table *[levelTableSize]float64) float64 {
	if level < 1 {
		return table[0]
	}
	if level >= len(table) {
		return table[len(table)-1]
	}
	return table[level]
}

// BaseStatLevelMultiplier returns the level curve applied to a character's
// base HP, ATK and DEF. Four-star and below use the linear curve; five-star
// adds a quadratic correction. Both are rounded to three decimals.
func BaseStatLevelMultiplier(level int, q Quality) float64 {
	linear := 1 + (9.17431-1)/(100-1)*float64(level-1)
	if q == FiveStars {
		correction := -0.00168 + 0.0000748163*math.Pow(0.761486*(5.11365+float64(level)), 2)
		return round3(linear + correction)
	}
	return round3(linear)
}

// BaseStatAscensionMultiplier returns the share of the max-ascension base
// stat bonus unlocked at the given tier.
func BaseStatAscensionMultiplier(a AscensionLevel) float64 {
	switch a {
	case AscensionNone:
		return 0
	case AscensionFirst:
		return 38.0 / 182.0
	case AscensionSecond:
		return 65.0 / 182.0
	case AscensionThird:
		return 101.0 / 182.0
	case AscensionFourth:
		return 128.0 / 182.0
	case AscensionFifth:
		return 155.0 / 182.0
	default:
		return 1
	}
}

// BonusStatAscensionMultiplier returns how many ascension bonus steps are
// unlocked at the given tier.
func BonusStatAscensionMultiplier(a AscensionLevel) float64 {
	switch a {
	case AscensionNone, AscensionFirst:
		return 0
	case AscensionSecond:
		return 1
	case AscensionThird, AscensionFourth:
		return 2
	case AscensionFifth:
		return 3
	default:
		return 4
	}
}

// BonusStatBaseValue returns one ascension bonus step for a stat.
// Percentage stats are returned in percentage points; Elemental Mastery is flat.
// Panics for a stat the rarity never rolls.
func BonusStatBaseValue(q Quality, s AscensionStat) float64 {
	if q == FiveStars {
		return bonusStatBaseValue5Star(s)
	}
	return bonusStatBaseValue4Star(s)
}

func bonusStatBaseValue4Star(s AscensionStat) float64 {
	switch s {
	case AscensionPhysicalDMGBonus, AscensionDEF:
		return 7.5
	case AscensionAnemoDMGBonus, AscensionGeoDMGBonus, AscensionElectroDMGBonus,
		AscensionHydroDMGBonus, AscensionPyroDMGBonus, AscensionCryoDMGBonus,
		AscensionDendroDMGBonus, AscensionATK, AscensionMaxHP:
		return 6
	case AscensionEnergyRecharge:
		return 6.7
	case AscensionElementalMastery:
		return 24
	default:
		panic(fmt.Sprintf("data: no 4-star ascension value for stat %s", s))
	}
}

func bonusStatBaseValue5Star(s AscensionStat) float64 {
	switch s {
	case AscensionPhysicalDMGBonus, AscensionDEF:
		return 9
	case AscensionAnemoDMGBonus, AscensionGeoDMGBonus, AscensionElectroDMGBonus,
		AscensionHydroDMGBonus, AscensionPyroDMGBonus, AscensionCryoDMGBonus,
		AscensionDendroDMGBonus, AscensionATK, AscensionMaxHP:
		return 7.2
	case AscensionEnergyRecharge:
		return 8
	case AscensionElementalMastery:
		return 28.8
	case AscensionHealingBonus:
		return 5.5
	case AscensionCRITRate:
		return 4.8
	case AscensionCRITDamage:
		return 9.6
	default:
		panic(fmt.Sprintf("data: no 5-star ascension value for stat %s", s))
	}
}

// SanitizeLevel clamps a level into [1, MaxLevel].
func SanitizeLevel(level int) int {
	return max(1, min(MaxLevel, level))
}

// SanitizeAscension clamps an ascension tier into the window allowed at
// the given level.
func SanitizeAscension(a AscensionLevel, level int) AscensionLevel {
	lo, hi := AscensionNone, AscensionSixth
	switch {
	case level <= 20:
		lo, hi = AscensionNone, AscensionFirst
	case level <= 40:
		lo, hi = AscensionFirst, AscensionSecond
	case level <= 50:
		lo, hi = AscensionSecond, AscensionThird
	case level <= 60:
		lo, hi = AscensionThird, AscensionFourth
	case level <= 70:
		lo, hi = AscensionFourth, AscensionFifth
	case level <= 80:
		lo, hi = AscensionFifth, AscensionSixth
	case level <= MaxLevel:
		lo, hi = AscensionSixth, AscensionSixth
	}
	return max(lo, min(a, hi))
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
