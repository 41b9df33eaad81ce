package attribute

import (
	"fmt"
	"strings"

	"github.com/udisondev/elemental/internal/element"
)

const (
	defaultCritRate       Percent = 5
	defaultCritDMG        Percent = 50
	defaultEnergyRecharge Percent = 100
	defaultStamina                = 120
)

// Set aggregates every combat stat of one combatant.
//
// HP is not clamped to MaxHP here; callers decide. A combatant is dead
// once HP's base value drops to zero.
type Set struct {
	HP               *Attribute
	MaxHP            *Attribute
	ATK              *Attribute
	DEF              *Attribute
	ElementalMastery *Attribute
	CRIT             Crit
	EnergyRecharge   *PercentAttribute
	Healing          *PercentAttribute
	IncomingHealing  *PercentAttribute

	RES          Batch[element.ElementType, *PercentAttribute]
	DEFIgnore    *PercentAttribute
	DEFReduction *PercentAttribute
	DMGReduction *PercentAttribute

	DMG           DmgBonus
	ElementalDMG  Batch[element.ElementType, DmgBonus]
	ElementalCRIT Batch[element.ElementType, Crit]
	ReactionDMG   Batch[element.ReactionType, DmgBonus]
	ReactionCRIT  Batch[element.ReactionType, Crit]
	AttackDMG     Batch[element.AttackType, DmgBonus]
	AttackCRIT    Batch[element.AttackType, Crit]

	NormalAttackLevelBoost *Attribute
	SkillLevelBoost        *Attribute
	BurstLevelBoost        *Attribute

	Stamina                                 *Attribute
	ChargedAttackStaminaConsumptionDecrease *PercentAttribute
	StaminaConsumptionDecrease              *PercentAttribute
	GlidingStaminaConsumptionDecrease       *PercentAttribute
	ATKSPD                                  *PercentAttribute
	MovementSPD                             *PercentAttribute
	ShieldStrength                          *PercentAttribute
}

// NewSet creates a stat set with the given base HP, ATK and DEF.
// HP starts full.
func NewSet(baseHP, baseATK, baseDEF FlatValue) *Set {
	zeroPercent := func(element.ElementType) *PercentAttribute { return NewPercentAttribute(0) }

	return &Set{
		HP:               NewAttribute(baseHP),
		MaxHP:            NewAttribute(baseHP),
		ATK:              NewAttribute(baseATK),
		DEF:              NewAttribute(baseDEF),
		ElementalMastery: NewAttribute(0),
		CRIT:             NewCrit(defaultCritRate, defaultCritDMG),
		EnergyRecharge:   NewPercentAttribute(defaultEnergyRecharge),
		Healing:          NewPercentAttribute(0),
		IncomingHealing:  NewPercentAttribute(0),

		RES:          NewBatch(element.ElementCount, zeroPercent),
		DEFIgnore:    NewPercentAttribute(0),
		DEFReduction: NewPercentAttribute(0),
		DMGReduction: NewPercentAttribute(0),

		DMG:           NewDmgBonus(),
		ElementalDMG:  NewBatch(element.ElementCount, dmgBonusFor[element.ElementType]),
		ElementalCRIT: NewBatch(element.ElementCount, critFor[element.ElementType]),
		ReactionDMG:   NewBatch(element.ReactionCount, dmgBonusFor[element.ReactionType]),
		ReactionCRIT:  NewBatch(element.ReactionCount, critFor[element.ReactionType]),
		AttackDMG:     NewBatch(element.AttackCount, dmgBonusFor[element.AttackType]),
		AttackCRIT:    NewBatch(element.AttackCount, critFor[element.AttackType]),

		NormalAttackLevelBoost: NewAttribute(0),
		SkillLevelBoost:        NewAttribute(0),
		BurstLevelBoost:        NewAttribute(0),

		Stamina:                                 NewAttribute(defaultStamina),
		ChargedAttackStaminaConsumptionDecrease: NewPercentAttribute(0),
		StaminaConsumptionDecrease:              NewPercentAttribute(0),
		GlidingStaminaConsumptionDecrease:       NewPercentAttribute(0),
		ATKSPD:                                  NewPercentAttribute(0),
		MovementSPD:                             NewPercentAttribute(0),
		ShieldStrength:                          NewPercentAttribute(0),
	}
}

func dmgBonusFor[K Key](K) DmgBonus { return NewDmgBonus() }
func critFor[K Key](K) Crit         { return NewCrit(0, 0) }

// Snapshot returns a deep, value-only copy: every stat's base becomes its
// current value, and no modifier or observer is shared with s.
func (s *Set) Snapshot() *Set {
	pct := (*PercentAttribute).Snapshot
	return &Set{
		HP:               s.HP.Snapshot(),
		MaxHP:            s.MaxHP.Snapshot(),
		ATK:              s.ATK.Snapshot(),
		DEF:              s.DEF.Snapshot(),
		ElementalMastery: s.ElementalMastery.Snapshot(),
		CRIT:             s.CRIT.Snapshot(),
		EnergyRecharge:   s.EnergyRecharge.Snapshot(),
		Healing:          s.Healing.Snapshot(),
		IncomingHealing:  s.IncomingHealing.Snapshot(),

		RES:          s.RES.Map(pct),
		DEFIgnore:    s.DEFIgnore.Snapshot(),
		DEFReduction: s.DEFReduction.Snapshot(),
		DMGReduction: s.DMGReduction.Snapshot(),

		DMG:           s.DMG.Snapshot(),
		ElementalDMG:  s.ElementalDMG.Map(DmgBonus.Snapshot),
		ElementalCRIT: s.ElementalCRIT.Map(Crit.Snapshot),
		ReactionDMG:   s.ReactionDMG.Map(DmgBonus.Snapshot),
		ReactionCRIT:  s.ReactionCRIT.Map(Crit.Snapshot),
		AttackDMG:     s.AttackDMG.Map(DmgBonus.Snapshot),
		AttackCRIT:    s.AttackCRIT.Map(Crit.Snapshot),

		NormalAttackLevelBoost: s.NormalAttackLevelBoost.Snapshot(),
		SkillLevelBoost:        s.SkillLevelBoost.Snapshot(),
		BurstLevelBoost:        s.BurstLevelBoost.Snapshot(),

		Stamina:                                 s.Stamina.Snapshot(),
		ChargedAttackStaminaConsumptionDecrease: s.ChargedAttackStaminaConsumptionDecrease.Snapshot(),
		StaminaConsumptionDecrease:              s.StaminaConsumptionDecrease.Snapshot(),
		GlidingStaminaConsumptionDecrease:       s.GlidingStaminaConsumptionDecrease.Snapshot(),
		ATKSPD:                                  s.ATKSPD.Snapshot(),
		MovementSPD:                             s.MovementSPD.Snapshot(),
		ShieldStrength:                          s.ShieldStrength.Snapshot(),
	}
}

// Stat resolves a stat path used by configuration files.
//
// Plain paths name a single stat ("atk", "em", "crit_rate"). Keyed paths
// select one entry of a per-element, per-attack or per-reaction stat:
// "res:pyro", "elemental_dmg:hydro", "attack_dmg:skill",
// "reaction_dmg:overloaded".
func (s *Set) Stat(path string) (Modifiable, error) {
	name, key, keyed := strings.Cut(strings.ToLower(strings.TrimSpace(path)), ":")
	if !keyed {
		if get, ok := plainStats[name]; ok {
			return get(s), nil
		}
		return nil, fmt.Errorf("%w: %q", ErrUnknownStat, path)
	}

	m, err := s.keyedStat(name, key)
	if err != nil {
		return nil, fmt.Errorf("stat %q: %w", path, err)
	}
	return m, nil
}

var plainStats = map[string]func(*Set) Modifiable{
	"hp":               func(s *Set) Modifiable { return s.HP },
	"max_hp":           func(s *Set) Modifiable { return s.MaxHP },
	"atk":              func(s *Set) Modifiable { return s.ATK },
	"def":              func(s *Set) Modifiable { return s.DEF },
	"em":               func(s *Set) Modifiable { return s.ElementalMastery },
	"crit_rate":        func(s *Set) Modifiable { return s.CRIT.Rate },
	"crit_dmg":         func(s *Set) Modifiable { return s.CRIT.DMG },
	"er":               func(s *Set) Modifiable { return s.EnergyRecharge },
	"healing":          func(s *Set) Modifiable { return s.Healing },
	"incoming_healing": func(s *Set) Modifiable { return s.IncomingHealing },
	"def_ignore":       func(s *Set) Modifiable { return s.DEFIgnore },
	"def_reduction":    func(s *Set) Modifiable { return s.DEFReduction },
	"dmg_reduction":    func(s *Set) Modifiable { return s.DMGReduction },
	"dmg_bonus":        func(s *Set) Modifiable { return s.DMG.Bonus },
	"dmg_increase":     func(s *Set) Modifiable { return s.DMG.Increase },
	"normal_level":     func(s *Set) Modifiable { return s.NormalAttackLevelBoost },
	"skill_level":      func(s *Set) Modifiable { return s.SkillLevelBoost },
	"burst_level":      func(s *Set) Modifiable { return s.BurstLevelBoost },
	"stamina":          func(s *Set) Modifiable { return s.Stamina },
	"atk_spd":          func(s *Set) Modifiable { return s.ATKSPD },
	"movement_spd":     func(s *Set) Modifiable { return s.MovementSPD },
	"shield_strength":  func(s *Set) Modifiable { return s.ShieldStrength },
	"stamina_decrease": func(s *Set) Modifiable { return s.StaminaConsumptionDecrease },
	"charged_stamina":  func(s *Set) Modifiable { return s.ChargedAttackStaminaConsumptionDecrease },
	"gliding_stamina":  func(s *Set) Modifiable { return s.GlidingStaminaConsumptionDecrease },
}

func (s *Set) keyedStat(name, key string) (Modifiable, error) {
	switch name {
	case "res", "elemental_dmg", "elemental_dmg_increase", "elemental_crit_rate", "elemental_crit_dmg":
		e, err := element.ParseElement(key)
		if err != nil {
			return nil, err
		}
		switch name {
		case "res":
			return s.RES.At(e), nil
		case "elemental_dmg":
			return s.ElementalDMG.At(e).Bonus, nil
		case "elemental_dmg_increase":
			return s.ElementalDMG.At(e).Increase, nil
		case "elemental_crit_rate":
			return s.ElementalCRIT.At(e).Rate, nil
		default:
			return s.ElementalCRIT.At(e).DMG, nil
		}

	case "attack_dmg", "attack_dmg_increase", "attack_crit_rate", "attack_crit_dmg":
		a, err := element.ParseAttack(key)
		if err != nil {
			return nil, err
		}
		switch name {
		case "attack_dmg":
			return s.AttackDMG.At(a).Bonus, nil
		case "attack_dmg_increase":
			return s.AttackDMG.At(a).Increase, nil
		case "attack_crit_rate":
			return s.AttackCRIT.At(a).Rate, nil
		default:
			return s.AttackCRIT.At(a).DMG, nil
		}

	case "reaction_dmg", "reaction_dmg_increase", "reaction_crit_rate", "reaction_crit_dmg":
		r, err := element.ParseReaction(key)
		if err != nil {
			return nil, err
		}
		switch name {
		case "reaction_dmg":
			return s.ReactionDMG.At(r).Bonus, nil
		case "reaction_dmg_increase":
			return s.ReactionDMG.At(r).Increase, nil
		case "reaction_crit_rate":
			return s.ReactionCRIT.At(r).Rate, nil
		default:
			return s.ReactionCRIT.At(r).DMG, nil
		}
	}
	return nil, ErrUnknownStat
}
