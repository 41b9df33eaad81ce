package model

import (
	"fmt"
	"log/slog"

	"github.com/udisondev/elemental/internal/attribute"
	"github.com/udisondev/elemental/internal/data"
	"github.com/udisondev/elemental/internal/element"
)

// PlayableTemplate is the static data of a playable character.
type PlayableTemplate struct {
	Name          string
	Quality       data.Quality
	Element       element.ElementType
	WeaponType    WeaponType
	AscensionStat data.AscensionStat

	// Level 1 base stats.
	BaseHP  attribute.FlatValue
	BaseATK attribute.FlatValue
	BaseDEF attribute.FlatValue

	// Stats granted at full ascension.
	MaxAscensionHP  attribute.FlatValue
	MaxAscensionATK attribute.FlatValue
	MaxAscensionDEF attribute.FlatValue
}

// Playable is a team member: a Lifeform with rarity, ascension and a weapon.
type Playable struct {
	*Lifeform

	template  PlayableTemplate
	ascension data.AscensionLevel
	weapon    *Weapon

	ascensionID attribute.ModifierID
}

// NewPlayable builds a character at level and ascension. Both are clamped
// into their valid ranges; HP starts full.
func NewPlayable(t PlayableTemplate, level int, ascension data.AscensionLevel) *Playable {
	level = data.SanitizeLevel(level)
	ascension = data.SanitizeAscension(ascension, level)

	levelMul := attribute.FlatValue(data.BaseStatLevelMultiplier(level, t.Quality))
	ascMul := attribute.FlatValue(data.BaseStatAscensionMultiplier(ascension))

	l := NewLifeform(t.Name, level, 0, 0, 0)
	l.playable = true
	l.attrs.MaxHP.SetBaseValue(t.BaseHP*levelMul + t.MaxAscensionHP*ascMul)
	l.attrs.ATK.SetBaseValue(t.BaseATK*levelMul + t.MaxAscensionATK*ascMul)
	l.attrs.DEF.SetBaseValue(t.BaseDEF*levelMul + t.MaxAscensionDEF*ascMul)

	p := &Playable{
		Lifeform:    l,
		template:    t,
		ascension:   ascension,
		ascensionID: attribute.NewModifierID(),
	}

	value := data.BonusStatBaseValue(t.Quality, t.AscensionStat) * data.BonusStatAscensionMultiplier(ascension)
	stat, mod := p.ascensionBonus(t.AscensionStat, value)
	stat.Add(p.ascensionID, mod)

	l.attrs.HP.SetBaseValue(l.attrs.MaxHP.Value())
	return p
}

func (p *Playable) Element() element.ElementType        { return p.template.Element }
func (p *Playable) WeaponType() WeaponType              { return p.template.WeaponType }
func (p *Playable) Quality() data.Quality               { return p.template.Quality }
func (p *Playable) AscensionLevel() data.AscensionLevel { return p.ascension }
func (p *Playable) Weapon() *Weapon                     { return p.weapon }

// ascensionBonus routes the ascension stat onto the stat set. ATK, Max HP
// and DEF grow by a percentage of their base, Elemental Mastery is flat,
// everything else adds percentage points.
func (p *Playable) ascensionBonus(s data.AscensionStat, value float64) (attribute.Modifiable, attribute.Modifier) {
	set := p.attrs
	pct := attribute.PercentModifier(attribute.Percent(value))
	switch s {
	case data.AscensionPhysicalDMGBonus:
		return set.ElementalDMG.At(element.Physical).Bonus, pct
	case data.AscensionAnemoDMGBonus:
		return set.ElementalDMG.At(element.Anemo).Bonus, pct
	case data.AscensionGeoDMGBonus:
		return set.ElementalDMG.At(element.Geo).Bonus, pct
	case data.AscensionElectroDMGBonus:
		return set.ElementalDMG.At(element.Electro).Bonus, pct
	case data.AscensionHydroDMGBonus:
		return set.ElementalDMG.At(element.Hydro).Bonus, pct
	case data.AscensionPyroDMGBonus:
		return set.ElementalDMG.At(element.Pyro).Bonus, pct
	case data.AscensionCryoDMGBonus:
		return set.ElementalDMG.At(element.Cryo).Bonus, pct
	case data.AscensionDendroDMGBonus:
		return set.ElementalDMG.At(element.Dendro).Bonus, pct
	case data.AscensionATK:
		return set.ATK, pct
	case data.AscensionMaxHP:
		return set.MaxHP, pct
	case data.AscensionDEF:
		return set.DEF, pct
	case data.AscensionEnergyRecharge:
		return set.EnergyRecharge, pct
	case data.AscensionElementalMastery:
		return set.ElementalMastery, attribute.FlatModifier(attribute.FlatValue(value))
	case data.AscensionHealingBonus:
		return set.Healing, pct
	case data.AscensionCRITRate:
		return set.CRIT.Rate, pct
	case data.AscensionCRITDamage:
		return set.CRIT.DMG, pct
	default:
		panic(fmt.Sprintf("model: unknown ascension stat %d", uint8(s)))
	}
}

// Equip wields w, unequipping the current weapon first. A weapon of another
// class is rejected with ErrWeaponType and nothing changes.
func (p *Playable) Equip(w *Weapon) error {
	if w.Type != p.template.WeaponType {
		return fmt.Errorf("%w: %s cannot wield %s (%s)", ErrWeaponType, p.name, w.Name, w.Type)
	}
	p.Unequip()

	p.weapon = w
	p.attrs.ATK.SetBaseValue(p.attrs.ATK.BaseValue() + w.ATK)
	if w.Secondary != nil {
		w.Secondary.apply(p.attrs)
	}
	if w.Passive != nil {
		p.AddEffect(w.passiveID, w.Passive)
	}
	slog.Debug("weapon equipped", "playable", p.name, "weapon", w.Name)
	return nil
}

// Unequip removes the current weapon and returns it, or nil if none.
func (p *Playable) Unequip() *Weapon {
	w := p.weapon
	if w == nil {
		return nil
	}
	if w.Passive != nil {
		p.RemoveEffect(w.passiveID)
	}
	if w.Secondary != nil {
		w.Secondary.remove(p.attrs)
	}
	p.attrs.ATK.SetBaseValue(p.attrs.ATK.BaseValue() - w.ATK)
	p.weapon = nil
	slog.Debug("weapon unequipped", "playable", p.name, "weapon", w.Name)
	return w
}
