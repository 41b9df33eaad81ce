package model

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/udisondev/elemental/internal/attribute"
	"github.com/udisondev/elemental/internal/element"
	"github.com/udisondev/elemental/internal/game/effect"
)

// WeaponType is the weapon class a playable can wield.
type WeaponType uint8

const (
	Sword WeaponType = iota
	Claymore
	Polearm
	Catalyst
	Bow

	// WeaponTypeCount is the number of weapon classes.
	WeaponTypeCount = int(Bow) + 1
)

var weaponTypeNames = [WeaponTypeCount]string{
	Sword:    "sword",
	Claymore: "claymore",
	Polearm:  "polearm",
	Catalyst: "catalyst",
	Bow:      "bow",
}

func (w WeaponType) String() string {
	if int(w) < WeaponTypeCount {
		return weaponTypeNames[w]
	}
	return fmt.Sprintf("weapon(%d)", uint8(w))
}

// ParseWeaponType resolves a case-insensitive weapon class name.
func ParseWeaponType(name string) (WeaponType, error) {
	for i, n := range weaponTypeNames {
		if strings.EqualFold(n, name) {
			return WeaponType(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownWeaponType, name)
}

// SecondaryStatType is the stat a weapon substat raises.
type SecondaryStatType uint8

const (
	SecondaryATK SecondaryStatType = iota
	SecondaryDEF
	SecondaryMaxHP
	SecondaryElementalMastery
	SecondaryEnergyRecharge
	SecondaryCRITRate
	SecondaryCRITDamage
	SecondaryPhysicalDMGBonus

	// SecondaryStatCount is the number of substat kinds.
	SecondaryStatCount = int(SecondaryPhysicalDMGBonus) + 1
)

var secondaryStatNames = [SecondaryStatCount]string{
	SecondaryATK:              "atk",
	SecondaryDEF:              "def",
	SecondaryMaxHP:            "max_hp",
	SecondaryElementalMastery: "em",
	SecondaryEnergyRecharge:   "er",
	SecondaryCRITRate:         "crit_rate",
	SecondaryCRITDamage:       "crit_dmg",
	SecondaryPhysicalDMGBonus: "physical_dmg",
}

func (s SecondaryStatType) String() string {
	if int(s) < SecondaryStatCount {
		return secondaryStatNames[s]
	}
	return fmt.Sprintf("secondary(%d)", uint8(s))
}

// ParseSecondaryStatType resolves a case-insensitive substat name.
func ParseSecondaryStatType(name string) (SecondaryStatType, error) {
	for i, n := range secondaryStatNames {
		if strings.EqualFold(n, name) {
			return SecondaryStatType(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSecondaryStat, name)
}

// SecondaryStat is a weapon substat. Value is in percentage points except
// for Elemental Mastery, which is flat.
type SecondaryStat struct {
	Type  SecondaryStatType
	Value float64

	id attribute.ModifierID
}

// NewSecondaryStat creates a substat with its own modifier id.
func NewSecondaryStat(t SecondaryStatType, value float64) *SecondaryStat {
	return &SecondaryStat{Type: t, Value: value, id: attribute.NewModifierID()}
}

// route maps the substat onto a stat of set. Panics on an unknown type.
func (s *SecondaryStat) route(set *attribute.Set) (attribute.Modifiable, attribute.Modifier) {
	pct := attribute.PercentModifier(attribute.Percent(s.Value))
	switch s.Type {
	case SecondaryATK:
		return set.ATK, pct
	case SecondaryDEF:
		return set.DEF, pct
	case SecondaryMaxHP:
		return set.MaxHP, pct
	case SecondaryElementalMastery:
		return set.ElementalMastery, attribute.FlatModifier(attribute.FlatValue(s.Value))
	case SecondaryEnergyRecharge:
		return set.EnergyRecharge, pct
	case SecondaryCRITRate:
		return set.CRIT.Rate, pct
	case SecondaryCRITDamage:
		return set.CRIT.DMG, pct
	case SecondaryPhysicalDMGBonus:
		return set.ElementalDMG.At(element.Physical).Bonus, pct
	default:
		panic(fmt.Sprintf("model: unknown secondary stat type %d", uint8(s.Type)))
	}
}

func (s *SecondaryStat) apply(set *attribute.Set) {
	stat, mod := s.route(set)
	stat.Add(s.id, mod)
}

func (s *SecondaryStat) remove(set *attribute.Set) {
	stat, _ := s.route(set)
	stat.Remove(s.id)
}

// Weapon adds base ATK, an optional substat and an optional passive to the
// playable that wields it. A weapon is wielded by one playable at a time.
type Weapon struct {
	Name      string
	Type      WeaponType
	ATK       attribute.FlatValue
	Secondary *SecondaryStat
	Passive   effect.Effect

	passiveID uuid.UUID
}

// NewWeapon creates a weapon. secondary and passive may be nil.
func NewWeapon(name string, t WeaponType, atk attribute.FlatValue, secondary *SecondaryStat, passive effect.Effect) *Weapon {
	return &Weapon{
		Name:      name,
		Type:      t,
		ATK:       atk,
		Secondary: secondary,
		Passive:   passive,
		passiveID: uuid.New(),
	}
}
