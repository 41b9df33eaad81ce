package element

import (
	"fmt"
	"strings"
)

// ElementType is the element carried by an attack.
type ElementType uint8

const (
	Physical ElementType = iota
	Anemo
	Geo
	Electro
	Hydro
	Pyro
	Cryo
	Dendro

	// ElementCount is the number of attack elements.
	ElementCount = int(Dendro) + 1
)

var elementNames = [ElementCount]string{
	Physical: "physical",
	Anemo:    "anemo",
	Geo:      "geo",
	Electro:  "electro",
	Hydro:    "hydro",
	Pyro:     "pyro",
	Cryo:     "cryo",
	Dendro:   "dendro",
}

func (e ElementType) String() string {
	if int(e) < ElementCount {
		return elementNames[e]
	}
	return fmt.Sprintf("element(%d)", uint8(e))
}

// AuraType returns the aura family an element leaves on a target.
// Physical, Anemo and Geo never linger as auras.
func (e ElementType) AuraType() (AuraType, bool) {
	switch e {
	case Electro:
		return AuraElectro, true
	case Hydro:
		return AuraHydro, true
	case Pyro:
		return AuraPyro, true
	case Cryo:
		return AuraCryo, true
	case Dendro:
		return AuraDendro, true
	case Physical, Anemo, Geo:
		return 0, false
	default:
		panic(fmt.Sprintf("element: unknown element type %d", uint8(e)))
	}
}

// ParseElement resolves a case-insensitive element name.
func ParseElement(s string) (ElementType, error) {
	for i, name := range elementNames {
		if strings.EqualFold(s, name) {
			return ElementType(i), nil
		}
	}
	return 0, fmt.Errorf("%w: element %q", ErrUnknownName, s)
}

// AuraType is an elemental state family tracked on a combat entity.
// It is a superset of the attackable elements: Quicken, Freeze and
// Burning only appear as the product of a reaction.
type AuraType uint8

const (
	AuraHydro AuraType = iota
	AuraPyro
	AuraCryo
	AuraElectro
	AuraDendro
	AuraQuicken
	AuraFreeze
	AuraBurning

	// AuraCount is the number of aura families.
	AuraCount = int(AuraBurning) + 1
)

var auraNames = [AuraCount]string{
	AuraHydro:   "hydro",
	AuraPyro:    "pyro",
	AuraCryo:    "cryo",
	AuraElectro: "electro",
	AuraDendro:  "dendro",
	AuraQuicken: "quicken",
	AuraFreeze:  "freeze",
	AuraBurning: "burning",
}

func (a AuraType) String() string {
	if int(a) < AuraCount {
		return auraNames[a]
	}
	return fmt.Sprintf("aura(%d)", uint8(a))
}

// ParseAura resolves a case-insensitive aura name.
func ParseAura(s string) (AuraType, error) {
	for i, name := range auraNames {
		if strings.EqualFold(s, name) {
			return AuraType(i), nil
		}
	}
	return 0, fmt.Errorf("%w: aura %q", ErrUnknownName, s)
}

// AttackType classifies the ability an attack came from.
type AttackType uint8

const (
	Normal AttackType = iota
	Charged
	Plunging
	Skill
	Burst

	// AttackCount is the number of attack types.
	AttackCount = int(Burst) + 1
)

var attackNames = [AttackCount]string{
	Normal:   "normal",
	Charged:  "charged",
	Plunging: "plunging",
	Skill:    "skill",
	Burst:    "burst",
}

func (a AttackType) String() string {
	if int(a) < AttackCount {
		return attackNames[a]
	}
	return fmt.Sprintf("attack(%d)", uint8(a))
}

// ParseAttack resolves a case-insensitive attack type name.
func ParseAttack(s string) (AttackType, error) {
	for i, name := range attackNames {
		if strings.EqualFold(s, name) {
			return AttackType(i), nil
		}
	}
	return 0, fmt.Errorf("%w: attack type %q", ErrUnknownName, s)
}

// ReactionType identifies an elemental reaction. Directional variants
// (HtP = Hydro onto Pyro) carry different multipliers.
type ReactionType uint8

const (
	VaporizeHtP ReactionType = iota
	VaporizePtH
	MeltPtC
	MeltCtP
	Overloaded
	ElectroCharged
	Bloom
	Burgeon
	Hyperbloom
	Shatter
	HydroSwirl
	PyroSwirl
	ElectroSwirl
	CryoSwirl
	HydroCrystalize
	PyroCrystalize
	ElectroCrystalize
	CryoCrystalize
	Aggravate
	Spread
	Frozen
	SuperConduct
	Burning
	Quicken

	// ReactionCount is the number of reaction types.
	ReactionCount = int(Quicken) + 1
)

var reactionNames = [ReactionCount]string{
	VaporizeHtP:       "vaporize_htp",
	VaporizePtH:       "vaporize_pth",
	MeltPtC:           "melt_ptc",
	MeltCtP:           "melt_ctp",
	Overloaded:        "overloaded",
	ElectroCharged:    "electro_charged",
	Bloom:             "bloom",
	Burgeon:           "burgeon",
	Hyperbloom:        "hyperbloom",
	Shatter:           "shatter",
	HydroSwirl:        "hydro_swirl",
	PyroSwirl:         "pyro_swirl",
	ElectroSwirl:      "electro_swirl",
	CryoSwirl:         "cryo_swirl",
	HydroCrystalize:   "hydro_crystalize",
	PyroCrystalize:    "pyro_crystalize",
	ElectroCrystalize: "electro_crystalize",
	CryoCrystalize:    "cryo_crystalize",
	Aggravate:         "aggravate",
	Spread:            "spread",
	Frozen:            "frozen",
	SuperConduct:      "superconduct",
	Burning:           "burning",
	Quicken:           "quicken",
}

func (r ReactionType) String() string {
	if int(r) < ReactionCount {
		return reactionNames[r]
	}
	return fmt.Sprintf("reaction(%d)", uint8(r))
}

// ParseReaction resolves a case-insensitive reaction name.
func ParseReaction(s string) (ReactionType, error) {
	for i, name := range reactionNames {
		if strings.EqualFold(s, name) {
			return ReactionType(i), nil
		}
	}
	return 0, fmt.Errorf("%w: reaction %q", ErrUnknownName, s)
}
