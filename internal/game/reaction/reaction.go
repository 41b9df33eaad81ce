// Package reaction resolves which elemental reaction an attack triggers on a
// target and how strong it is.
package reaction

import (
	"fmt"

	"github.com/udisondev/elemental/internal/attribute"
	"github.com/udisondev/elemental/internal/element"
)

// Target is the defender side of a reaction.
type Target interface {
	HasAura(element.AuraType) bool
	Attributes() *attribute.Set
}

// Source is the attacker side of a reaction.
type Source interface {
	Level() int
	IsPlayable() bool
}

// Family groups reactions that share a damage formula.
type Family uint8

const (
	// Amplifying reactions multiply the triggering hit.
	Amplifying Family = iota
	// Transformative reactions deal standalone damage that ignores DEF.
	Transformative
	// Catalyze reactions add flat damage to the triggering hit.
	Catalyze
	// Other reactions change elemental state only.
	Other
)

func (f Family) String() string {
	switch f {
	case Amplifying:
		return "amplifying"
	case Transformative:
		return "transformative"
	case Catalyze:
		return "catalyze"
	case Other:
		return "other"
	default:
		return fmt.Sprintf("family(%d)", uint8(f))
	}
}

// Match is one reaction candidate and the aura that triggered it.
type Match struct {
	Type element.ReactionType
	Aura element.AuraType
}

type rule struct {
	aura     element.AuraType
	reaction element.ReactionType
}

// table lists, per incoming element, the aura checks in priority order.
var table = [element.ElementCount][]rule{
	element.Physical: nil,
	element.Hydro: {
		{element.AuraPyro, element.VaporizeHtP},
		{element.AuraDendro, element.Bloom},
		{element.AuraQuicken, element.Bloom},
		{element.AuraCryo, element.Frozen},
		{element.AuraBurning, element.VaporizeHtP},
	},
	element.Pyro: {
		{element.AuraHydro, element.VaporizePtH},
		{element.AuraCryo, element.MeltPtC},
		{element.AuraFreeze, element.MeltPtC},
		{element.AuraDendro, element.Burning},
		{element.AuraQuicken, element.Burning},
	},
	element.Cryo: {
		{element.AuraPyro, element.MeltCtP},
		{element.AuraHydro, element.Frozen},
		{element.AuraElectro, element.SuperConduct},
	},
	element.Anemo: {
		{element.AuraPyro, element.PyroSwirl},
		{element.AuraHydro, element.HydroSwirl},
		{element.AuraCryo, element.CryoSwirl},
		{element.AuraFreeze, element.CryoSwirl},
		{element.AuraElectro, element.ElectroSwirl},
	},
	element.Geo: {
		{element.AuraPyro, element.PyroCrystalize},
		{element.AuraHydro, element.HydroCrystalize},
		{element.AuraCryo, element.CryoCrystalize},
		{element.AuraElectro, element.ElectroCrystalize},
		{element.AuraFreeze, element.Shatter},
	},
	element.Electro: {
		{element.AuraPyro, element.Overloaded},
		{element.AuraHydro, element.ElectroCharged},
		{element.AuraCryo, element.SuperConduct},
		{element.AuraFreeze, element.SuperConduct},
		{element.AuraDendro, element.Quicken},
		{element.AuraQuicken, element.Aggravate},
	},
	element.Dendro: {
		{element.AuraPyro, element.Burning},
		{element.AuraHydro, element.Bloom},
		{element.AuraQuicken, element.Spread},
	},
}

// Matches returns every reaction elem would trigger on target, in priority
// order. Only the first one is ever resolved by the damage pipeline.
func Matches(elem element.ElementType, target Target) []Match {
	if int(elem) >= element.ElementCount {
		panic(fmt.Sprintf("reaction: unknown element %d", uint8(elem)))
	}

	var out []Match
	for _, r := range table[elem] {
		if target.HasAura(r.aura) {
			out = append(out, Match{Type: r.reaction, Aura: r.aura})
		}
	}
	return out
}

// Types is Matches without the triggering aura: the reaction type lookup
// for an incoming element against the target's current auras.
func Types(elem element.ElementType, target Target) []element.ReactionType {
	matches := Matches(elem, target)
	out := make([]element.ReactionType, len(matches))
	for i, m := range matches {
		out[i] = m.Type
	}
	return out
}

// FamilyOf returns the formula family of r.
func FamilyOf(r element.ReactionType) Family {
	switch r {
	case element.VaporizeHtP, element.VaporizePtH, element.MeltPtC, element.MeltCtP:
		return Amplifying
	case element.Burning, element.HydroSwirl, element.PyroSwirl, element.ElectroSwirl,
		element.CryoSwirl, element.SuperConduct, element.ElectroCharged, element.Bloom,
		element.Overloaded, element.Burgeon, element.Hyperbloom, element.Shatter:
		return Transformative
	case element.Aggravate, element.Spread:
		return Catalyze
	case element.Frozen, element.Quicken, element.HydroCrystalize, element.PyroCrystalize,
		element.ElectroCrystalize, element.CryoCrystalize:
		return Other
	default:
		panic(fmt.Sprintf("reaction: unknown reaction type %d", uint8(r)))
	}
}

// ElementOf returns the element whose RES reduces the reaction's damage.
func ElementOf(r element.ReactionType) element.ElementType {
	switch r {
	case element.VaporizeHtP, element.HydroSwirl, element.HydroCrystalize:
		return element.Hydro
	case element.VaporizePtH, element.MeltPtC, element.Overloaded, element.Burning,
		element.PyroSwirl, element.PyroCrystalize:
		return element.Pyro
	case element.MeltCtP, element.SuperConduct, element.CryoSwirl, element.CryoCrystalize:
		return element.Cryo
	case element.ElectroCharged, element.Aggravate, element.ElectroSwirl, element.ElectroCrystalize:
		return element.Electro
	case element.Bloom, element.Burgeon, element.Hyperbloom, element.Quicken, element.Spread:
		return element.Dendro
	case element.Frozen, element.Shatter:
		return element.Physical
	default:
		panic(fmt.Sprintf("reaction: unknown reaction type %d", uint8(r)))
	}
}

// ConsumptionRatio returns how many units of the triggering aura one unit of
// the incoming element removes.
func ConsumptionRatio(r element.ReactionType, aura element.AuraType) float64 {
	switch r {
	case element.VaporizeHtP, element.MeltPtC:
		return 2
	case element.VaporizePtH, element.MeltCtP:
		return 0.5
	case element.HydroSwirl, element.PyroSwirl, element.ElectroSwirl, element.CryoSwirl,
		element.HydroCrystalize, element.PyroCrystalize, element.ElectroCrystalize, element.CryoCrystalize:
		return 0.5
	case element.Bloom:
		if aura == element.AuraHydro {
			// Dendro onto Hydro
			return 0.5
		}
		return 2
	case element.Overloaded, element.SuperConduct, element.Frozen, element.Quicken, element.Shatter:
		return 1
	case element.ElectroCharged, element.Aggravate, element.Spread, element.Burning,
		element.Burgeon, element.Hyperbloom:
		return 0
	default:
		panic(fmt.Sprintf("reaction: unknown reaction type %d", uint8(r)))
	}
}
