package combat

import (
	"github.com/udisondev/elemental/internal/attribute"
	"github.com/udisondev/elemental/internal/element"
	"github.com/udisondev/elemental/internal/game/reaction"
)

// Attacker is the dealing side of a hit.
type Attacker interface {
	reaction.Source
	Name() string
}

// Target is the receiving side of a hit.
type Target interface {
	reaction.Target
}

// ElementalInstance is the element a hit carries and how many gauge units
// it tries to apply.
type ElementalInstance struct {
	Element element.ElementType
	Units   float64
}

// DMG is one computed hit, consumed exactly once by the receiver.
//
// Resolved hits already went through bonus, DEF, RES and crit. Raw hits
// carry a pre-mitigation amount; the receiver applies the amplifying
// multiplier and DEF/RES to them.
type DMG struct {
	Source           Attacker
	SourceAttributes *attribute.Set
	Name             string
	AttackType       element.AttackType
	Amount           float64
	Element          ElementalInstance
	Critical         bool
	Poise            float64
	Blunt            bool
	Resolved         bool

	// Reaction resolved while calculating, nil if none triggered.
	Reaction *reaction.Reaction
}

// NewRawDMG creates an unresolved hit for externally scripted damage.
// snapshot should be the attacker's stats frozen at cast time.
func NewRawDMG(src Attacker, snapshot *attribute.Set, name string, amount float64, inst ElementalInstance, poise float64, blunt bool) DMG {
	return DMG{
		Source:           src,
		SourceAttributes: snapshot,
		Name:             name,
		Amount:           amount,
		Element:          inst,
		Poise:            poise,
		Blunt:            blunt,
	}
}

// WithoutElement returns a copy of d that applies no gauge.
func (d DMG) WithoutElement() DMG {
	d.Element.Units = 0
	return d
}
