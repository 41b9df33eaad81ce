package combat

import (
	"fmt"
	"strings"

	"github.com/udisondev/elemental/internal/attribute"
	"github.com/udisondev/elemental/internal/element"
)

// Scaling selects the stat an ability scales from.
type Scaling uint8

const (
	ScaleATK Scaling = iota
	ScaleDEF
	ScaleMaxHP
	ScaleEM
)

var scalingNames = [...]string{
	ScaleATK:   "atk",
	ScaleDEF:   "def",
	ScaleMaxHP: "max_hp",
	ScaleEM:    "em",
}

func (s Scaling) String() string {
	if int(s) < len(scalingNames) {
		return scalingNames[s]
	}
	return fmt.Sprintf("scaling(%d)", uint8(s))
}

// ParseScaling resolves a scaling stat name; empty means ATK.
func ParseScaling(name string) (Scaling, error) {
	if name == "" {
		return ScaleATK, nil
	}
	for i, n := range scalingNames {
		if strings.EqualFold(n, name) {
			return Scaling(i), nil
		}
	}
	return 0, fmt.Errorf("unknown scaling stat %q", name)
}

// Value reads the scaling stat from a stat set.
func (s Scaling) Value(set *attribute.Set) attribute.FlatValue {
	switch s {
	case ScaleATK:
		return set.ATK.Value()
	case ScaleDEF:
		return set.DEF.Value()
	case ScaleMaxHP:
		return set.MaxHP.Value()
	case ScaleEM:
		return set.ElementalMastery.Value()
	default:
		panic(fmt.Sprintf("combat: unknown scaling %d", uint8(s)))
	}
}

// Hit describes one ability hit before it is calculated.
type Hit struct {
	Name       string
	AttackType element.AttackType
	Element    element.ElementType
	Scaling    Scaling

	// Multiplier is the talent percentage of the scaling stat (100 = 1×).
	Multiplier attribute.Percent
	// BaseMultiplier is an extra bonus on the scaled value (0 = identity).
	BaseMultiplier attribute.Percent
	FlatDMG        float64

	// Units of element the hit tries to apply.
	Units float64
	// ICD gates element application. Nil means every hit applies.
	ICD *element.InternalCooldown

	Poise float64
	Blunt bool
}
