package attribute

import "github.com/google/uuid"

// ModifierID identifies one modifier source on an attribute.
// Every buff, debuff or equipment effect owns its own id, so removal is exact.
type ModifierID = uuid.UUID

// ObserverID identifies one subscriber of an attribute.
type ObserverID = uuid.UUID

// NewModifierID returns a fresh random modifier id.
func NewModifierID() ModifierID { return uuid.New() }

// NewObserverID returns a fresh random observer id.
func NewObserverID() ObserverID { return uuid.New() }

// ModifierKind selects how a modifier combines with the base value.
type ModifierKind uint8

const (
	// ModifierFlat is added after percent scaling.
	ModifierFlat ModifierKind = iota
	// ModifierPercent scales the base value, in percentage points.
	ModifierPercent
)

func (k ModifierKind) String() string {
	switch k {
	case ModifierFlat:
		return "flat"
	case ModifierPercent:
		return "percent"
	default:
		return "unknown"
	}
}

// Modifier is a single stat change contributed by one source.
type Modifier struct {
	Kind  ModifierKind
	Value float64
}

// FlatModifier adds v to the attribute.
func FlatModifier(v FlatValue) Modifier {
	return Modifier{Kind: ModifierFlat, Value: float64(v)}
}

// PercentModifier scales the attribute's base by p.
func PercentModifier(p Percent) Modifier {
	return Modifier{Kind: ModifierPercent, Value: float64(p)}
}

// Observer receives the recomputed value of an attribute.
type Observer func(value float64)

// Modifiable is the capability shared by Attribute and PercentAttribute.
type Modifiable interface {
	Add(id ModifierID, m Modifier)
	Remove(id ModifierID)
	AddObserver(id ObserverID, fn Observer)
	RemoveObserver(id ObserverID)
	Raw() float64
}

type modifierEntry struct {
	id  ModifierID
	mod Modifier
}

type observerEntry struct {
	id ObserverID
	fn Observer
}

// modifierList keeps modifiers in insertion order so sums are reproducible.
type modifierList []modifierEntry

func (l modifierList) put(id ModifierID, m Modifier) modifierList {
	for i := range l {
		if l[i].id == id {
			l[i].mod = m
			return l
		}
	}
	return append(l, modifierEntry{id: id, mod: m})
}

func (l modifierList) delete(id ModifierID) modifierList {
	for i := range l {
		if l[i].id == id {
			return append(l[:i], l[i+1:]...)
		}
	}
	return l
}

func (l modifierList) sums() (flat, percent float64) {
	for _, e := range l {
		switch e.mod.Kind {
		case ModifierFlat:
			flat += e.mod.Value
		case ModifierPercent:
			percent += e.mod.Value
		}
	}
	return flat, percent
}

type observerList []observerEntry

func (l observerList) put(id ObserverID, fn Observer) observerList {
	for i := range l {
		if l[i].id == id {
			l[i].fn = fn
			return l
		}
	}
	return append(l, observerEntry{id: id, fn: fn})
}

func (l observerList) delete(id ObserverID) observerList {
	for i := range l {
		if l[i].id == id {
			return append(l[:i], l[i+1:]...)
		}
	}
	return l
}

func (l observerList) notify(v float64) {
	for _, o := range l {
		o.fn(v)
	}
}
