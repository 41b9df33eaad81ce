package attribute

// Attribute is a numeric stat: a base value plus flat and percent modifiers.
//
// Current value is recomputed eagerly on every mutation:
//
//	current = base * (1 + Σpercent/100) + Σflat
//
// Percent modifiers stack additively with each other.
type Attribute struct {
	base      FlatValue
	current   FlatValue
	modifiers modifierList
	observers observerList
}

// NewAttribute creates an attribute with the given base value.
func NewAttribute(base FlatValue) *Attribute {
	a := &Attribute{base: base}
	a.recompute()
	return a
}

// BaseValue returns the unmodified value.
func (a *Attribute) BaseValue() FlatValue { return a.base }

// SetBaseValue replaces the base value and recomputes.
func (a *Attribute) SetBaseValue(v FlatValue) {
	a.base = v
	a.recompute()
}

// Value returns the current (modified) value.
func (a *Attribute) Value() FlatValue { return a.current }

// Raw returns the current value as float64.
func (a *Attribute) Raw() float64 { return float64(a.current) }

// Add installs m under id, replacing any modifier with the same id.
func (a *Attribute) Add(id ModifierID, m Modifier) {
	a.modifiers = a.modifiers.put(id, m)
	a.recompute()
}

// Remove drops the modifier with the given id. Unknown ids are a no-op.
func (a *Attribute) Remove(id ModifierID) {
	a.modifiers = a.modifiers.delete(id)
	a.recompute()
}

// Modifiers returns the number of installed modifiers.
func (a *Attribute) Modifiers() int { return len(a.modifiers) }

// AddObserver subscribes fn and calls it once with the current value.
func (a *Attribute) AddObserver(id ObserverID, fn Observer) {
	a.observers = a.observers.put(id, fn)
	fn(float64(a.current))
}

// RemoveObserver unsubscribes id.
func (a *Attribute) RemoveObserver(id ObserverID) {
	a.observers = a.observers.delete(id)
}

// Div returns a / o. Returns ErrDivideByZero if o is zero.
func (a *Attribute) Div(o *Attribute) (FlatValue, error) {
	return a.current.Div(o.current)
}

// Snapshot returns an independent attribute whose base is the current value.
// Modifiers and observers are not carried over.
func (a *Attribute) Snapshot() *Attribute {
	return NewAttribute(a.current)
}

func (a *Attribute) recompute() {
	flat, percent := a.modifiers.sums()
	a.current = FlatValue(float64(a.base)*(1+percent/100) + flat)
	a.observers.notify(float64(a.current))
}

// PercentAttribute is a percentage stat (CRIT Rate, RES, DMG Bonus).
// Modifiers of either kind add percentage points:
//
//	current = base + Σmodifier
type PercentAttribute struct {
	base      Percent
	current   Percent
	modifiers modifierList
	observers observerList
}

// NewPercentAttribute creates a percentage stat with the given base.
func NewPercentAttribute(base Percent) *PercentAttribute {
	a := &PercentAttribute{base: base}
	a.recompute()
	return a
}

func (a *PercentAttribute) BaseValue() Percent { return a.base }

func (a *PercentAttribute) SetBaseValue(v Percent) {
	a.base = v
	a.recompute()
}

func (a *PercentAttribute) Value() Percent { return a.current }
func (a *PercentAttribute) Raw() float64   { return float64(a.current) }

func (a *PercentAttribute) Add(id ModifierID, m Modifier) {
	a.modifiers = a.modifiers.put(id, m)
	a.recompute()
}

func (a *PercentAttribute) Remove(id ModifierID) {
	a.modifiers = a.modifiers.delete(id)
	a.recompute()
}

func (a *PercentAttribute) Modifiers() int { return len(a.modifiers) }

func (a *PercentAttribute) AddObserver(id ObserverID, fn Observer) {
	a.observers = a.observers.put(id, fn)
	fn(float64(a.current))
}

func (a *PercentAttribute) RemoveObserver(id ObserverID) {
	a.observers = a.observers.delete(id)
}

func (a *PercentAttribute) Snapshot() *PercentAttribute {
	return NewPercentAttribute(a.current)
}

func (a *PercentAttribute) recompute() {
	flat, percent := a.modifiers.sums()
	a.current = a.base + Percent(flat+percent)
	a.observers.notify(float64(a.current))
}

var (
	_ Modifiable = (*Attribute)(nil)
	_ Modifiable = (*PercentAttribute)(nil)
)
