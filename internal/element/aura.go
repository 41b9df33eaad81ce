package element

import (
	"math"
	"time"
)

const (
	// AuraTax discounts applied gauge units before they are stored.
	AuraTax = 0.8

	// unitEpsilon absorbs floating point residue of stepped decay.
	unitEpsilon = 1e-9
)

// Aura is one decaying elemental gauge on a combat entity.
// Units == 0 means the aura is absent; the decay rate is meaningless then.
type Aura struct {
	typ   AuraType
	units float64
	// seconds per unit
	decayRate float64
}

// NewAura creates an absent aura of the given family.
func NewAura(t AuraType) *Aura {
	return &Aura{typ: t}
}

// Type returns the aura family.
func (a *Aura) Type() AuraType { return a.typ }

// Units returns the current gauge.
func (a *Aura) Units() float64 { return a.units }

// IsUp reports whether any gauge remains.
func (a *Aura) IsUp() bool { return a.units > 0 }

// DecayRatePerUnit returns how long a single unit lasts.
func (a *Aura) DecayRatePerUnit() time.Duration {
	return time.Duration(a.decayRate * float64(time.Second))
}

// Apply stores units*AuraTax. Pyro refreshes its decay rate only when the new
// taxed amount exceeds what is left; other families keep the decay rate of the
// application that created them.
func (a *Aura) Apply(units float64) {
	if units <= 0 {
		return
	}
	taxed := units * AuraTax
	if a.typ == AuraPyro {
		if taxed > a.units {
			a.decayRate = DecayRate(units)
		}
	} else if !a.IsUp() {
		a.decayRate = DecayRate(units)
	}
	a.units = taxed
}

// Reduce consumes units directly, without tax.
func (a *Aura) Reduce(units float64) {
	a.units -= units
	if a.units <= unitEpsilon {
		a.Remove()
	}
}

// Update decays the gauge by the elapsed time.
func (a *Aura) Update(elapsed time.Duration) {
	if !a.IsUp() || elapsed <= 0 {
		return
	}
	a.units -= elapsed.Seconds() / a.decayRate
	if a.units <= unitEpsilon {
		a.Remove()
	}
}

// Remove clears the gauge.
func (a *Aura) Remove() {
	a.units = 0
}

// DecayRate returns seconds per unit for an application of the given size:
// 875/(100*units) + 25/8.
func DecayRate(units float64) float64 {
	return 875.0/(100.0*units) + 25.0/8.0
}

// Duration returns how long an aura created from a single application of
// units lasts without further interaction.
func Duration(units float64) time.Duration {
	seconds := DecayRate(units) * units * AuraTax
	return time.Duration(math.Round(seconds * float64(time.Second)))
}
