package model

import (
	"time"

	"github.com/udisondev/elemental/internal/attribute"
	"github.com/udisondev/elemental/internal/cooldown"
)

// Poise is the interruption gauge of a combatant.
//
// Poise damage drains the count; at zero the combatant is broken and stays
// vulnerable until the reset time elapses, then the gauge refills to max.
// While not broken the gauge regenerates at the recovery rate.
type Poise struct {
	maxCount     float64
	count        float64
	recoveryRate float64 // per second
	resistance   attribute.Percent
	vulnerable   *cooldown.CountDown
}

// NewPoise creates a full gauge.
func NewPoise(maxCount, recoveryRate float64, resetTime time.Duration) *Poise {
	return &Poise{
		maxCount:     maxCount,
		count:        maxCount,
		recoveryRate: recoveryRate,
		vulnerable:   cooldown.NewCountDown(resetTime),
	}
}

// Melee returns the gauge of a melee combatant.
func Melee() *Poise { return NewPoise(100, 5, 2*time.Second) }

// Ranged returns the gauge of a ranged combatant.
func Ranged() *Poise { return NewPoise(50, 3, 3*time.Second) }

func (p *Poise) MaxCount() float64 { return p.maxCount }
func (p *Poise) Count() float64    { return p.count }
func (p *Poise) IsBroken() bool    { return p.count <= 0 }

// SetInterruptionResistance reduces incoming poise damage by r.
func (p *Poise) SetInterruptionResistance(r attribute.Percent) {
	p.resistance = r
}

// ReceiveDamage drains the gauge. A broken gauge ignores poise damage.
func (p *Poise) ReceiveDamage(dmg float64) {
	if p.IsBroken() || dmg <= 0 {
		return
	}
	p.count -= dmg * max(0, 1-p.resistance.Fraction())
	if p.count <= 0 {
		p.count = 0
		p.vulnerable.Reset()
	}
}

func (p *Poise) Update(elapsed time.Duration) {
	p.vulnerable.Update(elapsed)
	if p.IsBroken() {
		if p.vulnerable.IsOver() {
			p.count = p.maxCount
		}
		return
	}
	if p.count < p.maxCount {
		p.count = min(p.maxCount, p.count+p.recoveryRate*elapsed.Seconds())
	}
}
