package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/udisondev/elemental/internal/attribute"
)

func TestPoise_Presets(t *testing.T) {
	tests := []struct {
		name string
		p    *Poise
		max  float64
	}{
		{"melee", Melee(), 100},
		{"ranged", Ranged(), 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.max, tt.p.MaxCount())
			assert.Equal(t, tt.max, tt.p.Count(), "starts full")
			assert.False(t, tt.p.IsBroken())
		})
	}
}

func TestPoise_RecoversWhileIntact(t *testing.T) {
	p := Melee()
	p.ReceiveDamage(60)
	assert.InDelta(t, 40, p.Count(), 1e-9)

	p.Update(2 * time.Second)
	assert.InDelta(t, 50, p.Count(), 1e-9)

	p.Update(time.Minute)
	assert.Equal(t, 100.0, p.Count(), "capped at max")
}

func TestPoise_BreakAndReset(t *testing.T) {
	p := Melee()
	p.ReceiveDamage(150)
	assert.True(t, p.IsBroken())
	assert.Zero(t, p.Count())

	p.Update(time.Second)
	assert.True(t, p.IsBroken(), "no regeneration while vulnerable")

	p.ReceiveDamage(10)
	assert.Zero(t, p.Count())

	p.Update(time.Second)
	assert.False(t, p.IsBroken())
	assert.Equal(t, 100.0, p.Count())
}

func TestPoise_InterruptionResistance(t *testing.T) {
	tests := []struct {
		name       string
		resistance attribute.Percent
		want       float64
	}{
		{"none", 0, 60},
		{"half", 50, 80},
		{"immune", 100, 100},
		{"over cap", 150, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Melee()
			p.SetInterruptionResistance(tt.resistance)
			p.ReceiveDamage(40)
			assert.InDelta(t, tt.want, p.Count(), 1e-9)
		})
	}
}

func TestPoise_IgnoresNonPositive(t *testing.T) {
	p := Ranged()
	p.ReceiveDamage(0)
	p.ReceiveDamage(-5)
	assert.Equal(t, 50.0, p.Count())
}
