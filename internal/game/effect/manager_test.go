package effect

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/elemental/internal/attribute"
	"github.com/udisondev/elemental/internal/element"
)

type testHost struct {
	attrs *attribute.Set
}

func newTestHost() *testHost {
	return &testHost{attrs: attribute.NewSet(1000, 100, 50)}
}

func (h *testHost) Attributes() *attribute.Set { return h.attrs }

type countingEffect struct {
	applied, removed int
	ticks            int
	active           bool
}

func (e *countingEffect) Apply(Host)           { e.applied++ }
func (e *countingEffect) Remove(Host)          { e.removed++ }
func (e *countingEffect) Update(time.Duration) { e.ticks++ }
func (e *countingEffect) Active() bool         { return e.active }

func mustSelect(t *testing.T, path string) Selector {
	t.Helper()
	sel, err := SelectStat(path)
	require.NoError(t, err)
	return sel
}

func TestManager_AddReplacesSameID(t *testing.T) {
	m := NewManager(newTestHost())
	id := uuid.New()

	first := &countingEffect{active: true}
	second := &countingEffect{active: true}
	m.Add(id, first)
	m.Add(id, second)

	assert.Equal(t, 1, m.Len())
	assert.Equal(t, 1, first.applied)
	assert.Equal(t, 1, first.removed, "replaced effect is removed")
	assert.Equal(t, 1, second.applied)

	got, ok := m.Get(id)
	require.True(t, ok)
	assert.Same(t, second, got)
}

func TestManager_RemoveUnknownIsNoop(t *testing.T) {
	m := NewManager(newTestHost())
	e := &countingEffect{active: true}
	id := uuid.New()
	m.Add(id, e)

	m.Remove(uuid.New())
	assert.Equal(t, 1, m.Len())

	m.Remove(id)
	assert.False(t, m.Has(id))
	assert.Equal(t, 1, e.removed)

	m.Remove(id)
	assert.Equal(t, 1, e.removed)
}

func TestManager_UpdateDropsInactive(t *testing.T) {
	m := NewManager(newTestHost())
	keep := &countingEffect{active: true}
	drop := &countingEffect{active: true}
	keepID, dropID := uuid.New(), uuid.New()
	m.Add(keepID, keep)
	m.Add(dropID, drop)

	m.Update(time.Second)
	assert.Equal(t, 1, keep.ticks)
	assert.Equal(t, 1, drop.ticks)

	drop.active = false
	m.Update(time.Second)
	assert.True(t, m.Has(keepID))
	assert.False(t, m.Has(dropID))
	assert.Equal(t, 1, drop.ticks, "inactive effects are not ticked")
	assert.Equal(t, 1, drop.removed)
}

func TestManager_Clear(t *testing.T) {
	m := NewManager(newTestHost())
	effects := []*countingEffect{{active: true}, {active: true}, {active: true}}
	for _, e := range effects {
		m.Add(uuid.New(), e)
	}

	m.Clear()
	assert.Zero(t, m.Len())
	for _, e := range effects {
		assert.Equal(t, 1, e.removed)
	}
}

func TestStatEffect_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		mod   attribute.Modifier
		value func(*attribute.Set) float64
		want  float64
	}{
		{
			name:  "percent atk",
			path:  "atk",
			mod:   attribute.PercentModifier(20),
			value: func(s *attribute.Set) float64 { return float64(s.ATK.Value()) },
			want:  120,
		},
		{
			name:  "flat em",
			path:  "em",
			mod:   attribute.FlatModifier(80),
			value: func(s *attribute.Set) float64 { return float64(s.ElementalMastery.Value()) },
			want:  80,
		},
		{
			name:  "res shred",
			path:  "res:physical",
			mod:   attribute.PercentModifier(-40),
			value: func(s *attribute.Set) float64 { return float64(s.RES.At(element.Physical).Value()) },
			want:  -40,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host := newTestHost()
			before := tt.value(host.attrs)
			m := NewManager(host)
			id := uuid.New()

			m.Add(id, NewStatEffect(tt.name, mustSelect(t, tt.path), tt.mod))
			assert.InDelta(t, tt.want, tt.value(host.attrs), 1e-9)

			m.Remove(id)
			assert.Equal(t, before, tt.value(host.attrs))
		})
	}
}

func TestSelectStat_Unknown(t *testing.T) {
	_, err := SelectStat("luck")
	require.Error(t, err)
	assert.ErrorIs(t, err, attribute.ErrUnknownStat)

	_, err = SelectStat("res:void")
	require.Error(t, err)
	assert.ErrorIs(t, err, element.ErrUnknownName)
}

func TestTimedEffect_Expires(t *testing.T) {
	host := newTestHost()
	m := NewManager(host)
	id := uuid.New()

	timed := NewTimedEffect(NewStatEffect("shred", mustSelect(t, "def"), attribute.PercentModifier(-30)), 12*time.Second)
	m.Add(id, timed)
	assert.InDelta(t, 35, float64(host.attrs.DEF.Value()), 1e-9)

	for range 11 {
		m.Update(time.Second)
	}
	require.True(t, m.Has(id))
	assert.Equal(t, time.Second, timed.Remaining())

	m.Update(time.Second)
	assert.False(t, m.Has(id))
	assert.Equal(t, attribute.FlatValue(50), host.attrs.DEF.Value())
}

func TestTimedEffect_RefreshKeepsSingleModifier(t *testing.T) {
	host := newTestHost()
	m := NewManager(host)
	id := uuid.New()
	sel := mustSelect(t, "res:physical")

	m.Add(id, NewTimedEffect(NewStatEffect("shred", sel, attribute.PercentModifier(-40)), 12*time.Second))
	m.Update(10 * time.Second)
	m.Add(id, NewTimedEffect(NewStatEffect("shred", sel, attribute.PercentModifier(-40)), 12*time.Second))

	assert.Equal(t, attribute.Percent(-40), host.attrs.RES.At(element.Physical).Value())
	assert.Equal(t, 1, host.attrs.RES.At(element.Physical).Modifiers())

	m.Update(10 * time.Second)
	assert.True(t, m.Has(id), "refresh restarted the duration")
}
