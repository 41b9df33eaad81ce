package cooldown

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCooldown(t *testing.T) {
	c := New(time.Second)
	require.True(t, c.IsReady())

	require.True(t, c.TryTrigger())
	assert.False(t, c.IsReady())
	assert.False(t, c.TryTrigger(), "cannot trigger while cooling down")
	assert.Equal(t, time.Second, c.Remaining())

	c.Update(400 * time.Millisecond)
	assert.Equal(t, 600*time.Millisecond, c.Remaining())

	c.Update(time.Second)
	assert.True(t, c.IsReady())
	assert.Equal(t, time.Duration(0), c.Remaining())

	c.Trigger()
	c.Reset()
	assert.True(t, c.IsReady())
}

func TestCountDown(t *testing.T) {
	tests := []struct {
		name    string
		steps   []time.Duration
		extra   time.Duration
		over    bool
		remains time.Duration
	}{
		{name: "fresh", over: false, remains: 12 * time.Second},
		{name: "partial", steps: []time.Duration{5 * time.Second}, remains: 7 * time.Second},
		{name: "exact", steps: []time.Duration{12 * time.Second}, over: true},
		{name: "overshoot", steps: []time.Duration{10 * time.Second, 10 * time.Second}, over: true},
		{name: "extended", steps: []time.Duration{12 * time.Second}, extra: 3 * time.Second, remains: 3 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCountDown(12 * time.Second)
			for _, s := range tt.steps {
				c.Update(s)
			}
			c.Increase(tt.extra)
			assert.Equal(t, tt.over, c.IsOver())
			assert.Equal(t, tt.remains, c.Remaining())
		})
	}
}

func TestCountDown_ResetClear(t *testing.T) {
	c := NewCountDown(2 * time.Second)
	c.Clear()
	assert.True(t, c.IsOver())

	c.Reset()
	assert.False(t, c.IsOver())
	assert.Equal(t, 2*time.Second, c.Remaining())
}
