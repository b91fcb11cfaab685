package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManualFlushRunsInEnqueueOrder(t *testing.T) {
	m := NewManual()
	var got []int
	m.Defer(func() { got = append(got, 1) })
	m.Defer(func() {
		got = append(got, 2)
		m.Defer(func() { got = append(got, 4) })
	})
	m.Defer(func() { got = append(got, 3) })

	assert.Equal(t, 3, m.Pending())
	assert.Empty(t, got)

	m.Flush()
	assert.Equal(t, []int{1, 2, 3, 4}, got)
	assert.Zero(t, m.Pending())
}

func TestManualTimersFireInDeadlineOrder(t *testing.T) {
	m := NewManual()
	var got []string
	m.After(30*time.Millisecond, func() { got = append(got, "c") })
	m.After(10*time.Millisecond, func() { got = append(got, "a") })
	m.After(10*time.Millisecond, func() { got = append(got, "b") })

	m.Advance(9 * time.Millisecond)
	assert.Empty(t, got)

	m.Advance(time.Millisecond)
	assert.Equal(t, []string{"a", "b"}, got)

	m.Advance(time.Hour)
	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.Zero(t, m.Timers())
}

func TestManualStoppedTimerNeverFires(t *testing.T) {
	m := NewManual()
	fired := false
	tm := m.After(time.Second, func() { fired = true })

	require.True(t, tm.Stop())
	assert.False(t, tm.Stop())

	m.Advance(2 * time.Second)
	assert.False(t, fired)
}

func TestManualStopAfterFireReportsFalse(t *testing.T) {
	m := NewManual()
	tm := m.After(time.Second, func() {})
	m.Advance(time.Second)
	assert.False(t, tm.Stop())
}
