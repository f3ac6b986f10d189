package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	e := NewEmitter()
	defer e.Close()
	assert.Equal(t, 3000*time.Millisecond, e.display)
	assert.Equal(t, 300*time.Millisecond, e.transition)
}

func TestNotifyLifecycle(t *testing.T) {
	// Shortened timings; the exit transition is long enough to observe.
	e := NewEmitter(WithDurations(40*time.Millisecond, 100*time.Millisecond))
	defer e.Close()

	n := e.Notify("Item added", Success)
	assert.NotEmpty(t, n.ID)
	assert.Equal(t, Success, n.Severity)

	active := e.Active()
	require.Len(t, active, 1)
	assert.Equal(t, Showing, active[0].Phase)

	require.Eventually(t, func() bool {
		a := e.Active()
		return len(a) == 1 && a[0].Phase == Leaving
	}, time.Second, 5*time.Millisecond)

	require.Eventually(t, func() bool { return len(e.Active()) == 0 }, time.Second, 5*time.Millisecond)
}

func TestNotificationsStackIndependently(t *testing.T) {
	e := NewEmitter(WithDurations(time.Hour, time.Hour))
	defer e.Close()

	first := e.Notify("one", Info)
	second := e.Notify("two", Warning)
	third := e.Notify("three", Error)

	got := e.Active()
	require.Len(t, got, 3)
	assert.Equal(t, []string{first.ID, second.ID, third.ID}, []string{got[0].ID, got[1].ID, got[2].ID})

	assert.True(t, e.Dismiss(second.ID))
	assert.False(t, e.Dismiss(second.ID))
	got = e.Active()
	require.Len(t, got, 2)
	assert.Equal(t, "one", got[0].Message)
	assert.Equal(t, "three", got[1].Message)
}

func TestDismissCancelsTimer(t *testing.T) {
	e := NewEmitter(WithDurations(20*time.Millisecond, 5*time.Millisecond))
	defer e.Close()

	n := e.Notify("bye", Info)
	require.True(t, e.Dismiss(n.ID))
	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, e.Active())
}

func TestCloseStopsEverything(t *testing.T) {
	e := NewEmitter(WithDurations(time.Hour, time.Hour))
	e.Notify("one", Info)
	e.Close()
	assert.Empty(t, e.Active())

	e.Notify("late", Info)
	assert.Empty(t, e.Active())
}

func TestParseSeverity(t *testing.T) {
	assert.Equal(t, Success, ParseSeverity("success"))
	assert.Equal(t, Warning, ParseSeverity("warning"))
	assert.Equal(t, Error, ParseSeverity("error"))
	assert.Equal(t, Info, ParseSeverity("info"))
	assert.Equal(t, Info, ParseSeverity("loud"))
	assert.Equal(t, Info, ParseSeverity(""))
}
