package shared

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLifecycleStateMachine_HappyPath(t *testing.T) {
	clock := NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	sm := NewLifecycleStateMachine(clock)

	assert.Equal(t, LifecycleStatusPending, sm.Status())
	assert.False(t, sm.IsActive())

	require.NoError(t, sm.Start())
	assert.True(t, sm.IsRunning())

	clock.Advance(3 * time.Second)
	require.NoError(t, sm.Complete())
	assert.Equal(t, LifecycleStatusCompleted, sm.Status())
	assert.True(t, sm.IsFinished())
	assert.Equal(t, 3*time.Second, sm.RuntimeDuration())
}

func TestLifecycleStateMachine_PauseResume(t *testing.T) {
	sm := NewLifecycleStateMachine(NewMockClock(time.Now()))

	require.NoError(t, sm.Start())
	require.NoError(t, sm.Pause())
	assert.True(t, sm.IsPaused())
	assert.True(t, sm.IsActive())

	require.NoError(t, sm.Resume())
	assert.True(t, sm.IsRunning())
}

func TestLifecycleStateMachine_CompleteFromPaused(t *testing.T) {
	sm := NewLifecycleStateMachine(nil)

	require.NoError(t, sm.Start())
	require.NoError(t, sm.Pause())

	// Workers drain in-flight sequences before honoring a pause, so the
	// last done message can arrive while paused.
	require.NoError(t, sm.Complete())
	assert.Equal(t, LifecycleStatusCompleted, sm.Status())
}

func TestLifecycleStateMachine_InvalidTransitions(t *testing.T) {
	sm := NewLifecycleStateMachine(nil)

	assert.Error(t, sm.Pause())
	assert.Error(t, sm.Resume())
	assert.Error(t, sm.Complete())

	require.NoError(t, sm.Start())
	assert.Error(t, sm.Start())

	require.NoError(t, sm.Stop())
	assert.Error(t, sm.Stop())
	assert.Error(t, sm.Fail(errors.New("too late")))
}

func TestLifecycleStateMachine_FailRecordsError(t *testing.T) {
	sm := NewLifecycleStateMachine(nil)
	require.NoError(t, sm.Start())

	cause := errors.New("engine call failed")
	require.NoError(t, sm.Fail(cause))

	assert.Equal(t, LifecycleStatusFailed, sm.Status())
	assert.Equal(t, cause, sm.LastError())
}

func TestLifecycleStateMachine_RuntimeFreezesAtStop(t *testing.T) {
	clock := NewMockClock(time.Now())
	sm := NewLifecycleStateMachine(clock)

	require.NoError(t, sm.Start())
	clock.Advance(2 * time.Second)
	require.NoError(t, sm.Stop())
	clock.Advance(time.Minute)

	assert.Equal(t, 2*time.Second, sm.RuntimeDuration())
}
