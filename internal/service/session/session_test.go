package session

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dwayne234/HR-PeopleTeam/internal/core"
)

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	}
}

func seedMessage() *core.Message {
	return &core.Message{Role: core.RoleSystem, Content: "you are the hr assistant"}
}

func TestAppendKeepsInsertionOrder(t *testing.T) {
	s := New(nil)
	s.now = fixedClock()

	inputs := []string{"first", "second", "third", "fourth"}
	for _, in := range inputs {
		require.NoError(t, s.AppendUser(in))
	}

	snap := s.Snapshot()
	require.Len(t, snap, len(inputs))
	for i, in := range inputs {
		assert.Equal(t, in, snap[i].Content)
		assert.Equal(t, core.RoleUser, snap[i].Role)
		assert.Equal(t, "2025-03-14 09:30:00", snap[i].Timestamp)
	}
}

func TestAppendValidation(t *testing.T) {
	s := New(nil)

	assert.Error(t, s.Append(core.Message{Role: core.RoleUser}))
	assert.Error(t, s.Append(core.Message{Content: "no role"}))
	assert.Error(t, s.Append(core.Message{Role: core.RoleSystem, Content: "late system"}))
	assert.Equal(t, 0, s.Len())
}

func TestSeededSessionKeepsSystemFirst(t *testing.T) {
	s := New(seedMessage())

	require.NoError(t, s.AppendUser("How many PTO days do I get?"))
	require.NoError(t, s.AppendAssistant(core.Message{Content: "You get 15 days. See Benefits page."}))

	snap := s.Snapshot()
	require.Len(t, snap, 3)
	assert.Equal(t, core.RoleSystem, snap[0].Role)

	// Exactly one system message, always at index 0.
	systemCount := 0
	for _, m := range snap {
		if m.Role == core.RoleSystem {
			systemCount++
		}
	}
	assert.Equal(t, 1, systemCount)

	// The visible transcript never includes it.
	for _, m := range s.Visible() {
		assert.NotEqual(t, core.RoleSystem, m.Role)
	}
	assert.Len(t, s.Visible(), 2)
}

func TestClearResetsToInitialState(t *testing.T) {
	tests := []struct {
		name    string
		seed    *core.Message
		wantLen int
	}{
		{name: "empty session", seed: nil, wantLen: 0},
		{name: "seeded session", seed: seedMessage(), wantLen: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.seed)
			require.NoError(t, s.AppendUser("hello"))

			s.Clear()
			first := s.Snapshot()
			assert.Len(t, first, tt.wantLen)
			assert.Equal(t, StateEmpty, s.State())

			// Idempotent: clearing twice yields the same state.
			s.Clear()
			assert.True(t, reflect.DeepEqual(first, s.Snapshot()))
			assert.Equal(t, StateEmpty, s.State())
		})
	}
}

func TestStateTransitions(t *testing.T) {
	s := New(seedMessage())
	assert.Equal(t, StateEmpty, s.State())

	require.NoError(t, s.AppendUser("question"))
	assert.Equal(t, StateAwaitingReply, s.State())

	require.NoError(t, s.AppendAssistant(core.Message{Content: "answer"}))
	assert.Equal(t, StateIdle, s.State())

	// A failed turn settles back to idle with the question kept.
	require.NoError(t, s.AppendUser("another question"))
	assert.Equal(t, StateAwaitingReply, s.State())
	s.Settle()
	assert.Equal(t, StateIdle, s.State())
	assert.Len(t, s.Visible(), 3)

	s.Clear()
	assert.Equal(t, StateEmpty, s.State())
}

func TestSettleOutsideTurnIsNoop(t *testing.T) {
	s := New(nil)
	s.Settle()
	assert.Equal(t, StateEmpty, s.State())
}

func TestSnapshotIsACopy(t *testing.T) {
	s := New(nil)
	require.NoError(t, s.AppendUser("original"))

	snap := s.Snapshot()
	snap[0].Content = "mutated"

	assert.Equal(t, "original", s.Snapshot()[0].Content)
}

func TestOnChangeFiresOnAppendAndClear(t *testing.T) {
	s := New(nil)
	fired := 0
	s.OnChange(func() { fired++ })

	require.NoError(t, s.AppendUser("one"))
	require.NoError(t, s.AppendAssistant(core.Message{Content: "two"}))
	s.Clear()

	assert.Equal(t, 3, fired)
}

func TestPromptTokensGrowsWithHistory(t *testing.T) {
	s := New(seedMessage())
	before := s.PromptTokens()
	assert.Greater(t, before, 0)

	require.NoError(t, s.AppendUser("What is the parental leave policy in detail?"))
	assert.Greater(t, s.PromptTokens(), before)
}
