package assistant

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dwayne234/HR-PeopleTeam/internal/core"
	"github.com/Dwayne234/HR-PeopleTeam/internal/providers/genai"
	"github.com/Dwayne234/HR-PeopleTeam/internal/service/session"
)

type fakeProvider struct {
	reply   core.Message
	err     error
	callLog [][]core.Message
}

func (f *fakeProvider) Complete(ctx context.Context, history []core.Message) (core.Message, error) {
	snap := make([]core.Message, len(history))
	copy(snap, history)
	f.callLog = append(f.callLog, snap)
	if f.err != nil {
		return core.Message{}, f.err
	}
	return f.reply, nil
}

func seededSession() *session.Session {
	return session.New(&core.Message{Role: core.RoleSystem, Content: "you are the hr assistant"})
}

func TestTurnSuccessAppendsBothSides(t *testing.T) {
	provider := &fakeProvider{
		reply: core.Message{Role: core.RoleAssistant, Content: "You get 15 days. See Benefits page.", Timestamp: "2025-03-14 09:30:05"},
	}
	sess := seededSession()
	a := New(provider)

	reply, err := a.Turn(context.Background(), sess, "How many PTO days do I get?")
	require.NoError(t, err)
	assert.Equal(t, "You get 15 days. See Benefits page.", reply.Content)

	snap := sess.Snapshot()
	require.Len(t, snap, 3)
	assert.Equal(t, core.RoleSystem, snap[0].Role)
	assert.Equal(t, core.RoleUser, snap[1].Role)
	assert.Equal(t, core.RoleAssistant, snap[2].Role)
	assert.Equal(t, session.StateIdle, sess.State())

	// The provider saw the full history including the system message and
	// the just-appended question.
	require.Len(t, provider.callLog, 1)
	require.Len(t, provider.callLog[0], 2)
	assert.Equal(t, core.RoleSystem, provider.callLog[0][0].Role)
	assert.Equal(t, "How many PTO days do I get?", provider.callLog[0][1].Content)
}

func TestTurnFailureKeepsQuestionOnly(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "configuration error", err: &genai.ConfigError{Missing: []string{"GENAI_API_URL"}}},
		{name: "transport error", err: &genai.TransportError{Err: context.DeadlineExceeded}},
		{name: "remote error", err: &genai.RemoteError{StatusCode: 500, Body: "boom"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &fakeProvider{err: tt.err}
			sess := seededSession()
			a := New(provider)

			_, err := a.Turn(context.Background(), sess, "question")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.err)

			// The question stays; no assistant message was recorded.
			visible := sess.Visible()
			require.Len(t, visible, 1)
			assert.Equal(t, core.RoleUser, visible[0].Role)
			assert.Equal(t, session.StateIdle, sess.State())
		})
	}
}

func TestTurnRejectsEmptyInput(t *testing.T) {
	provider := &fakeProvider{}
	sess := seededSession()
	a := New(provider)

	_, err := a.Turn(context.Background(), sess, "")
	require.Error(t, err)
	assert.Empty(t, provider.callLog)
}

func TestTurnRecordsFallbackAnswer(t *testing.T) {
	// The malformed-response case reaches the assistant as a normal reply
	// carrying the fallback text, and is recorded like any answer.
	provider := &fakeProvider{
		reply: core.Message{Role: core.RoleAssistant, Content: core.FallbackAnswer},
	}
	sess := seededSession()
	a := New(provider)

	reply, err := a.Turn(context.Background(), sess, "question with no answer")
	require.NoError(t, err)
	assert.Equal(t, core.FallbackAnswer, reply.Content)

	visible := sess.Visible()
	require.Len(t, visible, 2)
	assert.Equal(t, core.FallbackAnswer, visible[1].Content)
}
