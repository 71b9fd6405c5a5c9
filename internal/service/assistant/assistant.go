// Package assistant holds the relay logic for one conversational turn.
package assistant

import (
	"context"

	"github.com/Dwayne234/HR-PeopleTeam/internal/core"
	"github.com/Dwayne234/HR-PeopleTeam/internal/service/session"
	"github.com/Dwayne234/HR-PeopleTeam/pkg/log"
)

type Assistant struct {
	provider core.CompletionProvider
}

func New(provider core.CompletionProvider) *Assistant {
	return &Assistant{provider: provider}
}

// Ask relays the full history to the completion provider and returns the
// assistant's reply. It never touches the store; sequencing of appends is
// the transport's job so a failed call leaves exactly the pending user
// question behind.
func (a *Assistant) Ask(ctx context.Context, history []core.Message) (core.Message, error) {
	reply, err := a.provider.Complete(ctx, history)
	if err != nil {
		log.FromCtx(ctx).Error().Err(err).Msg("completion failed")
		return core.Message{}, err
	}
	return reply, nil
}

// Turn runs one full question/answer exchange against the session: append
// the question, relay, and record the reply. On failure the session settles
// back to idle with the question still recorded.
func (a *Assistant) Turn(ctx context.Context, sess *session.Session, input string) (core.Message, error) {
	if err := sess.AppendUser(input); err != nil {
		return core.Message{}, err
	}

	reply, err := a.Ask(ctx, sess.Snapshot())
	if err != nil {
		sess.Settle()
		return core.Message{}, err
	}

	if err := sess.AppendAssistant(reply); err != nil {
		sess.Settle()
		return core.Message{}, err
	}
	return reply, nil
}
