// Package tui is the default transport: a full-screen terminal chat bound
// to one session.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Dwayne234/HR-PeopleTeam/internal/core"
	"github.com/Dwayne234/HR-PeopleTeam/internal/service/assistant"
	"github.com/Dwayne234/HR-PeopleTeam/internal/service/session"
	"github.com/Dwayne234/HR-PeopleTeam/pkg/log"
)

type Chat struct {
	sess   *session.Session
	asst   *assistant.Assistant
	router core.CmdRouter
	prog   *tea.Program
	send   func(tea.Msg)
}

func NewChat(sess *session.Session, asst *assistant.Assistant, router core.CmdRouter) *Chat {
	return &Chat{
		sess:   sess,
		asst:   asst,
		router: router,
	}
}

func (c *Chat) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Str("session", c.sess.ID()).Msg("chat interface started")

	m := newModel(ctx, c.sess, c.asst, c.router)
	c.prog = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	c.send = c.prog.Send
	c.wireRefresh()

	_, err := c.prog.Run()
	if err != nil && ctx.Err() != nil {
		// Quitting via signal is a clean shutdown.
		return nil
	}
	return err
}

// wireRefresh repaints the transcript on every session mutation, so clears
// issued through the command router never leave a stale pane. Send runs on
// its own goroutine: the hook can fire from inside the update loop.
func (c *Chat) wireRefresh() {
	c.sess.OnChange(func() {
		go c.send(transcriptChangedMsg{})
	})
}

func (c *Chat) Shutdown(ctx context.Context) error {
	if c.prog != nil {
		c.prog.Quit()
	}
	return nil
}
