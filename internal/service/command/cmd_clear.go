package command

import (
	"context"

	"github.com/Dwayne234/HR-PeopleTeam/internal/core"
	"github.com/Dwayne234/HR-PeopleTeam/internal/service/session"
)

type clearCommand struct {
	sess *session.Session
}

func NewClearCommand(sess *session.Session) core.Command {
	return &clearCommand{sess: sess}
}

func (c *clearCommand) Name() string {
	return "clear"
}

func (c *clearCommand) Description() string {
	return "Clear the chat history"
}

func (c *clearCommand) Execute(ctx context.Context, args []string) (string, error) {
	c.sess.Clear()
	return "Chat history cleared.", nil
}
