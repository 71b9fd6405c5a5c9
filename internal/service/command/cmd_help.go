package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/Dwayne234/HR-PeopleTeam/internal/core"
)

type helpCommand struct {
	router *Router
}

func NewHelpCommand(router *Router) core.Command {
	return &helpCommand{router: router}
}

func (c *helpCommand) Name() string {
	return "help"
}

func (c *helpCommand) Description() string {
	return "List available commands"
}

func (c *helpCommand) Execute(ctx context.Context, args []string) (string, error) {
	var b strings.Builder
	b.WriteString("Available commands:\n")
	for _, cmd := range c.router.ListCommands() {
		fmt.Fprintf(&b, "  /%s - %s\n", cmd.Name(), cmd.Description())
	}
	return strings.TrimRight(b.String(), "\n"), nil
}
