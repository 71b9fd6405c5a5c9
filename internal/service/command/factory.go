package command

import (
	"github.com/Dwayne234/HR-PeopleTeam/internal/core"
	"github.com/Dwayne234/HR-PeopleTeam/internal/service/session"
)

// NewCommands builds the interactive command set shared by both transports.
func NewCommands(sess *session.Session, exportDir string) []core.Command {
	return []core.Command{
		NewClearCommand(sess),
		NewExportCommand(sess, exportDir),
	}
}

// NewRouter wires the command set plus /help, which needs the router itself.
func NewRouter(sess *session.Session, exportDir string) *Router {
	router := New(NewCommands(sess, exportDir))
	router.commands["help"] = NewHelpCommand(router)
	return router
}
