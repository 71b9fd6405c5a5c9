package command

import (
	"context"
	"fmt"
	"time"

	"github.com/Dwayne234/HR-PeopleTeam/internal/core"
	"github.com/Dwayne234/HR-PeopleTeam/internal/service/export"
	"github.com/Dwayne234/HR-PeopleTeam/internal/service/session"
)

type exportCommand struct {
	sess *session.Session
	dir  string
}

func NewExportCommand(sess *session.Session, dir string) core.Command {
	return &exportCommand{sess: sess, dir: dir}
}

func (c *exportCommand) Name() string {
	return "export"
}

func (c *exportCommand) Description() string {
	return "Export the chat as JSON or text: /export json|text"
}

func (c *exportCommand) Execute(ctx context.Context, args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("usage: /export json|text")
	}

	var exporter export.Exporter
	switch args[0] {
	case "json":
		exporter = export.NewJSONExporter()
	case "text", "txt":
		exporter = export.NewTextExporter()
	default:
		return "", fmt.Errorf("unknown format %q, expected json or text", args[0])
	}

	if len(c.sess.Visible()) == 0 {
		return "Nothing to export yet.", nil
	}

	path, err := export.WriteFile(c.dir, exporter, c.sess.Visible(), time.Now())
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Chat exported to %s", path), nil
}
