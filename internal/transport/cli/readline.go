package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/Dwayne234/HR-PeopleTeam/internal/config"
	"github.com/Dwayne234/HR-PeopleTeam/internal/core"
	"github.com/Dwayne234/HR-PeopleTeam/internal/providers/genai"
	"github.com/Dwayne234/HR-PeopleTeam/internal/service/assistant"
	"github.com/Dwayne234/HR-PeopleTeam/internal/service/session"
	"github.com/Dwayne234/HR-PeopleTeam/pkg/log"
)

// ReadLine is the plain-terminal transport: one prompt, one blocking turn,
// one printed answer.
type ReadLine struct {
	cfg    *config.AppConfig
	sess   *session.Session
	asst   *assistant.Assistant
	router core.CmdRouter
	rl     *readline.Instance
}

func NewReadLine(cfg *config.AppConfig, sess *session.Session, asst *assistant.Assistant, router core.CmdRouter) (*ReadLine, error) {
	if err := os.MkdirAll(cfg.RuntimePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create runtime directory: %w", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          ">>> ",
		HistoryFile:     cfg.GetHistoryPath(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}

	return &ReadLine{
		cfg:    cfg,
		sess:   sess,
		asst:   asst,
		router: router,
		rl:     rl,
	}, nil
}

func (r *ReadLine) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	logger.Info().Str("session", r.sess.ID()).Msg("chat started, type 'exit' to quit")

	fmt.Fprintf(r.rl.Stdout(), "%s\nAsk me anything about HR policies, benefits, or People Team processes!\n", core.AppName)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := r.rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				if len(line) == 0 {
					return nil
				}
				continue
			} else if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "exit" {
			return nil
		}
		if line == "" {
			continue
		}

		if result, handled := r.router.Execute(ctx, line); handled {
			fmt.Fprintf(r.rl.Stdout(), "%s\n", result)
			continue
		}

		fmt.Fprintln(r.rl.Stdout(), "Thinking...")
		reply, err := r.asst.Turn(ctx, r.sess, line)
		if err != nil {
			logger.Error().Err(err).Msg("turn failed")
			fmt.Fprintf(r.rl.Stdout(), "%s\n", describeError(err))
			continue
		}

		fmt.Fprintf(r.rl.Stdout(), "%s (%s): %s\n", core.AssistantDisplayName, reply.Timestamp, reply.Content)
	}
}

func (r *ReadLine) Shutdown(ctx context.Context) error {
	if r.rl != nil {
		return r.rl.Close()
	}
	return nil
}

func describeError(err error) string {
	var cfgErr *genai.ConfigError
	var transportErr *genai.TransportError
	var remoteErr *genai.RemoteError

	switch {
	case errors.As(err, &cfgErr):
		return "Configuration error: " + cfgErr.Error()
	case errors.As(err, &transportErr):
		return "Network error: " + transportErr.Error()
	case errors.As(err, &remoteErr):
		return "Endpoint error: " + remoteErr.Error()
	default:
		return "Error: " + err.Error()
	}
}
