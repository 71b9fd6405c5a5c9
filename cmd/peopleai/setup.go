package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"

	"github.com/Dwayne234/HR-PeopleTeam/internal/config"
	"github.com/Dwayne234/HR-PeopleTeam/internal/core"
	"github.com/Dwayne234/HR-PeopleTeam/internal/providers/genai"
	"github.com/Dwayne234/HR-PeopleTeam/internal/service/assistant"
	"github.com/Dwayne234/HR-PeopleTeam/internal/service/command"
	"github.com/Dwayne234/HR-PeopleTeam/internal/service/prompt"
	"github.com/Dwayne234/HR-PeopleTeam/internal/service/session"
	"github.com/Dwayne234/HR-PeopleTeam/internal/transport/cli"
	"github.com/Dwayne234/HR-PeopleTeam/internal/transport/tui"
	"github.com/Dwayne234/HR-PeopleTeam/pkg/srv"
)

func NewServices(ctx context.Context, appCfg *config.AppConfig, genCfg *config.GenerationConfig) ([]srv.Service, error) {
	// 1. Completion client
	client := genai.NewClient(genai.Config{
		BaseURL:     appCfg.BaseURL,
		AccessKey:   appCfg.AccessKey,
		Temperature: genCfg.Temperature,
		TopP:        genCfg.TopP,
		MaxTokens:   genCfg.MaxTokens,
		Timeout:     genCfg.Timeout,
	})

	// 2. Session, seeded with the system prompt unless disabled
	var seed *core.Message
	if appCfg.SystemPrompt {
		msg := prompt.NewProvider().Build()
		seed = &msg
	}
	sess := session.New(seed)

	// 3. Turn logic and interactive commands
	asst := assistant.New(client)
	router := command.NewRouter(sess, appCfg.ExportDir)

	// 4. Transports
	var services []srv.Service
	if appCfg.EnableTUI {
		services = append(services, tui.NewChat(sess, asst, router))
	}
	if appCfg.EnableCLI {
		rl, err := cli.NewReadLine(appCfg, sess, asst, router)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize readline transport: %w", err)
		}
		services = append(services, rl)
	}
	if len(services) == 0 {
		return nil, fmt.Errorf("no transport enabled, set ENABLE_TUI or ENABLE_CLI")
	}

	return services, nil
}

func loadEnv(path string) error {
	return godotenv.Load(path)
}
