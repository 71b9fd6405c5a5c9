package config

import (
	"context"
	"path/filepath"

	"github.com/caarlos0/env/v9"

	"github.com/Dwayne234/HR-PeopleTeam/pkg/log"
)

type AppConfig struct {
	RuntimePath string `env:"PEOPLEAI_RUNTIME_PATH" envDefault:".peopleai"`

	// Endpoint credentials. Deliberately not marked required: absence is
	// surfaced as a configuration error when a question is submitted, not
	// at startup.
	BaseURL   string `env:"GENAI_API_URL"`
	AccessKey string `env:"AGENT_ACCESS_KEY"`

	// Transport Flags
	EnableTUI bool `env:"ENABLE_TUI" envDefault:"true"`
	EnableCLI bool `env:"ENABLE_CLI" envDefault:"false"`

	// SystemPrompt seeds new sessions with the People Team system message.
	SystemPrompt bool `env:"SYSTEM_PROMPT_ENABLED" envDefault:"true"`

	ExportDir string `env:"EXPORT_DIR" envDefault:"."`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	if c.RuntimePath == "" {
		c.RuntimePath = ".peopleai"
	}
	c.RuntimePath = resolveRuntimePath(c.RuntimePath)
	return c
}

func (c AppConfig) GetBaseURL() string {
	return c.BaseURL
}

func (c AppConfig) GetAccessKey() string {
	return c.AccessKey
}

func (c AppConfig) GetExportDir() string {
	return c.ExportDir
}

func (c AppConfig) GetHistoryPath() string {
	return filepath.Join(c.RuntimePath, "input_history")
}

func (c AppConfig) GetLogPath() string {
	return filepath.Join(c.RuntimePath, "peopleai.log")
}
