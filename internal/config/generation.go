package config

import (
	"context"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/Dwayne234/HR-PeopleTeam/pkg/log"
)

// GenerationConfig carries the sampling parameters sent with every
// completion request. The values are a product decision, so all of them
// are environment-tunable rather than hardcoded.
type GenerationConfig struct {
	Temperature float64       `env:"GENAI_TEMPERATURE" envDefault:"0.1"`
	TopP        float64       `env:"GENAI_TOP_P" envDefault:"0.9"`
	MaxTokens   int           `env:"GENAI_MAX_TOKENS" envDefault:"1024"`
	Timeout     time.Duration `env:"GENAI_HTTP_TIMEOUT" envDefault:"120s"`
}

func NewGenerationConfig(ctx context.Context) *GenerationConfig {
	c := &GenerationConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Generation config")
	}
	return c
}
