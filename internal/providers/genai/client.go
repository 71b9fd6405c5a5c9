package genai

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Dwayne234/HR-PeopleTeam/internal/core"
	"github.com/Dwayne234/HR-PeopleTeam/pkg/log"
)

const completionPath = "/api/v1/chat/completions"

// Client talks to a GenAI agent endpoint. It sends the full ordered
// conversation (system message first when present) on every call and
// extracts the first choice's answer text.
type Client struct {
	baseProvider
	temperature float64
	topP        float64
	maxTokens   int
	now         func() time.Time
}

type Config struct {
	BaseURL     string
	AccessKey   string
	Temperature float64
	TopP        float64
	MaxTokens   int
	Timeout     time.Duration
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &Client{
		baseProvider: newBaseProvider(cfg.BaseURL, cfg.AccessKey, timeout),
		temperature:  cfg.Temperature,
		topP:         cfg.TopP,
		maxTokens:    cfg.MaxTokens,
		now:          time.Now,
	}
}

type completionRequest struct {
	Messages    []core.Message `json:"messages"`
	Stream      bool           `json:"stream"`
	Temperature float64        `json:"temperature"`
	TopP        float64        `json:"top_p"`
	MaxTokens   int            `json:"max_tokens"`

	// Diagnostic payloads are never requested.
	IncludeFunctionsInfo  bool `json:"include_functions_info"`
	IncludeRetrievalInfo  bool `json:"include_retrieval_info"`
	IncludeGuardrailsInfo bool `json:"include_guardrails_info"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete implements core.CompletionProvider. Missing configuration is
// reported before any network I/O.
func (c *Client) Complete(ctx context.Context, history []core.Message) (core.Message, error) {
	if err := c.checkConfig(); err != nil {
		return core.Message{}, err
	}

	payload := completionRequest{
		Messages:    history,
		Stream:      false,
		Temperature: c.temperature,
		TopP:        c.topP,
		MaxTokens:   c.maxTokens,
	}

	resp, err := c.doRequest(ctx, http.MethodPost, completionPath, payload)
	if err != nil {
		return core.Message{}, err
	}
	defer resp.Body.Close()

	answer, err := parseAnswer(resp)
	if err != nil {
		return core.Message{}, err
	}

	log.FromCtx(ctx).Debug().Int("history", len(history)).Msg("completion received")

	return core.Message{
		Role:      core.RoleAssistant,
		Content:   answer,
		Timestamp: c.now().Format(core.TimestampLayout),
	}, nil
}

func (c *Client) checkConfig() error {
	var missing []string
	if c.baseURL == "" {
		missing = append(missing, "GENAI_API_URL")
	}
	if c.apiKey == "" {
		missing = append(missing, "AGENT_ACCESS_KEY")
	}
	if len(missing) > 0 {
		return &ConfigError{Missing: missing}
	}
	return nil
}

func parseAnswer(resp *http.Response) (string, error) {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &RemoteError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	var result completionResponse
	if err := json.Unmarshal(data, &result); err != nil {
		return "", fmt.Errorf("decode: %w", err)
	}

	// An answer-less but well-formed reply is a soft failure: the literal
	// fallback text is recorded as the assistant's answer.
	if len(result.Choices) == 0 || result.Choices[0].Message.Content == "" {
		return core.FallbackAnswer, nil
	}
	return result.Choices[0].Message.Content, nil
}
