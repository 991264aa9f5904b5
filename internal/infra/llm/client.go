// Package llm implements the scorer, email analyzer and form filler on top of
// the Anthropic Messages API with forced tool-use structured output.
package llm

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"foundmoney/config"
	"foundmoney/internal/errors"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const (
	structuredToolName = "return_structured_data"
	defaultMaxTokens   = 4096
	defaultTemperature = 0.3
)

// ErrNotConfigured is returned by every call when no API key is set.
var ErrNotConfigured = errors.New("llm api key is not configured")

// ErrNoStructuredOutput means the model answered without calling the tool.
var ErrNoStructuredOutput = errors.New("no structured output returned")

type messageAPI interface {
	New(ctx context.Context, body anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

// toolSchema is the JSON schema of the forced tool's input.
type toolSchema struct {
	Properties map[string]any
	Required   []string
}

// Client sends one structured request, trying the fallback model when the
// primary fails for any reason other than authentication.
type Client struct {
	messages      messageAPI
	primaryModel  string
	fallbackModel string
	maxTokens     int64
	temperature   float64
	logger        *slog.Logger
}

// NewClient builds a client from cfg. A nil cfg or empty key yields a client
// whose calls fail with ErrNotConfigured.
func NewClient(cfg *config.LLMConfig, logger *slog.Logger, opts ...option.RequestOption) *Client {
	c := &Client{
		maxTokens:   defaultMaxTokens,
		temperature: defaultTemperature,
		logger:      logger,
	}
	if cfg == nil || cfg.APIKey == "" {
		return c
	}

	c.primaryModel = cfg.PrimaryModel
	c.fallbackModel = cfg.FallbackModel
	if cfg.MaxTokens > 0 {
		c.maxTokens = cfg.MaxTokens
	}
	if cfg.Temperature > 0 {
		c.temperature = cfg.Temperature
	}

	requestOpts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		// The fallback model is the retry policy.
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		requestOpts = append(requestOpts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		requestOpts = append(requestOpts, option.WithRequestTimeout(cfg.Timeout))
	}
	requestOpts = append(requestOpts, opts...)

	client := anthropic.NewClient(requestOpts...)
	c.messages = &client.Messages

	return c
}

// Configured reports whether an API key was supplied.
func (c *Client) Configured() bool {
	return c.messages != nil
}

// call asks the model to answer through the structured tool and decodes the
// tool input into dest.
func (c *Client) call(ctx context.Context, system, prompt string, schema toolSchema, dest any) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	err := c.callModel(ctx, c.primaryModel, system, prompt, schema, dest)
	if err == nil {
		return nil
	}
	if isAuthError(err) || c.fallbackModel == "" || c.fallbackModel == c.primaryModel || ctx.Err() != nil {
		return err
	}

	c.logger.WarnContext(ctx, "primary model failed, trying fallback",
		slog.String("primary", c.primaryModel),
		slog.String("fallback", c.fallbackModel),
		slog.Any("error", err),
	)

	return c.callModel(ctx, c.fallbackModel, system, prompt, schema, dest)
}

func (c *Client) callModel(ctx context.Context, model, system, prompt string, schema toolSchema, dest any) error {
	msg, err := c.messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(model),
		MaxTokens:   c.maxTokens,
		Temperature: anthropic.Float(c.temperature),
		System:      []anthropic.TextBlockParam{{Text: system}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
		Tools: []anthropic.ToolUnionParam{{
			OfTool: &anthropic.ToolParam{
				Name:        structuredToolName,
				Description: anthropic.String("Returns the structured data in the specified JSON format"),
				InputSchema: anthropic.ToolInputSchemaParam{
					Properties: schema.Properties,
					Required:   schema.Required,
				},
			},
		}},
		ToolChoice: anthropic.ToolChoiceParamOfTool(structuredToolName),
	})
	if err != nil {
		return errors.Wrapf(err, "model %s", model)
	}

	for _, block := range msg.Content {
		if block.Type != "tool_use" || block.Name != structuredToolName {
			continue
		}
		if err := json.Unmarshal(block.Input, dest); err != nil {
			return errors.Wrapf(err, "decode %s output", model)
		}

		return nil
	}

	return errors.Wrapf(ErrNoStructuredOutput, "model %s", model)
}

func isAuthError(err error) bool {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized
	}

	return false
}

// marshalIndent renders prompt context; it never fails for the plain structs used here.
func marshalIndent(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "{}"
	}

	return string(data)
}
