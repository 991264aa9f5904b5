package llm

import (
	"context"
	"slices"
	"strings"

	"foundmoney/internal/domain/entity"
	"foundmoney/internal/domain/service"
)

type formFiller struct {
	client *Client
}

// NewFormFiller returns the model-backed claim form filler.
func NewFormFiller(client *Client) service.FormFiller {
	return &formFiller{client: client}
}

// Fill implements service.FormFiller. Null and blank answers are dropped.
func (f *formFiller) Fill(ctx context.Context, fields map[string]entity.FormField, userData map[string]any) (map[string]any, error) {
	prompt := "User Information:\n" + marshalIndent(userData) +
		"\n\nForm Fields:\n" + marshalIndent(fields)

	out := make(map[string]any)
	if err := f.client.call(ctx, formFillingPrompt, prompt, formSchema(fields), &out); err != nil {
		return nil, err
	}

	filled := make(map[string]any, len(out))
	for key, value := range out {
		if _, known := fields[key]; !known || value == nil {
			continue
		}
		if text, ok := value.(string); ok && strings.TrimSpace(text) == "" {
			continue
		}
		filled[key] = value
	}

	return filled, nil
}

func formSchema(fields map[string]entity.FormField) toolSchema {
	schema := toolSchema{
		Properties: make(map[string]any, len(fields)),
		Required:   make([]string, 0),
	}
	for name, field := range fields {
		description := field.Description
		if description == "" {
			description = field.Label
		}
		if description == "" {
			description = name
		}
		schema.Properties[name] = map[string]any{
			"type":        []string{"string", "null"},
			"description": description,
		}
		if field.Required {
			schema.Required = append(schema.Required, name)
		}
	}

	slices.Sort(schema.Required)

	return schema
}
