package llm

import (
	"context"
	"slices"
	"strings"

	"foundmoney/internal/domain/entity"
	"foundmoney/internal/domain/service"
)

var emailSchema = toolSchema{
	Properties: map[string]any{
		"found": map[string]any{"type": "boolean"},
		"opportunities": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"type":            map[string]any{"type": "string", "enum": entity.EmailFindingKinds},
					"company":         map[string]any{"type": "string"},
					"amount":          map[string]any{"type": "string"},
					"description":     map[string]any{"type": "string"},
					"action_required": map[string]any{"type": "string"},
					"deadline":        map[string]any{"type": []string{"string", "null"}},
				},
				"required": []string{"type", "company", "amount", "description", "action_required", "deadline"},
			},
		},
	},
	Required: []string{"found", "opportunities"},
}

type emailOutput struct {
	Found         bool                   `json:"found"`
	Opportunities []*entity.EmailFinding `json:"opportunities"`
}

type emailAnalyzer struct {
	client *Client
}

// NewEmailAnalyzer returns the model-backed email analyzer.
func NewEmailAnalyzer(client *Client) service.EmailAnalyzer {
	return &emailAnalyzer{client: client}
}

// Analyze implements service.EmailAnalyzer.
func (a *emailAnalyzer) Analyze(ctx context.Context, message *entity.EmailMessage) ([]*entity.EmailFinding, error) {
	var prompt strings.Builder
	prompt.WriteString("Email content:\n\n")
	if message.Subject != "" {
		prompt.WriteString("Subject: " + message.Subject + "\n")
	}
	if message.From != "" {
		prompt.WriteString("From: " + message.From + "\n")
	}
	prompt.WriteString("\n" + message.Body)

	var out emailOutput
	if err := a.client.call(ctx, emailAnalysisPrompt, prompt.String(), emailSchema, &out); err != nil {
		return nil, err
	}
	if !out.Found {
		return []*entity.EmailFinding{}, nil
	}

	findings := make([]*entity.EmailFinding, 0, len(out.Opportunities))
	for _, finding := range out.Opportunities {
		if finding == nil || strings.TrimSpace(finding.Company) == "" {
			continue
		}
		if !slices.Contains(entity.EmailFindingKinds, finding.Kind) {
			finding.Kind = entity.FindingOther
		}
		findings = append(findings, finding)
	}

	return findings, nil
}
