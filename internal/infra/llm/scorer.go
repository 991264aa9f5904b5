package llm

import (
	"context"
	"math"
	"strings"

	"foundmoney/internal/domain/entity"
	"foundmoney/internal/domain/service"
)

var scoreSchema = toolSchema{
	Properties: map[string]any{
		"score": map[string]any{
			"type":        "number",
			"minimum":     0,
			"maximum":     100,
			"description": "Relevance score from 0-100",
		},
		"reasons": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"description": "List of reasons for the score",
		},
		"likely_eligible": map[string]any{
			"type":        "boolean",
			"description": "Whether the user is likely eligible",
		},
	},
	Required: []string{"score", "reasons", "likely_eligible"},
}

type scoreOutput struct {
	Score          float64  `json:"score"`
	Reasons        []string `json:"reasons"`
	LikelyEligible bool     `json:"likely_eligible"`
}

// profileFacts is what the model sees of the user; contact details are left out.
type profileFacts struct {
	Name      string   `json:"name"`
	States    []string `json:"states"`
	Addresses []string `json:"addresses,omitempty"`
}

type opportunityFacts struct {
	Source      entity.SourceType       `json:"source"`
	Company     string                  `json:"company"`
	Description string                  `json:"description"`
	Amount      string                  `json:"amount"`
	Eligibility string                  `json:"eligibility,omitempty"`
	Deadline    string                  `json:"deadline,omitempty"`
	Details     entity.CandidatePayload `json:"details"`
}

type scorer struct {
	client *Client
}

// NewScorer returns the model-backed match scorer.
func NewScorer(client *Client) service.MatchScorer {
	return &scorer{client: client}
}

// Score implements service.MatchScorer.
func (s *scorer) Score(ctx context.Context, profile *entity.UserProfile, candidate *entity.OpportunityCandidate) (*entity.MatchResult, error) {
	prompt := "User Profile:\n" + marshalIndent(toProfileFacts(profile)) +
		"\n\nOpportunity:\n" + marshalIndent(toOpportunityFacts(candidate))

	var out scoreOutput
	if err := s.client.call(ctx, matchingPrompt, prompt, scoreSchema, &out); err != nil {
		return nil, err
	}

	return &entity.MatchResult{
		Score:          clampScore(out.Score),
		Reasons:        out.Reasons,
		LikelyEligible: out.LikelyEligible,
	}, nil
}

func toProfileFacts(profile *entity.UserProfile) profileFacts {
	facts := profileFacts{
		Name:   profile.FullName(),
		States: profile.States(),
	}
	for _, addr := range profile.Addresses {
		if addr == nil {
			continue
		}
		parts := make([]string, 0, 2)
		for _, part := range []string{addr.City, addr.State} {
			if part = strings.TrimSpace(part); part != "" {
				parts = append(parts, part)
			}
		}
		if len(parts) == 0 {
			continue
		}
		label := strings.Join(parts, ", ")
		if addr.IsCurrent {
			label += " (current)"
		}
		facts.Addresses = append(facts.Addresses, label)
	}

	return facts
}

func toOpportunityFacts(candidate *entity.OpportunityCandidate) opportunityFacts {
	facts := opportunityFacts{
		Source:      candidate.SourceType,
		Company:     candidate.Company,
		Description: candidate.Description,
		Amount:      candidate.Amount.String(),
		Eligibility: candidate.Eligibility(),
		Details:     candidate.Payload,
	}
	if candidate.Deadline != nil {
		facts.Deadline = candidate.Deadline.Format("2006-01-02")
	}

	return facts
}

func clampScore(score float64) int {
	if math.IsNaN(score) {
		return 0
	}

	return int(math.Round(math.Max(0, math.Min(100, score))))
}
