package impl

import (
	"cmp"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"slices"
	"strings"
	"time"

	"foundmoney/internal/domain/entity"
	"foundmoney/internal/domain/service"
)

const scoringUnavailableReason = "scoring unavailable"

// ScoringPolicy holds the thresholds applied after scoring.
type ScoringPolicy struct {
	Threshold int           // Candidates scoring at or below are dropped.
	Neutral   int           // Score assigned when the scorer fails.
	CacheTTL  time.Duration // Lifetime of cached verdicts.
}

// scoringPipeline scores candidates one by one, memoizing successful
// verdicts when a cache is configured.
type scoringPipeline struct {
	scorer service.MatchScorer
	cache  service.ScoreCache // Nil disables memoization.
	policy ScoringPolicy
	logger *slog.Logger
}

func newScoringPipeline(scorer service.MatchScorer, cache service.ScoreCache, policy ScoringPolicy, logger *slog.Logger) *scoringPipeline {
	return &scoringPipeline{
		scorer: scorer,
		cache:  cache,
		policy: policy,
		logger: logger,
	}
}

// scoreAndFilter scores every candidate sequentially and returns the ones
// above the threshold, best first.
func (p *scoringPipeline) scoreAndFilter(ctx context.Context, profile *entity.UserProfile, candidates []*entity.OpportunityCandidate) []*entity.OpportunityCandidate {
	profileDigest := digestProfile(profile)

	kept := make([]*entity.OpportunityCandidate, 0, len(candidates))
	for _, candidate := range candidates {
		candidate.Match = p.score(ctx, profile, profileDigest, candidate)
		if candidate.Match.Score > p.policy.Threshold {
			kept = append(kept, candidate)
		}
	}
	sortCandidates(kept)

	return kept
}

func (p *scoringPipeline) score(ctx context.Context, profile *entity.UserProfile, profileDigest string, candidate *entity.OpportunityCandidate) *entity.MatchResult {
	key := profileDigest + ":" + digestCandidate(candidate)

	if p.cache != nil {
		cached, ok, err := p.cache.Get(ctx, key)
		if err != nil {
			p.logger.WarnContext(ctx, "Score cache read failed", slog.Any("error", err))
		} else if ok {
			return cached
		}
	}

	result, err := p.scorer.Score(ctx, profile, candidate)
	if err != nil {
		p.logger.WarnContext(ctx, "Scoring failed, applying neutral score",
			slog.String("source", string(candidate.SourceType)),
			slog.String("candidate_id", candidate.RawSourceID),
			slog.Any("error", err),
		)

		return p.neutral()
	}
	result.Score = min(max(result.Score, 0), 100)

	if p.cache != nil {
		if err := p.cache.Set(ctx, key, result, p.policy.CacheTTL); err != nil {
			p.logger.WarnContext(ctx, "Score cache write failed", slog.Any("error", err))
		}
	}

	return result
}

func (p *scoringPipeline) neutral() *entity.MatchResult {
	return &entity.MatchResult{
		Score:   p.policy.Neutral,
		Reasons: []string{scoringUnavailableReason},
		Neutral: true,
	}
}

// sortCandidates orders by score, then by amount ceiling, both descending.
func sortCandidates(candidates []*entity.OpportunityCandidate) {
	slices.SortStableFunc(candidates, func(a, b *entity.OpportunityCandidate) int {
		scoreA, _ := a.Score()
		scoreB, _ := b.Score()
		if c := cmp.Compare(scoreB, scoreA); c != 0 {
			return c
		}

		return cmp.Compare(b.Amount.UpperBound(), a.Amount.UpperBound())
	})
}

// digestProfile hashes the profile fields the scorer sees.
func digestProfile(profile *entity.UserProfile) string {
	addresses := make([]string, 0, len(profile.Addresses))
	for _, addr := range profile.Addresses {
		if addr == nil {
			continue
		}
		addresses = append(addresses, strings.ToLower(strings.Join([]string{addr.City, addr.State, boolString(addr.IsCurrent)}, "|")))
	}
	slices.Sort(addresses)

	return digest(struct {
		First     string   `json:"f"`
		Last      string   `json:"l"`
		Addresses []string `json:"a"`
	}{
		First:     strings.ToLower(strings.TrimSpace(profile.FirstName)),
		Last:      strings.ToLower(strings.TrimSpace(profile.LastName)),
		Addresses: addresses,
	})
}

// digestCandidate hashes the candidate's identity and content, so a changed
// payout or description invalidates the cached verdict.
func digestCandidate(candidate *entity.OpportunityCandidate) string {
	return digest(struct {
		Source      entity.SourceType       `json:"s"`
		ID          string                  `json:"i"`
		Company     string                  `json:"c"`
		Description string                  `json:"d"`
		Amount      string                  `json:"a"`
		Payload     entity.CandidatePayload `json:"p"`
	}{
		Source:      candidate.SourceType,
		ID:          candidate.RawSourceID,
		Company:     candidate.Company,
		Description: candidate.Description,
		Amount:      candidate.Amount.Raw,
		Payload:     candidate.Payload,
	})
}

func digest(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)

	return hex.EncodeToString(sum[:])
}

func boolString(b bool) string {
	if b {
		return "1"
	}

	return "0"
}
