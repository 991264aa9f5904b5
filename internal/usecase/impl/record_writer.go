package impl

import (
	"context"
	"encoding/json"
	"log/slog"

	"foundmoney/internal/domain/entity"
	"foundmoney/internal/domain/repository"
	"foundmoney/internal/errors"

	"github.com/google/uuid"
)

// recordWriter persists one source's surviving candidates as a single batch.
type recordWriter struct {
	repo   repository.MoneyFoundRepository
	logger *slog.Logger
}

func newRecordWriter(repo repository.MoneyFoundRepository, logger *slog.Logger) *recordWriter {
	return &recordWriter{repo: repo, logger: logger}
}

// persist upserts the candidates by natural key. The write is detached from
// ctx cancellation so an abandoned request still stores what was found.
func (w *recordWriter) persist(ctx context.Context, userID uuid.UUID, source entity.SourceType, candidates []*entity.OpportunityCandidate) error {
	if len(candidates) == 0 {
		return nil
	}

	records := make([]*entity.MoneyFoundRecord, 0, len(candidates))
	for _, candidate := range candidates {
		record, err := toMoneyFoundRecord(userID, candidate)
		if err != nil {
			return err
		}
		records = append(records, record)
	}

	if err := w.repo.UpsertBatch(context.WithoutCancel(ctx), records); err != nil {
		w.logger.ErrorContext(ctx, "Failed to persist money-found records",
			slog.String("source", string(source)),
			slog.Int("count", len(records)),
			slog.Any("error", err),
		)

		return errors.Wrapf(err, "persist %s records", source)
	}

	return nil
}

// toMoneyFoundRecord maps a scored candidate to its durable form.
func toMoneyFoundRecord(userID uuid.UUID, candidate *entity.OpportunityCandidate) (*entity.MoneyFoundRecord, error) {
	if err := candidate.Validate(); err != nil {
		return nil, err
	}

	metadata, err := json.Marshal(candidate.Payload)
	if err != nil {
		return nil, errors.Wrapf(err, "encode metadata of %s", candidate.RawSourceID)
	}

	record := &entity.MoneyFoundRecord{
		UserID:                  userID,
		SourceType:              candidate.SourceType,
		ExternalID:              candidate.RawSourceID,
		Amount:                  candidate.Amount.String(),
		AmountNumeric:           candidate.Amount.Numeric(),
		CompanyName:             candidate.Company,
		Description:             candidate.Description,
		EligibilityRequirements: candidate.Eligibility(),
		ClaimURL:                candidate.ClaimURL(),
		ClaimDeadline:           candidate.Deadline,
		Status:                  entity.StatusUnclaimed,
		MatchReasons:            []string{},
		Metadata:                metadata,
	}
	if candidate.Match != nil {
		record.MatchScore = candidate.Match.Score
		if candidate.Match.Reasons != nil {
			record.MatchReasons = candidate.Match.Reasons
		}
	}

	return record, nil
}
