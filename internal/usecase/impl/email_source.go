package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"foundmoney/config"
	"foundmoney/internal/domain/entity"
	"foundmoney/internal/domain/repository"
	"foundmoney/internal/domain/service"
	"foundmoney/internal/errors"

	"go.uber.org/fx"
)

// mailboxKeywords are OR-ed into the mailbox search.
var mailboxKeywords = []string{
	"refund", "rebate", "settlement", "class action", "reimbursement",
	"overcharge", "price adjustment", "credit", "claim", "compensation",
}

// emailScore is the fixed match score of email findings. They come from the
// user's own mail, so they skip the scorer.
const emailScore = 50

// emailScan is the outcome of one pass over the mailbox.
type emailScan struct {
	EmailsScanned int
	Candidates    []*entity.OpportunityCandidate
}

// EmailSource is the SourceAdapter of the mailbox channel.
type EmailSource struct {
	profileRepo repository.ProfileRepository
	scanRepo    repository.EmailScanRepository
	mailbox     service.Mailbox
	analyzer    service.EmailAnalyzer
	query       service.MailboxQuery
	logger      *slog.Logger
	now         func() time.Time
}

// EmailSourceParams holds the dependencies of the mailbox source.
type EmailSourceParams struct {
	fx.In

	Config        *config.Config
	Logger        *slog.Logger
	ProfileRepo   repository.ProfileRepository
	EmailScanRepo repository.EmailScanRepository
	Mailbox       service.Mailbox
	Analyzer      service.EmailAnalyzer
}

// NewEmailSource creates the mailbox source shared by the aggregator and
// manual scans.
func NewEmailSource(params EmailSourceParams) *EmailSource {
	return newEmailSource(params.ProfileRepo, params.EmailScanRepo, params.Mailbox, params.Analyzer, mailboxQuery(params.Config.Gmail), params.Logger)
}

// mailboxQuery bounds a scan; an absent gmail section keeps the defaults.
func mailboxQuery(cfg *config.GmailConfig) service.MailboxQuery {
	query := service.MailboxQuery{
		Keywords:   mailboxKeywords,
		NewerThan:  "1y",
		MaxResults: 50,
		FetchLimit: 20,
		MaxChars:   5000,
	}
	if cfg == nil {
		return query
	}
	if cfg.NewerThan != "" {
		query.NewerThan = cfg.NewerThan
	}
	if cfg.MaxResults > 0 {
		query.MaxResults = cfg.MaxResults
	}
	if cfg.FetchLimit > 0 {
		query.FetchLimit = cfg.FetchLimit
	}
	if cfg.MaxBodyChars > 0 {
		query.MaxChars = cfg.MaxBodyChars
	}

	return query
}

func newEmailSource(
	profileRepo repository.ProfileRepository,
	scanRepo repository.EmailScanRepository,
	mailbox service.Mailbox,
	analyzer service.EmailAnalyzer,
	query service.MailboxQuery,
	logger *slog.Logger,
) *EmailSource {
	if len(query.Keywords) == 0 {
		query.Keywords = mailboxKeywords
	}

	return &EmailSource{
		profileRepo: profileRepo,
		scanRepo:    scanRepo,
		mailbox:     mailbox,
		analyzer:    analyzer,
		query:       query,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *EmailSource) Source() entity.SourceType {
	return entity.SourceEmail
}

func (s *EmailSource) Search(ctx context.Context, profile *entity.UserProfile) ([]*entity.OpportunityCandidate, error) {
	scan, err := s.scan(ctx, profile)
	if err != nil {
		return nil, err
	}

	return scan.Candidates, nil
}

// scan lists, analyzes and records one mailbox pass. A user who never
// connected gets ErrMailboxNotConnected and no scan row.
func (s *EmailSource) scan(ctx context.Context, profile *entity.UserProfile) (*emailScan, error) {
	if !profile.HasMailboxGrant() {
		return nil, service.ErrMailboxNotConnected
	}

	startedAt := s.now()
	messages, err := s.listMessages(ctx, profile)
	if err != nil {
		s.recordScan(ctx, &entity.EmailScan{
			UserID:       profile.ID,
			Status:       entity.ScanFailed,
			ErrorMessage: err.Error(),
			StartedAt:    startedAt,
		})

		return nil, err
	}

	scan := &emailScan{
		EmailsScanned: len(messages),
		Candidates:    make([]*entity.OpportunityCandidate, 0),
	}
	for _, message := range messages {
		findings, err := s.analyzer.Analyze(ctx, message)
		if err != nil {
			s.logger.WarnContext(ctx, "Email analysis failed, skipping message",
				slog.String("message_id", message.ID),
				slog.Any("error", err),
			)

			continue
		}
		for idx, finding := range findings {
			scan.Candidates = append(scan.Candidates, emailCandidate(message, idx, finding))
		}
	}

	s.recordScan(ctx, &entity.EmailScan{
		UserID:             profile.ID,
		EmailsScanned:      scan.EmailsScanned,
		OpportunitiesFound: len(scan.Candidates),
		Status:             entity.ScanCompleted,
		StartedAt:          startedAt,
	})

	return scan, nil
}

// listMessages retries once with a refreshed token when the stored access
// token is rejected. The refreshed grant is persisted for later scans.
func (s *EmailSource) listMessages(ctx context.Context, profile *entity.UserProfile) ([]*entity.EmailMessage, error) {
	messages, err := s.mailbox.ListMessages(ctx, profile.Mailbox, s.query)
	if err == nil || !errors.Is(err, service.ErrMailboxAuthExpired) {
		return messages, err
	}

	grant, err := s.mailbox.Refresh(ctx, profile.Mailbox)
	if err != nil {
		if errors.Is(err, service.ErrMailboxAuthExpired) {
			return nil, err
		}

		return nil, errors.Wrap(service.ErrMailboxAuthExpired, err.Error())
	}

	if err := s.profileRepo.SaveMailboxGrant(context.WithoutCancel(ctx), profile.ID, grant); err != nil {
		s.logger.WarnContext(ctx, "Failed to store refreshed mailbox grant", slog.Any("error", err))
	}
	profile.Mailbox = grant

	return s.mailbox.ListMessages(ctx, grant, s.query)
}

func (s *EmailSource) recordScan(ctx context.Context, scan *entity.EmailScan) {
	scan.CompletedAt = s.now()
	if err := s.scanRepo.Create(context.WithoutCancel(ctx), scan); err != nil {
		s.logger.WarnContext(ctx, "Failed to record email scan", slog.Any("error", err))
	}
}

// emailCandidate maps one finding. The message ID plus the finding's position
// identifies it, so rescanning the same mail upserts the same rows.
func emailCandidate(message *entity.EmailMessage, idx int, finding *entity.EmailFinding) *entity.OpportunityCandidate {
	candidate := &entity.OpportunityCandidate{
		SourceType:  entity.SourceEmail,
		RawSourceID: fmt.Sprintf("%s:%d", message.ID, idx),
		Company:     finding.Company,
		Description: finding.Description,
		Amount:      entity.ParseAmount(finding.Amount),
		Match: &entity.MatchResult{
			Score:          emailScore,
			Reasons:        []string{"Found in an email from " + senderName(message.From)},
			LikelyEligible: true,
		},
		Payload: &entity.EmailPayload{
			MessageID:      message.ID,
			Subject:        message.Subject,
			From:           message.From,
			ReceivedAt:     message.ReceivedAt,
			Kind:           finding.Kind,
			ActionRequired: finding.ActionRequired,
			DeadlineText:   finding.Deadline,
		},
	}
	if deadline, err := time.Parse(time.DateOnly, strings.TrimSpace(finding.Deadline)); err == nil {
		candidate.Deadline = &deadline
	}

	return candidate
}

// senderName reduces `"Acme" <billing@acme.com>` to Acme.
func senderName(from string) string {
	name, _, found := strings.Cut(from, "<")
	if !found {
		return strings.TrimSpace(from)
	}
	name = strings.Trim(strings.TrimSpace(name), `"`)
	if name == "" {
		return strings.TrimSpace(from)
	}

	return name
}
