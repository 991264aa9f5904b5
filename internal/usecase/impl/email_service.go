package impl

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"foundmoney/config"
	deliverycontext "foundmoney/internal/delivery/context"
	"foundmoney/internal/domain/constants"
	domainerrors "foundmoney/internal/domain/errors"
	"foundmoney/internal/domain/entity"
	"foundmoney/internal/domain/repository"
	"foundmoney/internal/domain/service"
	"foundmoney/internal/errors"
	"foundmoney/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	defaultStateTTL       = 10 * time.Minute
	defaultDeepLinkScheme = "foundmoney"
	connectedPath         = "gmail-connected"
)

// Redirect error codes reported to the client after the consent round trip.
const (
	callbackErrDenied   = "access_denied"
	callbackErrState    = "invalid_state"
	callbackErrExpired  = "state_expired"
	callbackErrCode     = "missing_code"
	callbackErrExchange = "exchange_failed"
	callbackErrSave     = "save_failed"
)

// mailboxScanner is the part of EmailSource the email use case drives.
type mailboxScanner interface {
	scan(ctx context.Context, profile *entity.UserProfile) (*emailScan, error)
}

type emailService struct {
	profileRepo    repository.ProfileRepository
	mailbox        service.Mailbox
	stateCodec     service.OAuthStateCodec
	scanner        mailboxScanner
	writer         *recordWriter
	stateTTL       time.Duration
	appBaseURL     string
	deepLinkScheme string
	logger         *slog.Logger
	now            func() time.Time
}

// EmailServiceParams holds the dependencies of the email use case.
type EmailServiceParams struct {
	fx.In

	Config         *config.Config
	Logger         *slog.Logger
	ProfileRepo    repository.ProfileRepository
	MoneyFoundRepo repository.MoneyFoundRepository
	Mailbox        service.Mailbox
	StateCodec     service.OAuthStateCodec
	Source         *EmailSource
}

// NewEmailService creates the mailbox connection and scan use case.
func NewEmailService(params EmailServiceParams) usecase.EmailUsecase {
	svc := &emailService{
		profileRepo:    params.ProfileRepo,
		mailbox:        params.Mailbox,
		stateCodec:     params.StateCodec,
		scanner:        params.Source,
		writer:         newRecordWriter(params.MoneyFoundRepo, params.Logger),
		stateTTL:       defaultStateTTL,
		deepLinkScheme: defaultDeepLinkScheme,
		logger:         params.Logger,
		now:            time.Now,
	}
	if gmail := params.Config.Gmail; gmail != nil && gmail.StateTTL > 0 {
		svc.stateTTL = gmail.StateTTL
	}
	if app := params.Config.App; app != nil {
		svc.appBaseURL = strings.TrimRight(app.BaseURL, "/")
		if app.DeepLinkScheme != "" {
			svc.deepLinkScheme = app.DeepLinkScheme
		}
	}

	return svc
}

// Connect signs the user and issue time into the OAuth state.
func (s *emailService) Connect(_ context.Context, userID uuid.UUID) (string, error) {
	state, err := s.stateCodec.Encode(&service.OAuthState{
		Provider:  constants.MailboxProviderGmail,
		UserID:    userID.String(),
		Timestamp: s.now().UnixMilli(),
	})
	if err != nil {
		return "", errors.Wrap(err, "encode oauth state")
	}

	return s.mailbox.AuthURL(state), nil
}

// Callback verifies the signed state, exchanges the code and stores the
// grant. The state is the only proof of which user started the flow.
func (s *emailService) Callback(ctx context.Context, callback *usecase.OAuthCallback) string {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	mobile := strings.Contains(strings.ToLower(callback.UserAgent), "mobile")

	if callback.Error != "" {
		logger.InfoContext(ctx, "Mailbox consent declined", slog.String("provider_error", callback.Error))

		return s.redirectURL(mobile, callbackErrDenied)
	}

	state, err := s.stateCodec.Decode(callback.State)
	if err != nil {
		logger.WarnContext(ctx, "Invalid OAuth state", slog.Any("error", err))

		return s.redirectURL(mobile, callbackErrState)
	}
	userID, err := uuid.Parse(state.UserID)
	if err != nil || state.Provider != constants.MailboxProviderGmail {
		logger.WarnContext(ctx, "OAuth state does not name a gmail user", slog.String("user_id", state.UserID))

		return s.redirectURL(mobile, callbackErrState)
	}
	if age := s.now().Sub(state.IssuedAt()); age < 0 || age > s.stateTTL {
		logger.InfoContext(ctx, "OAuth state expired", slog.Duration("age", age))

		return s.redirectURL(mobile, callbackErrExpired)
	}
	if callback.Code == "" {
		return s.redirectURL(mobile, callbackErrCode)
	}

	grant, err := s.mailbox.Exchange(ctx, callback.Code)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to exchange authorization code",
			slog.String("user_id", userID.String()),
			slog.Any("error", err),
		)

		return s.redirectURL(mobile, callbackErrExchange)
	}

	if err := s.profileRepo.SaveMailboxGrant(ctx, userID, grant); err != nil {
		logger.ErrorContext(ctx, "Failed to save mailbox grant",
			slog.String("user_id", userID.String()),
			slog.Any("error", err),
		)

		return s.redirectURL(mobile, callbackErrSave)
	}

	logger.InfoContext(ctx, "Mailbox connected", slog.String("user_id", userID.String()))

	return s.redirectURL(mobile, "")
}

// Scan analyzes the mailbox now and persists the findings.
func (s *emailService) Scan(ctx context.Context, userID uuid.UUID) (*usecase.EmailScanResult, error) {
	profile, err := s.profileRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load profile")
	}

	scan, err := s.scanner.scan(ctx, profile)
	switch {
	case errors.Is(err, service.ErrMailboxNotConnected):
		return nil, domainerrors.ErrMailboxNotConnected
	case errors.Is(err, service.ErrMailboxAuthExpired):
		return nil, domainerrors.ErrMailboxAuthExpired
	case err != nil:
		return nil, domainerrors.ErrSearchFailed.WrapMessage(err.Error())
	}

	result := &usecase.EmailScanResult{
		EmailsScanned:      scan.EmailsScanned,
		OpportunitiesFound: len(scan.Candidates),
		Opportunities:      scan.Candidates,
		PartialErrors:      make([]usecase.PartialError, 0),
	}
	if err := s.writer.persist(ctx, userID, entity.SourceEmail, scan.Candidates); err != nil {
		result.PartialErrors = append(result.PartialErrors, usecase.PartialError{
			Source:  entity.SourceEmail,
			Stage:   usecase.StagePersist,
			Message: err.Error(),
		})
	}

	return result, nil
}

// redirectURL points mobile clients at the app's deep link and everyone else
// at the web app. An empty errCode reports success.
func (s *emailService) redirectURL(mobile bool, errCode string) string {
	base := s.appBaseURL + "/" + connectedPath
	if mobile || s.appBaseURL == "" {
		base = s.deepLinkScheme + "://" + connectedPath
	}

	if errCode == "" {
		return base + "?success=true"
	}

	return base + "?success=false&error=" + url.QueryEscape(errCode)
}
