package main

import (
	"context"
	"log/slog"
	"os"

	"foundmoney/config"
	"foundmoney/internal/delivery"
	"foundmoney/internal/delivery/api"
	"foundmoney/internal/delivery/api/middleware"
	"foundmoney/internal/delivery/api/router/handler"
	"foundmoney/internal/domain/service"
	"foundmoney/internal/infra/auth"
	"foundmoney/internal/infra/cache"
	"foundmoney/internal/infra/catalog"
	"foundmoney/internal/infra/document"
	"foundmoney/internal/infra/gmail"
	"foundmoney/internal/infra/llm"
	logs "foundmoney/internal/infra/log"
	"foundmoney/internal/infra/persistence/postgres"
	"foundmoney/internal/infra/property"
	"foundmoney/internal/infra/pubsub"
	"foundmoney/internal/infra/qrcode"
	"foundmoney/internal/infra/ratelimit"
	"foundmoney/internal/infra/storage"
	"foundmoney/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			cache.NewRedisClient,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewProfileRepository,
			postgres.NewMoneyFoundRepository,
			postgres.NewClaimFormRepository,
			postgres.NewEmailScanRepository,
			postgres.NewAnalyticsRepository,
			postgres.NewDeviceRepository,
			postgres.NewTransactionManager,
			postgres.NewPinger,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			auth.NewOAuthStateCodec,
			newLLMClient,
			llm.NewScorer,
			llm.NewEmailAnalyzer,
			llm.NewFormFiller,
			newMailbox,
			qrcode.NewFromConfig,
			document.NewPDFRenderer,
			storage.New,
			ratelimit.New,
			cache.NewScoreCacheFromConfig,
			property.NewRegistryFromConfig,
			property.NewFromConfig,
			fx.Annotate(
				newCatalogSource,
				fx.ResultTags(`name:"catalogSource"`),
			),
			fx.Annotate(
				newEmailSource,
				fx.ResultTags(`name:"emailSource"`),
			),
			impl.NewEmailSource,
		),
	)
}

func newLLMClient(cfg *config.Config, logger *slog.Logger) *llm.Client {
	return llm.NewClient(cfg.LLM, logger)
}

func newMailbox(cfg *config.Config, logger *slog.Logger) service.Mailbox {
	return gmail.NewMailbox(cfg.Gmail, logger)
}

func newCatalogSource() service.SourceAdapter {
	return catalog.NewAdapter()
}

func newEmailSource(source *impl.EmailSource) service.SourceAdapter {
	return source
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSearchService,
			impl.NewEmailService,
			impl.NewFormService,
			impl.NewMoneyFoundService,
			impl.NewDeviceService,
			impl.NewAnalyticsService,
			impl.NewWebhookService,
			impl.NewHealthService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRateLimitMiddleware,
			middleware.NewWebhookSignatureMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSearchHandler,
			handler.NewEmailHandler,
			handler.NewFormHandler,
			handler.NewMoneyFoundHandler,
			handler.NewDeviceHandler,
			handler.NewAnalyticsHandler,
			handler.NewWebhookHandler,
			handler.NewHealthHandler,
			handler.NewTestHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
