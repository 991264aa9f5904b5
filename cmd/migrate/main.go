package main

import (
	"context"
	"log/slog"
	"os"

	"foundmoney/config"
	"foundmoney/internal/errors"
	logs "foundmoney/internal/infra/log"
	"foundmoney/internal/infra/persistence/model"
	"foundmoney/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Ordered so that referenced tables are created first.
var models = []any{
	&model.ProfileModel{},
	&model.AddressModel{},
	&model.MoneyFoundModel{},
	&model.ClaimFormModel{},
	&model.EmailScanModel{},
	&model.AnalyticsEventModel{},
	&model.UserDeviceModel{},
}

// uuidV7Function provides the primary key default used by the models when the
// pg_uuidv7 extension is not installed.
const uuidV7Function = `
DO $$
BEGIN
	IF NOT EXISTS (SELECT 1 FROM pg_proc WHERE proname = 'uuid_generate_v7') THEN
		EXECUTE $fn$
		CREATE FUNCTION uuid_generate_v7() RETURNS uuid AS $body$
		DECLARE
			unix_ts_ms bytea;
			uuid_bytes bytea;
		BEGIN
			unix_ts_ms := substring(int8send(floor(extract(epoch FROM clock_timestamp()) * 1000)::bigint) FROM 3);
			uuid_bytes := overlay(uuid_send(gen_random_uuid()) PLACING unix_ts_ms FROM 1 FOR 6);
			uuid_bytes := set_byte(uuid_bytes, 6, (b'0111' || get_byte(uuid_bytes, 6)::bit(4))::bit(8)::int);
			RETURN encode(uuid_bytes, 'hex')::uuid;
		END
		$body$ LANGUAGE plpgsql VOLATILE
		$fn$;
	END IF;
END
$$`

type migrateParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	DB     *gorm.DB
	Logger *slog.Logger
}

func main() {
	fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Invoke(
			migrate,
		),
	).Run()
}

func migrate(params migrateParams) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				exitCode := 0
				if err := autoMigrate(ctx, params.DB, params.Logger); err != nil {
					params.Logger.Error("Migration failed", slog.Any("error", err))
					exitCode = 1
				}

				if err := params.Shutdown(fx.ExitCode(exitCode)); err != nil {
					os.Exit(1)
				}
			}()

			return nil
		},
	})
}

func autoMigrate(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	if err := db.WithContext(context.WithoutCancel(ctx)).Exec(uuidV7Function).Error; err != nil {
		return errors.Wrap(err, "install uuid_generate_v7")
	}

	for _, m := range models {
		if err := db.WithContext(context.WithoutCancel(ctx)).AutoMigrate(m); err != nil {
			return errors.Wrapf(err, "auto migrate %T", m)
		}
	}
	logger.Info("Schema is up to date", slog.Int("tables", len(models)))

	return nil
}
