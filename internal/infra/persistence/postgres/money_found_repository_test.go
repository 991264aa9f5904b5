package postgres

import (
	"context"
	"testing"

	"foundmoney/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// dryRunDB builds SQL without a server and records every INSERT it renders.
func dryRunDB(t *testing.T) (*gorm.DB, *[]string) {
	t.Helper()

	db, err := gorm.Open(pgdriver.New(pgdriver.Config{DSN: "host=localhost user=test dbname=test sslmode=disable"}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	var inserts []string
	require.NoError(t, db.Callback().Create().After("gorm:create").Register("test:capture_insert", func(tx *gorm.DB) {
		inserts = append(inserts, tx.Statement.SQL.String())
	}))

	return db, &inserts
}

func TestMoneyFoundRepository_UpsertBatch_ConflictsOnNaturalKey(t *testing.T) {
	db, inserts := dryRunDB(t)
	repo := NewMoneyFoundRepository(db)
	userID := uuid.New()

	records := []*entity.MoneyFoundRecord{
		{UserID: userID, SourceType: entity.SourceProperty, ExternalID: "TX-1", Amount: "$10", Status: entity.StatusUnclaimed, MatchReasons: []string{}},
		{UserID: userID, SourceType: entity.SourceProperty, ExternalID: "TX-2", Amount: "$20", Status: entity.StatusUnclaimed, MatchReasons: []string{}},
	}
	require.NoError(t, repo.UpsertBatch(context.Background(), records))

	require.Len(t, *inserts, 1)
	sql := (*inserts)[0]
	assert.Contains(t, sql, `ON CONFLICT ("user_id","source_type","external_id") DO UPDATE SET`)
	assert.Contains(t, sql, `"metadata"="excluded"."metadata"`)
	for _, kept := range []string{"status", "received_amount", "claimed_at", "received_at"} {
		assert.NotContains(t, sql, `"`+kept+`"="excluded"."`+kept+`"`, "claim progress must survive a rediscovery")
	}
}
