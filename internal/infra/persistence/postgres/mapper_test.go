package postgres

import (
	"encoding/json"
	"testing"
	"time"

	"foundmoney/internal/domain/entity"
	"foundmoney/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestToProfileDomain(t *testing.T) {
	expiry := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	profile := toProfileDomain(&model.ProfileModel{
		ID:                userID,
		FirstName:         "Ada",
		LastName:          "Lovelace",
		GmailConnected:    true,
		GmailAccessToken:  "access",
		GmailRefreshToken: "refresh",
		GmailTokenExpiry:  &expiry,
		Addresses: []*model.AddressModel{
			{UserID: userID, State: "CA"},
			{UserID: userID, State: "ny"},
		},
	})

	require.NotNil(t, profile)
	assert.True(t, profile.HasMailboxGrant())
	assert.Equal(t, expiry, profile.Mailbox.Expiry)
	assert.Equal(t, "refresh", profile.Mailbox.RefreshToken)
	assert.Equal(t, []string{"CA", "NY"}, profile.States())
}

func TestToProfileDomain_NoGrant(t *testing.T) {
	profile := toProfileDomain(&model.ProfileModel{ID: uuid.New()})

	assert.Nil(t, profile.Mailbox)
	assert.False(t, profile.HasMailboxGrant())
	assert.NotNil(t, profile.Addresses)
}

func TestMoneyFoundMapping_RoundTrip(t *testing.T) {
	numeric := 200.0
	deadline := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
	record := &entity.MoneyFoundRecord{
		UserID:        uuid.New(),
		SourceType:    entity.SourceCatalog,
		ExternalID:    "meta-pixel-2026",
		Amount:        "$30 - $200",
		AmountNumeric: &numeric,
		CompanyName:   "Meta",
		ClaimDeadline: &deadline,
		MatchScore:    82,
		MatchReasons:  []string{"Uses Facebook"},
		Metadata:      json.RawMessage(`{"settlement_id":"meta-pixel-2026"}`),
	}

	row := fromMoneyFoundDomain(record)
	assert.Equal(t, string(entity.StatusUnclaimed), row.Status)
	assert.JSONEq(t, `{"settlement_id":"meta-pixel-2026"}`, string(row.Metadata))

	back := toMoneyFoundDomain(row)
	assert.Equal(t, entity.StatusUnclaimed, back.Status)
	assert.Equal(t, record.MatchReasons, back.MatchReasons)
	assert.Equal(t, &numeric, back.AmountNumeric)
	assert.Equal(t, record.ExternalID, back.ExternalID)
}

func TestFromMoneyFoundDomain_EmptyMetadata(t *testing.T) {
	row := fromMoneyFoundDomain(&entity.MoneyFoundRecord{SourceType: entity.SourceEmail})

	assert.Equal(t, "{}", string(row.Metadata))
	assert.Equal(t, []string{}, toMoneyFoundDomain(row).MatchReasons)
}

func TestClaimFormMapping(t *testing.T) {
	form := &entity.ClaimForm{
		UserID:       uuid.New(),
		MoneyFoundID: uuid.New(),
		FormData:     map[string]any{"full_name": "Ada Lovelace"},
		Status:       entity.ClaimFormDraft,
	}

	back := toClaimFormDomain(fromClaimFormDomain(form))
	assert.Equal(t, form.FormData, back.FormData)
	assert.Equal(t, entity.ClaimFormDraft, back.Status)

	empty := toClaimFormDomain(&model.ClaimFormModel{})
	assert.NotNil(t, empty.FormData)
}

func TestIsForeignKeyConstraintViolation(t *testing.T) {
	assert.True(t, isForeignKeyConstraintViolation(errors.Wrap(gorm.ErrForeignKeyViolated, "insert")))
	assert.True(t, isForeignKeyConstraintViolation(errors.New(`ERROR: insert violates foreign key constraint (SQLSTATE 23503)`)))
	assert.False(t, isForeignKeyConstraintViolation(errors.New("connection refused")))
}
