package impl

import (
	"io"
	"log/slog"

	"foundmoney/internal/domain/entity"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testProfile() *entity.UserProfile {
	return &entity.UserProfile{
		ID:        uuid.New(),
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Addresses: []*entity.Address{
			{Street: "1 Main St", City: "Austin", State: "TX", PostalCode: "78701", IsCurrent: true},
			{Street: "9 Elm St", City: "Fresno", State: "CA", PostalCode: "93650"},
		},
	}
}

func catalogCandidate(id, amount string) *entity.OpportunityCandidate {
	return &entity.OpportunityCandidate{
		SourceType:  entity.SourceCatalog,
		RawSourceID: id,
		Company:     "Acme " + id,
		Description: "Settlement " + id,
		Amount:      entity.ParseAmount(amount),
		Payload:     &entity.SettlementPayload{SettlementID: id, Title: "Settlement " + id, ClaimURL: "https://claims.example.com/" + id},
	}
}

func propertyCandidate(id, amount string) *entity.OpportunityCandidate {
	return &entity.OpportunityCandidate{
		SourceType:  entity.SourceProperty,
		RawSourceID: id,
		Company:     "Holder " + id,
		Description: "Unclaimed property " + id,
		Amount:      entity.ParseAmount(amount),
		Payload:     &entity.PropertyPayload{Jurisdiction: "TX", PropertyID: id, OwnerName: "DOE JANE"},
	}
}
