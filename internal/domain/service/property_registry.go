package service

import (
	"context"

	"foundmoney/internal/domain/entity"
)

// PropertyOwner is the name searched in an unclaimed-property registry.
type PropertyOwner struct {
	FirstName string
	LastName  string
}

// PropertyRecord is one registry hit.
type PropertyRecord struct {
	PropertyID      string  `json:"propertyId"`
	OwnerName       string  `json:"ownerName"`
	Amount          string  `json:"amount"`
	PropertyType    string  `json:"propertyType"`
	ReportedBy      string  `json:"reportedBy"`
	DateReported    string  `json:"dateReported"`
	Location        string  `json:"location"`
	MatchConfidence float64 `json:"matchConfidence"`
}

// PropertyRegistry looks up unclaimed property held by one jurisdiction.
type PropertyRegistry interface {
	Lookup(ctx context.Context, jurisdiction entity.Jurisdiction, owner PropertyOwner) ([]*PropertyRecord, error)
}
