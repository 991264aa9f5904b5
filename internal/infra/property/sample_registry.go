package property

import (
	"context"
	"hash/fnv"
	"strings"

	"foundmoney/internal/domain/entity"
	"foundmoney/internal/domain/service"
)

type sampleRecord struct {
	jurisdiction string
	record       service.PropertyRecord
}

// sampleRecords stands in for registry data when no live endpoint is configured.
var sampleRecords = []sampleRecord{
	{"CA", service.PropertyRecord{PropertyID: "CA-2024-00123", Amount: "$127.43", PropertyType: "Bank Account", ReportedBy: "Wells Fargo Bank", DateReported: "2023-05-15", Location: "Los Angeles, CA"}},
	{"CA", service.PropertyRecord{PropertyID: "CA-2024-00456", Amount: "$89.00", PropertyType: "Utility Deposit", ReportedBy: "Southern California Edison", DateReported: "2022-11-20", Location: "San Francisco, CA"}},
	{"NY", service.PropertyRecord{PropertyID: "NY-2024-00789", Amount: "$342.17", PropertyType: "Insurance Refund", ReportedBy: "State Farm Insurance", DateReported: "2023-08-10", Location: "New York, NY"}},
	{"TX", service.PropertyRecord{PropertyID: "TX-2024-00234", Amount: "$56.78", PropertyType: "Payroll", ReportedBy: "Tech Company LLC", DateReported: "2023-02-28", Location: "Austin, TX"}},
	{"FL", service.PropertyRecord{PropertyID: "FL-2024-00567", Amount: "Over $100", PropertyType: "Securities", ReportedBy: "TD Ameritrade", DateReported: "2023-06-15", Location: "Miami, FL"}},
}

type sampleRegistry struct{}

// NewSampleRegistry returns a registry backed by built-in demonstration records.
func NewSampleRegistry() service.PropertyRegistry {
	return &sampleRegistry{}
}

// Lookup returns the jurisdiction's sample records addressed to the owner.
func (r *sampleRegistry) Lookup(ctx context.Context, jurisdiction entity.Jurisdiction, owner service.PropertyOwner) ([]*service.PropertyRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ownerName := strings.ToUpper(strings.TrimSpace(owner.FirstName + " " + owner.LastName))

	records := make([]*service.PropertyRecord, 0)
	for _, sample := range sampleRecords {
		if sample.jurisdiction != jurisdiction.Code {
			continue
		}
		record := sample.record
		record.OwnerName = ownerName
		record.MatchConfidence = matchConfidence(ownerName, record.PropertyID)
		records = append(records, &record)
	}

	return records, nil
}

// matchConfidence is a stable pseudo-confidence in [85, 100].
func matchConfidence(ownerName, propertyID string) float64 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(ownerName + "|" + propertyID))

	return 85 + float64(h.Sum32()%16)
}
