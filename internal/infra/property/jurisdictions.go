// Package property searches per-jurisdiction unclaimed-property registries.
package property

import (
	"slices"
	"strings"

	"foundmoney/internal/domain/entity"
)

var supportedJurisdictions = []entity.Jurisdiction{
	{Code: "CA", Name: "California", PortalURL: "https://ucpi.sco.ca.gov", SearchURL: "https://ucpi.sco.ca.gov/UCP/Default.aspx"},
	{Code: "NY", Name: "New York", PortalURL: "https://www.osc.state.ny.us", SearchURL: "https://www.osc.state.ny.us/ouf"},
	{Code: "TX", Name: "Texas", PortalURL: "https://claimittexas.gov", SearchURL: "https://claimittexas.gov/app/claim-search"},
	{Code: "FL", Name: "Florida", PortalURL: "https://fltreasurehunt.gov", SearchURL: "https://fltreasurehunt.gov"},
	{Code: "IL", Name: "Illinois", PortalURL: "https://icash.illinoistreasurer.gov", SearchURL: "https://icash.illinoistreasurer.gov"},
}

// Jurisdictions lists every jurisdiction with a known registry.
func Jurisdictions() []entity.Jurisdiction {
	return slices.Clone(supportedJurisdictions)
}

// FindJurisdiction resolves a state code, case-insensitively.
func FindJurisdiction(code string) (entity.Jurisdiction, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, j := range supportedJurisdictions {
		if j.Code == code {
			return j, true
		}
	}

	return entity.Jurisdiction{}, false
}
