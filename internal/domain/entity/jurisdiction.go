package entity

// Jurisdiction is a region whose unclaimed-property registry is queried independently.
type Jurisdiction struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	PortalURL string `json:"portal_url"`
	SearchURL string `json:"search_url"`
}
