package property

import (
	"context"
	"net/url"

	"foundmoney/internal/domain/entity"
	"foundmoney/internal/domain/service"
	"foundmoney/internal/errors"
	"foundmoney/internal/infra/httpclient"
)

type lookupResponse struct {
	Records []*service.PropertyRecord `json:"records"`
}

type httpRegistry struct {
	endpoint string
	client   *httpclient.Client
}

// NewHTTPRegistry queries a JSON registry gateway at endpoint.
func NewHTTPRegistry(endpoint string, client *httpclient.Client) service.PropertyRegistry {
	return &httpRegistry{
		endpoint: endpoint,
		client:   client,
	}
}

// Lookup calls GET {endpoint}?state=&firstName=&lastName=.
func (r *httpRegistry) Lookup(ctx context.Context, jurisdiction entity.Jurisdiction, owner service.PropertyOwner) ([]*service.PropertyRecord, error) {
	params := url.Values{}
	params.Set("state", jurisdiction.Code)
	params.Set("firstName", owner.FirstName)
	params.Set("lastName", owner.LastName)

	var resp lookupResponse
	if err := r.client.GetJSON(ctx, r.endpoint, params, &resp); err != nil {
		return nil, errors.Wrapf(err, "registry lookup for %s", jurisdiction.Code)
	}

	records := make([]*service.PropertyRecord, 0, len(resp.Records))
	for _, record := range resp.Records {
		if record == nil || record.PropertyID == "" {
			continue
		}
		records = append(records, record)
	}

	return records, nil
}
