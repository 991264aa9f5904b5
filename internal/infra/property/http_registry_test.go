package property

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"foundmoney/internal/domain/service"
	"foundmoney/internal/infra/httpclient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPRegistry_Lookup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "NY", r.URL.Query().Get("state"))
		assert.Equal(t, "Lovelace", r.URL.Query().Get("lastName"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"records":[{"propertyId":"NY-1","amount":"$10.00","reportedBy":"Bank"},{"amount":"$5"}]}`))
	}))
	defer server.Close()

	client := httpclient.New(time.Second, newDiscardLogger(), httpclient.WithBackoff(time.Millisecond))
	registry := NewHTTPRegistry(server.URL, client)
	ny, _ := FindJurisdiction("NY")

	records, err := registry.Lookup(context.Background(), ny, service.PropertyOwner{FirstName: "Ada", LastName: "Lovelace"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "NY-1", records[0].PropertyID)
}

func TestHTTPRegistry_PermanentError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client := httpclient.New(time.Second, newDiscardLogger(), httpclient.WithBackoff(time.Millisecond))
	ca, _ := FindJurisdiction("CA")

	_, err := NewHTTPRegistry(server.URL, client).Lookup(context.Background(), ca, service.PropertyOwner{})
	require.Error(t, err)
	assert.True(t, httpclient.IsPermanent(err))
}
