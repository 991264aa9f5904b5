package property

import (
	"testing"

	"foundmoney/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistryFromConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PropertyRegistryConfig
		wantErr bool
		sample  bool
	}{
		{name: "unset uses sample", cfg: nil, sample: true},
		{name: "explicit sample", cfg: &config.PropertyRegistryConfig{Provider: "sample"}, sample: true},
		{name: "http", cfg: &config.PropertyRegistryConfig{Provider: "http", Endpoint: "http://registry.local/search"}},
		{name: "http without endpoint", cfg: &config.PropertyRegistryConfig{Provider: "http"}, wantErr: true},
		{name: "unknown provider", cfg: &config.PropertyRegistryConfig{Provider: "scraper"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry, err := NewRegistryFromConfig(&config.Config{PropertyRegistry: tt.cfg}, newDiscardLogger())
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)

			_, isSample := registry.(*sampleRegistry)
			assert.Equal(t, tt.sample, isSample)
		})
	}
}

func TestAdapter_SearchStates(t *testing.T) {
	adapter := NewFromConfig(&config.Config{Search: &config.SearchConfig{DefaultStates: []string{"CA", "NY"}}}, NewSampleRegistry(), newDiscardLogger())

	assert.Equal(t, []string{"TX", "WA"}, adapter.SearchStates(newProfile("tx", "WA", "TX")))

	defaults := adapter.SearchStates(newProfile())
	assert.Equal(t, []string{"CA", "NY"}, defaults)
	defaults[0] = "ZZ"
	assert.Equal(t, []string{"CA", "NY"}, adapter.SearchStates(newProfile()), "defaults must not be aliased")
}
