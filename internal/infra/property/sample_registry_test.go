package property

import (
	"context"
	"testing"

	"foundmoney/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleRegistry_Lookup(t *testing.T) {
	registry := NewSampleRegistry()
	ca, _ := FindJurisdiction("CA")
	owner := service.PropertyOwner{FirstName: "Ada", LastName: "Lovelace"}

	first, err := registry.Lookup(context.Background(), ca, owner)
	require.NoError(t, err)
	require.Len(t, first, 2)

	second, err := registry.Lookup(context.Background(), ca, owner)
	require.NoError(t, err)
	assert.Equal(t, first[0].MatchConfidence, second[0].MatchConfidence)

	il, _ := FindJurisdiction("IL")
	none, err := registry.Lookup(context.Background(), il, owner)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSampleRegistry_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ca, _ := FindJurisdiction("CA")

	_, err := NewSampleRegistry().Lookup(ctx, ca, service.PropertyOwner{})
	assert.ErrorIs(t, err, context.Canceled)
}
