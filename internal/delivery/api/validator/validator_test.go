package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Status string `json:"status" validate:"required,oneof=claimed received"`
	Limit  int    `json:"limit" validate:"gte=0"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&sample{Status: "claimed"}))

	err := v.Validate(&sample{Status: "lost", Limit: -1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sample.status failed on oneof=claimed received")
	assert.Contains(t, err.Error(), "sample.limit failed on gte=0")
}
