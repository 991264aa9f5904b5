package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		raw   string
		kind  AmountKind
		min   float64
		max   float64
		upper float64
	}{
		{raw: "$30 - $200", kind: AmountRange, min: 30, max: 200, upper: 200},
		{raw: "$5-$12", kind: AmountRange, min: 5, max: 12, upper: 12},
		{raw: "$127.43", kind: AmountExact, min: 127.43, max: 127.43, upper: 127.43},
		{raw: "$1,250.00", kind: AmountExact, min: 1250, max: 1250, upper: 1250},
		{raw: "Over $100", kind: AmountAtLeast, min: 100, max: 100, upper: 100},
		{raw: "Up to $500", kind: AmountRange, min: 0, max: 500, upper: 500},
		{raw: "$10 - $20 (over 2 years)", kind: AmountRange, min: 10, max: 20, upper: 20},
		{raw: "$40 rollover credit", kind: AmountExact, min: 40, max: 40, upper: 40},
		{raw: "Moreover $15", kind: AmountExact, min: 15, max: 15, upper: 15},
		{raw: "At least $25", kind: AmountAtLeast, min: 25, max: 25, upper: 25},
		{raw: "$50+", kind: AmountAtLeast, min: 50, max: 50, upper: 50},
		{raw: "Unknown", kind: AmountUnknown, upper: 0},
		{raw: "", kind: AmountUnknown, upper: 0},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := ParseAmount(tt.raw)
			assert.Equal(t, tt.kind, got.Kind)
			assert.InDelta(t, tt.min, got.Min, 0.001)
			assert.InDelta(t, tt.max, got.Max, 0.001)
			assert.InDelta(t, tt.upper, got.UpperBound(), 0.001)
		})
	}
}

func TestAmount_Numeric(t *testing.T) {
	assert.Nil(t, ParseAmount("Unknown").Numeric())

	numeric := ParseAmount("$15 - $25").Numeric()
	if assert.NotNil(t, numeric) {
		assert.InDelta(t, 25.0, *numeric, 0.001)
	}
}

func TestAmount_String(t *testing.T) {
	assert.Equal(t, "Unknown", Amount{}.String())
	assert.Equal(t, "$89.00", ParseAmount("$89.00").String())
}
