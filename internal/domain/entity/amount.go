package entity

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// AmountKind tells how much of a free-text amount could be understood.
type AmountKind string

const (
	AmountUnknown AmountKind = "unknown"
	AmountExact   AmountKind = "exact"
	AmountRange   AmountKind = "range"
	AmountAtLeast AmountKind = "at_least"
)

var (
	amountNumberPattern = regexp.MustCompile(`\d[\d,]*(?:\.\d+)?`)
	// Qualifiers only count as whole words ahead of the first number.
	amountCeilingPattern = regexp.MustCompile(`\bup to\b`)
	amountFloorPattern   = regexp.MustCompile(`\b(?:over|more than|at least)\b`)
)

// Amount is a best-effort parse of a payout string such as "$30 - $200",
// "$127.43", "Over $100" or "Unknown".
type Amount struct {
	Kind AmountKind `json:"kind"`
	Min  float64    `json:"min"`
	Max  float64    `json:"max"`
	Raw  string     `json:"raw"`
}

// ParseAmount never fails; anything without a number is AmountUnknown.
func ParseAmount(raw string) Amount {
	amount := Amount{Kind: AmountUnknown, Raw: strings.TrimSpace(raw)}

	matches := amountNumberPattern.FindAllString(raw, -1)
	values := make([]float64, 0, len(matches))
	for _, match := range matches {
		value, err := strconv.ParseFloat(strings.ReplaceAll(match, ",", ""), 64)
		if err != nil || math.IsNaN(value) || value < 0 {
			continue
		}
		values = append(values, value)
	}

	if len(values) == 0 {
		return amount
	}

	lower := strings.ToLower(raw)
	lead := lower[:amountNumberPattern.FindStringIndex(lower)[0]]
	switch {
	case amountCeilingPattern.MatchString(lead):
		amount.Kind = AmountRange
		amount.Min, amount.Max = 0, values[0]
	case amountFloorPattern.MatchString(lead) || strings.HasSuffix(strings.TrimSpace(lower), "+"):
		amount.Kind = AmountAtLeast
		amount.Min, amount.Max = values[0], values[0]
	case len(values) >= 2:
		amount.Kind = AmountRange
		amount.Min, amount.Max = math.Min(values[0], values[1]), math.Max(values[0], values[1])
	default:
		amount.Kind = AmountExact
		amount.Min, amount.Max = values[0], values[0]
	}

	return amount
}

// ExactAmount builds a point amount from a number.
func ExactAmount(value float64, raw string) Amount {
	return Amount{Kind: AmountExact, Min: value, Max: value, Raw: raw}
}

// Known reports whether any numeric value was recovered.
func (a Amount) Known() bool {
	return a.Kind != AmountUnknown && a.Kind != ""
}

// UpperBound is the range ceiling, the point value, or 0 when unknown.
func (a Amount) UpperBound() float64 {
	if !a.Known() {
		return 0
	}

	return a.Max
}

// Numeric is the value stored in amount_numeric; nil when unknown.
func (a Amount) Numeric() *float64 {
	if !a.Known() {
		return nil
	}
	value := a.UpperBound()

	return &value
}

// String returns the raw text, or "Unknown".
func (a Amount) String() string {
	if a.Raw == "" {
		return "Unknown"
	}

	return a.Raw
}
