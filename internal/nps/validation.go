package nps

import (
	"strconv"
	"strings"

	apierrors "github.com/parkscout/nps-mcp-server/internal/errors"
)

// Limit bounds for park and alert queries.
const (
	DefaultLimit = 10
	MaxLimit     = 50
)

// validStateCodes is the fixed set of jurisdiction codes the NPS API
// recognizes: 50 states, DC, and the five inhabited territories.
var validStateCodes = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "FL", "GA",
	"HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME", "MD",
	"MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH", "NJ",
	"NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI", "SC",
	"SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY",
	"DC", "AS", "GU", "MP", "PR", "VI",
}

var validStateCodeSet = func() map[string]bool {
	set := make(map[string]bool, len(validStateCodes))
	for _, code := range validStateCodes {
		set[code] = true
	}
	return set
}()

// ValidStateCodes returns the full ordered set of valid jurisdiction codes.
func ValidStateCodes() []string {
	out := make([]string, len(validStateCodes))
	copy(out, validStateCodes)
	return out
}

// NormalizeStateCodes splits a comma-separated state code string, trims and
// upper-cases each segment, and validates every segment against the fixed
// jurisdiction set. On any invalid segment it returns an
// InvalidStateCodesError listing the rejected codes and the full valid set.
// An empty input yields an empty list and no error.
func NormalizeStateCodes(raw string) ([]string, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	var codes []string
	var invalid []string
	for _, segment := range strings.Split(raw, ",") {
		code := strings.ToUpper(strings.TrimSpace(segment))
		if code == "" {
			continue
		}
		if !validStateCodeSet[code] {
			invalid = append(invalid, code)
			continue
		}
		codes = append(codes, code)
	}

	if len(invalid) > 0 {
		return nil, &apierrors.InvalidStateCodesError{
			Invalid: invalid,
			Valid:   ValidStateCodes(),
		}
	}
	return codes, nil
}

// ClampLimit applies the limit contract: absent (zero or negative) defaults
// to DefaultLimit, anything above MaxLimit is clamped to MaxLimit, values in
// [1, MaxLimit] pass through unchanged.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// ClampStart normalizes the start offset: negative values become zero.
func ClampStart(start int) int {
	if start < 0 {
		return 0
	}
	return start
}

// parseCount coerces one of the upstream's string-typed counters into an
// int. A non-numeric value is classified as an upstream failure rather than
// propagated as garbage.
func parseCount(endpoint, field, value string) (int, error) {
	if value == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, &apierrors.UpstreamError{
			Endpoint: endpoint,
			Message:  "non-numeric " + field + " in response: " + value,
		}
	}
	return n, nil
}
