package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fintool-labs/currencygen/internal/apperrors"
	"github.com/fintool-labs/currencygen/internal/core/domain"
)

// FractionDigitsUndefined marks a currency with no defined minor unit. It may
// appear in special-case and other-currency records but never in a packed
// simple entry.
const FractionDigitsUndefined = -1

// FractionDigitsResolver maps a currency code to its default number of
// minor-unit decimal digits.
type FractionDigitsResolver struct {
	registry *domain.Registry
}

func NewFractionDigitsResolver(registry *domain.Registry) *FractionDigitsResolver {
	return &FractionDigitsResolver{registry: registry}
}

// Resolve checks the partition sets in fixed priority order; a code absent
// from all four resolves to 2.
func (r *FractionDigitsResolver) Resolve(code string) int {
	switch {
	case strings.Contains(r.registry.Minor0, code):
		return 0
	case strings.Contains(r.registry.Minor1, code):
		return 1
	case strings.Contains(r.registry.Minor3, code):
		return 3
	case strings.Contains(r.registry.MinorUndefined, code):
		return FractionDigitsUndefined
	default:
		return 2
	}
}

// NumericCodeResolver maps a currency code to its 3-digit ISO numeric code
// by locating the code inside the authoritative registry string.
type NumericCodeResolver struct {
	registry *domain.Registry
}

func NewNumericCodeResolver(registry *domain.Registry) *NumericCodeResolver {
	return &NumericCodeResolver{registry: registry}
}

// Resolve reads the three characters following the code's first occurrence
// in the registry string. Callers must validate the code first.
func (r *NumericCodeResolver) Resolve(code string) (int, error) {
	idx := strings.Index(r.registry.All, code)
	if idx < 0 {
		return 0, fmt.Errorf("%w: %s", apperrors.ErrUnknownCurrencyCode, code)
	}
	if idx+6 > len(r.registry.All) {
		return 0, fmt.Errorf("%w: truncated record for %s",
			apperrors.ErrMalformedRegistryString, code)
	}
	numeric, err := strconv.Atoi(r.registry.All[idx+3 : idx+6])
	if err != nil {
		return 0, fmt.Errorf("%w: non-numeric code for %s",
			apperrors.ErrMalformedRegistryString, code)
	}
	return numeric, nil
}
