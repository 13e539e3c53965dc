package services

import (
	"fmt"
	"time"

	"github.com/fintool-labs/currencygen/internal/apperrors"
	"github.com/fintool-labs/currencygen/internal/core/domain"
)

// cutOverLayout is the UTC timestamp format of transition strings.
const cutOverLayout = "2006-01-02-15-04-05"

// cutOverSanityWindow bounds how far a cut-over instant may lie from the
// present; anything beyond it is treated as a data entry mistake.
const cutOverSanityWindow = 100 * 365 * 24 * time.Hour

// SpecialCaseRegistry interns currency-transition records referenced by index
// from the main table. Identical raw specifications share one record, which
// is why several countries can legitimately point at the same slot.
type SpecialCaseRegistry struct {
	validator *CurrencyCodeValidator
	digits    *FractionDigitsResolver
	numeric   *NumericCodeResolver
	now       time.Time

	cases      []domain.SpecialCase
	indexByRaw map[string]int
}

func NewSpecialCaseRegistry(
	validator *CurrencyCodeValidator,
	digits *FractionDigitsResolver,
	numeric *NumericCodeResolver,
	now time.Time,
) *SpecialCaseRegistry {
	return &SpecialCaseRegistry{
		validator:  validator,
		digits:     digits,
		numeric:    numeric,
		now:        now,
		indexByRaw: make(map[string]int),
	}
}

// Intern returns the 0-based index of the record for rawSpec, creating it on
// first sight. rawSpec is either a bare 3-letter code (a currency whose third
// letter does not match the country code) or OLD;yyyy-MM-dd-HH-mm-ss;NEW.
func (r *SpecialCaseRegistry) Intern(rawSpec string) (int, error) {
	if idx, ok := r.indexByRaw[rawSpec]; ok {
		return idx, nil
	}
	if len(r.cases) == domain.MaxSpecialCases {
		return 0, fmt.Errorf("%w: capacity %d reached",
			apperrors.ErrTooManySpecialCases, domain.MaxSpecialCases)
	}

	var sc domain.SpecialCase
	if len(rawSpec) == 3 {
		if err := r.validator.Validate(rawSpec); err != nil {
			return 0, err
		}
		oldNumeric, err := r.numeric.Resolve(rawSpec)
		if err != nil {
			return 0, err
		}
		sc = domain.SpecialCase{
			CutOverMillis: domain.CutOverNever,
			OldCurrency:   rawSpec,
			OldDigits:     r.digits.Resolve(rawSpec),
			OldNumeric:    oldNumeric,
		}
	} else {
		parsed, err := r.parseTransition(rawSpec)
		if err != nil {
			return 0, err
		}
		sc = parsed
	}

	idx := len(r.cases)
	r.cases = append(r.cases, sc)
	r.indexByRaw[rawSpec] = idx
	return idx, nil
}

func (r *SpecialCaseRegistry) parseTransition(rawSpec string) (domain.SpecialCase, error) {
	var sc domain.SpecialCase
	if len(rawSpec) < 8 || rawSpec[3] != ';' || rawSpec[len(rawSpec)-4] != ';' {
		return sc, fmt.Errorf("%w: %q", apperrors.ErrMalformedSpecialCase, rawSpec)
	}
	oldCurrency := rawSpec[:3]
	newCurrency := rawSpec[len(rawSpec)-3:]
	if err := r.validator.Validate(oldCurrency); err != nil {
		return sc, err
	}
	if err := r.validator.Validate(newCurrency); err != nil {
		return sc, err
	}

	cutOver, err := time.ParseInLocation(cutOverLayout, rawSpec[4:len(rawSpec)-4], time.UTC)
	if err != nil {
		return sc, fmt.Errorf("%w: bad cut-over time in %q: %v",
			apperrors.ErrMalformedSpecialCase, rawSpec, err)
	}
	if delta := cutOver.Sub(r.now); delta > cutOverSanityWindow || delta < -cutOverSanityWindow {
		return sc, fmt.Errorf("%w: %s", apperrors.ErrCutOverOutOfSanityWindow,
			cutOver.Format(time.RFC3339))
	}

	oldNumeric, err := r.numeric.Resolve(oldCurrency)
	if err != nil {
		return sc, err
	}
	newNumeric, err := r.numeric.Resolve(newCurrency)
	if err != nil {
		return sc, err
	}
	return domain.SpecialCase{
		CutOverMillis: cutOver.UnixMilli(),
		OldCurrency:   oldCurrency,
		NewCurrency:   newCurrency,
		OldDigits:     r.digits.Resolve(oldCurrency),
		NewDigits:     r.digits.Resolve(newCurrency),
		OldNumeric:    oldNumeric,
		NewNumeric:    newNumeric,
	}, nil
}

// Cases returns the interned records in assignment order.
func (r *SpecialCaseRegistry) Cases() []domain.SpecialCase {
	return r.cases
}
