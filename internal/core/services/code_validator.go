package services

import (
	"fmt"
	"strings"

	"github.com/fintool-labs/currencygen/internal/apperrors"
	"github.com/fintool-labs/currencygen/internal/core/domain"
)

// legacyCodeException is the one transitional currency code permitted to
// contain a non-letter character. A historical anomaly in the real-world
// code list, kept as an explicit allow-list entry.
const legacyCodeException = "XB5"

// CurrencyCodeValidator checks currency code syntax and membership in the
// authoritative registry.
type CurrencyCodeValidator struct {
	registry *domain.Registry
}

func NewCurrencyCodeValidator(registry *domain.Registry) *CurrencyCodeValidator {
	return &CurrencyCodeValidator{registry: registry}
}

// Validate fails unless code is exactly three uppercase ASCII letters
// (legacyCodeException excepted) and is listed in the authoritative registry.
func (v *CurrencyCodeValidator) Validate(code string) error {
	if len(code) != 3 {
		return fmt.Errorf("%w: illegal length for currency code %q",
			apperrors.ErrInvalidCurrencyCodeFormat, code)
	}
	for i := 0; i < 3; i++ {
		c := code[i]
		if (c < 'A' || c > 'Z') && code != legacyCodeException {
			return fmt.Errorf("%w: currency code %q contains illegal character",
				apperrors.ErrInvalidCurrencyCodeFormat, code)
		}
	}
	if !strings.Contains(v.registry.All, code) {
		return fmt.Errorf("%w: %s", apperrors.ErrUnknownCurrencyCode, code)
	}
	return nil
}
