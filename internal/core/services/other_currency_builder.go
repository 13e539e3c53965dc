package services

import (
	"fmt"

	"github.com/fintool-labs/currencygen/internal/apperrors"
	"github.com/fintool-labs/currencygen/internal/core/domain"
)

// OtherCurrencyTableBuilder collects every registry-valid currency that is
// not reachable through the completed main table: its two-letter prefix is
// not a country, the country is a special case, or the country's simple
// entry names a different third letter.
type OtherCurrencyTableBuilder struct {
	validator *CurrencyCodeValidator
	digits    *FractionDigitsResolver
	numeric   *NumericCodeResolver
}

func NewOtherCurrencyTableBuilder(
	validator *CurrencyCodeValidator,
	digits *FractionDigitsResolver,
	numeric *NumericCodeResolver,
) *OtherCurrencyTableBuilder {
	return &OtherCurrencyTableBuilder{
		validator: validator,
		digits:    digits,
		numeric:   numeric,
	}
}

// Build scans the authoritative registry in order and returns the overflow
// list of currencies the main table cannot produce.
func (b *OtherCurrencyTableBuilder) Build(
	registry *domain.Registry, mainTable []domain.Entry,
) ([]domain.OtherCurrency, error) {
	records, err := registry.Records()
	if err != nil {
		return nil, err
	}

	var others []domain.OtherCurrency
	for _, record := range records {
		if err := b.validator.Validate(record.Code); err != nil {
			return nil, err
		}
		entry := mainTable[domain.CountryIndex(
			int(record.Code[0]-'A'), int(record.Code[1]-'A'))]
		// The legacy exception code has a digit in third position; its
		// offset can never match a packed final char, so it always lands
		// in the overflow list.
		reachable := entry.Kind == domain.KindSimple &&
			entry.FinalChar == int(record.Code[2])-'A'
		if reachable {
			continue
		}
		if len(others) == domain.MaxOtherCurrencies {
			return nil, fmt.Errorf("%w: capacity %d reached",
				apperrors.ErrTooManyOtherCurrencies, domain.MaxOtherCurrencies)
		}
		numeric, err := b.numeric.Resolve(record.Code)
		if err != nil {
			return nil, err
		}
		others = append(others, domain.OtherCurrency{
			Code:    record.Code,
			Digits:  b.digits.Resolve(record.Code),
			Numeric: numeric,
		})
	}
	return others, nil
}
