package services

import (
	"fmt"

	"github.com/fintool-labs/currencygen/internal/apperrors"
	"github.com/fintool-labs/currencygen/internal/core/domain"
)

// MainTableBuilder decides, for every two-letter country code, whether it is
// invalid, currency-less, a simple direct mapping, or a special case.
type MainTableBuilder struct {
	validator *CurrencyCodeValidator
	digits    *FractionDigitsResolver
	numeric   *NumericCodeResolver
	specials  *SpecialCaseRegistry
}

func NewMainTableBuilder(
	validator *CurrencyCodeValidator,
	digits *FractionDigitsResolver,
	numeric *NumericCodeResolver,
	specials *SpecialCaseRegistry,
) *MainTableBuilder {
	return &MainTableBuilder{
		validator: validator,
		digits:    digits,
		numeric:   numeric,
		specials:  specials,
	}
}

// Build produces the 676-entry main table, row-major by (first letter,
// second letter), interning special cases as it encounters them.
func (b *MainTableBuilder) Build(countries map[string]string) ([]domain.Entry, error) {
	table := make([]domain.Entry, domain.MainTableSize)
	for first := 0; first < domain.AToZ; first++ {
		for second := 0; second < domain.AToZ; second++ {
			countryCode := string([]byte{byte('A' + first), byte('A' + second)})
			currencyInfo, present := countries[countryCode]

			var entry domain.Entry
			var err error
			switch {
			case !present:
				// no entry -> not a valid ISO 3166 country code
				entry = domain.Entry{Kind: domain.KindInvalid}
			case currencyInfo == "":
				entry = domain.Entry{Kind: domain.KindNoCurrency}
			case len(currencyInfo) == 3 &&
				currencyInfo[0] == countryCode[0] && currencyInfo[1] == countryCode[1]:
				entry, err = b.simpleEntry(currencyInfo)
			default:
				entry, err = b.specialEntry(currencyInfo)
			}
			if err != nil {
				return nil, fmt.Errorf("country %s: %w", countryCode, err)
			}
			table[domain.CountryIndex(first, second)] = entry
		}
	}
	return table, nil
}

func (b *MainTableBuilder) simpleEntry(currencyCode string) (domain.Entry, error) {
	if err := b.validator.Validate(currencyCode); err != nil {
		return domain.Entry{}, err
	}
	digits := b.digits.Resolve(currencyCode)
	if digits < 0 || digits > 3 {
		return domain.Entry{}, fmt.Errorf("%w: %d for %s",
			apperrors.ErrFractionDigitsOutOfRange, digits, currencyCode)
	}
	numeric, err := b.numeric.Resolve(currencyCode)
	if err != nil {
		return domain.Entry{}, err
	}
	if numeric < 0 || numeric >= 1000 {
		return domain.Entry{}, fmt.Errorf("%w: %d for %s",
			apperrors.ErrNumericCodeOutOfRange, numeric, currencyCode)
	}
	return domain.Entry{
		Kind:      domain.KindSimple,
		FinalChar: int(currencyCode[2] - 'A'),
		Digits:    digits,
		Numeric:   numeric,
	}, nil
}

func (b *MainTableBuilder) specialEntry(currencyInfo string) (domain.Entry, error) {
	idx, err := b.specials.Intern(currencyInfo)
	if err != nil {
		return domain.Entry{}, err
	}
	return domain.Entry{Kind: domain.KindSpecial, SpecialIndex: idx}, nil
}
