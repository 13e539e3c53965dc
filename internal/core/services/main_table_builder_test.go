package services_test

import (
	"testing"

	"github.com/fintool-labs/currencygen/internal/apperrors"
	"github.com/fintool-labs/currencygen/internal/core/domain"
	"github.com/fintool-labs/currencygen/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMainTableBuilder(reg *domain.Registry) (*services.MainTableBuilder, *services.SpecialCaseRegistry) {
	validator := services.NewCurrencyCodeValidator(reg)
	digits := services.NewFractionDigitsResolver(reg)
	numeric := services.NewNumericCodeResolver(reg)
	specials := services.NewSpecialCaseRegistry(validator, digits, numeric, testNow)
	return services.NewMainTableBuilder(validator, digits, numeric, specials), specials
}

func entryFor(table []domain.Entry, country string) domain.Entry {
	return table[domain.CountryIndex(int(country[0]-'A'), int(country[1]-'A'))]
}

func TestBuildMainTableVariants(t *testing.T) {
	builder, specials := newMainTableBuilder(newTestRegistry())
	table, err := builder.Build(map[string]string{
		"US": "USD",
		"EA": "",
		"FR": "EUR",
		"XX": "ABC;2020-01-01-00-00-00;XYZ",
	})
	require.NoError(t, err)
	require.Len(t, table, domain.MainTableSize)

	// US -> USD: third-letter offset 'D'-'A', default digits, numeric 840.
	assert.Equal(t, domain.Entry{
		Kind:      domain.KindSimple,
		FinalChar: 3,
		Digits:    2,
		Numeric:   840,
	}, entryFor(table, "US"))

	assert.Equal(t, domain.KindNoCurrency, entryFor(table, "EA").Kind)
	assert.Equal(t, domain.KindInvalid, entryFor(table, "ZZ").Kind)

	// FR's currency does not share its prefix; XX is a scheduled transition.
	// Both go through the special-case table, in row-major interning order.
	fr := entryFor(table, "FR")
	require.Equal(t, domain.KindSpecial, fr.Kind)
	assert.Equal(t, 0, fr.SpecialIndex)

	xx := entryFor(table, "XX")
	require.Equal(t, domain.KindSpecial, xx.Kind)
	assert.Equal(t, 1, xx.SpecialIndex)

	require.Len(t, specials.Cases(), 2)
	assert.Equal(t, "EUR", specials.Cases()[0].OldCurrency)
	assert.Equal(t, "ABC", specials.Cases()[1].OldCurrency)
}

func TestBuildMainTableExactlyOneVariantPerCountry(t *testing.T) {
	builder, _ := newMainTableBuilder(newTestRegistry())
	table, err := builder.Build(map[string]string{
		"US": "USD",
		"EA": "",
		"FR": "EUR",
	})
	require.NoError(t, err)

	for i, entry := range table {
		switch entry.Kind {
		case domain.KindInvalid, domain.KindNoCurrency, domain.KindSimple, domain.KindSpecial:
		default:
			t.Fatalf("entry %d has unknown variant %v", i, entry.Kind)
		}
		// The packed form must decode back to the same variant.
		assert.Equal(t, entry.Kind, domain.UnpackEntry(entry.Pack()).Kind, "entry %d", i)
	}
}

func TestBuildMainTableSharedSpecialCaseSlot(t *testing.T) {
	builder, specials := newMainTableBuilder(newTestRegistry())
	table, err := builder.Build(map[string]string{
		"XX": "ABC;2020-01-01-00-00-00;XYZ",
		"YY": "ABC;2020-01-01-00-00-00;XYZ",
	})
	require.NoError(t, err)

	xx := entryFor(table, "XX")
	yy := entryFor(table, "YY")
	assert.Equal(t, xx.SpecialIndex, yy.SpecialIndex)
	assert.Len(t, specials.Cases(), 1)
}

func TestBuildMainTableRejectsUndefinedDigitsInSimpleEntry(t *testing.T) {
	// XA is a country whose own-prefix currency has no defined minor unit;
	// that may live in side records but never in a packed simple entry.
	reg := newTestRegistry()
	reg.All = "XAG961-USD840"
	builder, _ := newMainTableBuilder(reg)

	_, err := builder.Build(map[string]string{"XA": "XAG"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrFractionDigitsOutOfRange)
}

func TestBuildMainTableRejectsUnknownSimpleCurrency(t *testing.T) {
	builder, _ := newMainTableBuilder(newTestRegistry())
	_, err := builder.Build(map[string]string{"ZQ": "ZQX"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUnknownCurrencyCode)
}
