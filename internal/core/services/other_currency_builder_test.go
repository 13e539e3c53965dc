package services_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/fintool-labs/currencygen/internal/apperrors"
	"github.com/fintool-labs/currencygen/internal/core/domain"
	"github.com/fintool-labs/currencygen/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOtherCurrencyBuilder(reg *domain.Registry) *services.OtherCurrencyTableBuilder {
	return services.NewOtherCurrencyTableBuilder(
		services.NewCurrencyCodeValidator(reg),
		services.NewFractionDigitsResolver(reg),
		services.NewNumericCodeResolver(reg),
	)
}

func TestBuildOtherCurrencies(t *testing.T) {
	reg := newTestRegistry()
	builder, _ := newMainTableBuilder(reg)
	table, err := builder.Build(map[string]string{
		"US": "USD",
		"EU": "EUR",
		"JP": "JPY",
		"FR": "EUR",
	})
	require.NoError(t, err)

	others, err := newOtherCurrencyBuilder(reg).Build(reg, table)
	require.NoError(t, err)

	// USD, EUR and JPY are reachable as simple entries; everything else in
	// the registry lands in the overflow table, in registry order.
	require.Len(t, others, 4)
	assert.Equal(t, domain.OtherCurrency{Code: "ABC", Digits: 2, Numeric: 111}, others[0])
	assert.Equal(t, domain.OtherCurrency{Code: "XYZ", Digits: 2, Numeric: 999}, others[1])
	assert.Equal(t, domain.OtherCurrency{Code: "XAG", Digits: -1, Numeric: 961}, others[2])
	assert.Equal(t, domain.OtherCurrency{Code: "XB5", Digits: 2, Numeric: 955}, others[3])
}

func TestBuildOtherCurrenciesThirdLetterMismatch(t *testing.T) {
	// ZWL's prefix names a valid country whose simple entry points at a
	// different third letter, so ZWL itself is unreachable.
	reg := &domain.Registry{All: "ZWD716-ZWL932"}
	builder, _ := newMainTableBuilder(reg)
	table, err := builder.Build(map[string]string{"ZW": "ZWD"})
	require.NoError(t, err)

	others, err := newOtherCurrencyBuilder(reg).Build(reg, table)
	require.NoError(t, err)
	require.Len(t, others, 1)
	assert.Equal(t, "ZWL", others[0].Code)
}

func TestBuildOtherCurrenciesSpecialCaseCountry(t *testing.T) {
	// A special-case entry never satisfies a registry code, even its own.
	reg := newTestRegistry()
	builder, _ := newMainTableBuilder(reg)
	table, err := builder.Build(map[string]string{
		"AB": "ABC;2020-01-01-00-00-00;XYZ",
	})
	require.NoError(t, err)

	others, err := newOtherCurrencyBuilder(reg).Build(reg, table)
	require.NoError(t, err)

	codes := make([]string, len(others))
	for i, oc := range others {
		codes[i] = oc.Code
	}
	assert.Contains(t, codes, "ABC")
}

func TestBuildOtherCurrenciesMalformedRegistry(t *testing.T) {
	reg := newTestRegistry()
	builder, _ := newMainTableBuilder(reg)
	table, err := builder.Build(map[string]string{})
	require.NoError(t, err)

	bad := &domain.Registry{All: reg.All + "X"}
	_, err = newOtherCurrencyBuilder(bad).Build(bad, table)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrMalformedRegistryString)
}

func TestBuildOtherCurrenciesCapacity(t *testing.T) {
	var records []string
	for i := 0; i < domain.MaxOtherCurrencies+1; i++ {
		code := fmt.Sprintf("Q%c%c", 'A'+i/26, 'A'+i%26)
		records = append(records, fmt.Sprintf("%s%03d", code, i))
	}
	reg := &domain.Registry{All: strings.Join(records, "-")}
	builder, _ := newMainTableBuilder(reg)
	table, err := builder.Build(map[string]string{})
	require.NoError(t, err)

	_, err = newOtherCurrencyBuilder(reg).Build(reg, table)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrTooManyOtherCurrencies)
}
