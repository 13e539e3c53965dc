package domain_test

import (
	"testing"

	"github.com/fintool-labs/currencygen/internal/apperrors"
	"github.com/fintool-labs/currencygen/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryRecords(t *testing.T) {
	reg := &domain.Registry{All: "USD840-EUR978-XB5955"}
	records, err := reg.Records()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, domain.RegistryRecord{Code: "USD", Numeric: 840}, records[0])
	assert.Equal(t, domain.RegistryRecord{Code: "EUR", Numeric: 978}, records[1])
	assert.Equal(t, domain.RegistryRecord{Code: "XB5", Numeric: 955}, records[2])
}

func TestRegistryRecordsSingle(t *testing.T) {
	reg := &domain.Registry{All: "USD840"}
	records, err := reg.Records()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "USD", records[0].Code)
}

func TestRegistryRecordsBadLength(t *testing.T) {
	reg := &domain.Registry{All: "USD840-EUR97"}
	_, err := reg.Records()
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrMalformedRegistryString)
}

func TestRegistryRecordsBadSeparator(t *testing.T) {
	reg := &domain.Registry{All: "USD840+EUR978"}
	_, err := reg.Records()
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrMalformedRegistryString)
}

func TestRegistryRecordsNonNumeric(t *testing.T) {
	reg := &domain.Registry{All: "USD84O"}
	_, err := reg.Records()
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrMalformedRegistryString)
}
