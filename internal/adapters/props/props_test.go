package props_test

import (
	"strings"
	"testing"

	"github.com/fintool-labs/currencygen/internal/adapters/props"
	"github.com/fintool-labs/currencygen/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBasicPairs(t *testing.T) {
	input := `
# currency data
formatVersion=3
dataVersion: 177
US=USD
EA=
`
	pairs, err := props.Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, "3", pairs["formatVersion"])
	assert.Equal(t, "177", pairs["dataVersion"])
	assert.Equal(t, "USD", pairs["US"])
	assert.Equal(t, "", pairs["EA"])
}

func TestParseSkipsCommentsAndBlanks(t *testing.T) {
	input := "# comment\n! also a comment\n\n  \t\nUS=USD\n"
	pairs, err := props.Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"US": "USD"}, pairs)
}

func TestParseLineContinuation(t *testing.T) {
	input := "all=USD840-\\\n    EUR978\n"
	pairs, err := props.Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, "USD840-EUR978", pairs["all"])
}

func TestParseSeparatorVariants(t *testing.T) {
	input := "a=1\nb herevalue\nc : 3\nd\t4\ne   =   5\n"
	pairs, err := props.Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, "1", pairs["a"])
	assert.Equal(t, "herevalue", pairs["b"])
	assert.Equal(t, "3", pairs["c"])
	assert.Equal(t, "4", pairs["d"])
	assert.Equal(t, "5", pairs["e"])
}

func TestParseEscapes(t *testing.T) {
	input := "key\\=1=a\\tb\\u0041\n"
	pairs, err := props.Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, "a\tbA", pairs["key=1"])
}

func TestParseKeepsReferencesLiteral(t *testing.T) {
	input := "base=USD840\nall=${base}-EUR978\n"
	pairs, err := props.Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, "${base}-EUR978", pairs["all"])
}

func TestParseLaterKeyOverrides(t *testing.T) {
	input := "US=USD\nUS=USN\n"
	pairs, err := props.Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, "USN", pairs["US"])
}

func TestLoadBuildsCurrencyData(t *testing.T) {
	input := `formatVersion=3
dataVersion=177
all=USD840-EUR978
minor0=
minor1=
minor3=
minorUndefined=
US=USD
`
	data, err := props.NewSource().Load(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, "3", data.FormatVersion)
	assert.Equal(t, "USD840-EUR978", data.All)
	assert.Equal(t, map[string]string{"US": "USD"}, data.Countries)
}

func TestLoadMissingRequiredKey(t *testing.T) {
	input := "formatVersion=3\ndataVersion=177\n"
	_, err := props.NewSource().Load(strings.NewReader(input))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrMissingInputKey)
}
