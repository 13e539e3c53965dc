package dto

import (
	"fmt"

	"github.com/fintool-labs/currencygen/internal/apperrors"
	"github.com/go-playground/validator/v10"
)

// requiredKeys are the input keys every generator run must supply.
var requiredKeys = []string{
	"formatVersion",
	"dataVersion",
	"all",
	"minor0",
	"minor1",
	"minor3",
	"minorUndefined",
}

// CurrencyData is the validated key/value input for one generator run.
type CurrencyData struct {
	FormatVersion string `validate:"required,numeric"`
	DataVersion   string `validate:"required,numeric"`

	// All is the authoritative registry string of 7-character records.
	All string

	// The minor-unit partition sets; plain concatenations of 3-letter codes.
	Minor0         string
	Minor1         string
	Minor3         string
	MinorUndefined string

	// Countries maps each two-letter country code present in the input to its
	// raw currency value: empty, a 3-letter code, or an OLD;timestamp;NEW
	// transition string.
	Countries map[string]string
}

var validate = validator.New()

// NewCurrencyData builds a CurrencyData from a raw key/value mapping,
// failing on any missing required key.
func NewCurrencyData(props map[string]string) (*CurrencyData, error) {
	for _, key := range requiredKeys {
		if _, ok := props[key]; !ok {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrMissingInputKey, key)
		}
	}

	data := &CurrencyData{
		FormatVersion:  props["formatVersion"],
		DataVersion:    props["dataVersion"],
		All:            props["all"],
		Minor0:         props["minor0"],
		Minor1:         props["minor1"],
		Minor3:         props["minor3"],
		MinorUndefined: props["minorUndefined"],
		Countries:      make(map[string]string),
	}
	for key, value := range props {
		if len(key) == 2 {
			data.Countries[key] = value
		}
	}

	if err := validate.Struct(data); err != nil {
		return nil, fmt.Errorf("invalid input data: %w", err)
	}
	return data, nil
}
