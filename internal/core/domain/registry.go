package domain

import (
	"fmt"
	"strconv"

	"github.com/fintool-labs/currencygen/internal/apperrors"
)

// RegistryRecordLen is the width of one record in the authoritative
// currency string: a 3-letter code, a 3-digit numeric code and a separator.
const RegistryRecordLen = 7

// RegistrySeparator joins the fixed-width records of the authoritative string.
const RegistrySeparator = '-'

// Registry is the read-only currency reference data extracted from the input:
// the authoritative list of valid codes with their numeric codes, and the
// four partition sets assigning non-default fraction digits.
type Registry struct {
	// All concatenates every valid currency as a fixed 7-character record
	// (code + numeric code + separator), the last record unterminated.
	All string

	// Minor0, Minor1 and Minor3 list the currencies with 0, 1 and 3 default
	// fraction digits; MinorUndefined lists those with no defined minor unit.
	// Each is a plain concatenation of 3-letter codes. A currency absent from
	// all four sets defaults to 2 fraction digits.
	Minor0         string
	Minor1         string
	Minor3         string
	MinorUndefined string
}

// RegistryRecord is one decoded record of the authoritative string.
type RegistryRecord struct {
	Code    string
	Numeric int
}

// Records decodes the authoritative string into its fixed-width records,
// checking overall length and separator positions.
func (r *Registry) Records() ([]RegistryRecord, error) {
	if len(r.All)%RegistryRecordLen != RegistryRecordLen-1 {
		return nil, fmt.Errorf("%w: %q entry has incorrect size %d",
			apperrors.ErrMalformedRegistryString, "all", len(r.All))
	}
	n := (len(r.All) + 1) / RegistryRecordLen
	records := make([]RegistryRecord, 0, n)
	for i := 0; i < n; i++ {
		if i > 0 && r.All[i*RegistryRecordLen-1] != RegistrySeparator {
			return nil, fmt.Errorf("%w: incorrect separator at offset %d",
				apperrors.ErrMalformedRegistryString, i*RegistryRecordLen-1)
		}
		code := r.All[i*RegistryRecordLen : i*RegistryRecordLen+3]
		numeric, err := strconv.Atoi(r.All[i*RegistryRecordLen+3 : i*RegistryRecordLen+6])
		if err != nil {
			return nil, fmt.Errorf("%w: record %q has non-numeric code",
				apperrors.ErrMalformedRegistryString, r.All[i*RegistryRecordLen:i*RegistryRecordLen+6])
		}
		records = append(records, RegistryRecord{Code: code, Numeric: numeric})
	}
	return records, nil
}
