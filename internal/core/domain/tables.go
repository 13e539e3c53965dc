package domain

import "math"

// Capacities of the side tables. Exceeding either aborts the run.
const (
	MaxSpecialCases    = 30
	MaxOtherCurrencies = 70
)

// CutOverNever is the cut-over sentinel for special cases without a
// scheduled currency transition.
const CutOverNever = int64(math.MaxInt64)

// SpecialCase is one record of the special-case side table: a currency that
// cannot be expressed as a simple main-table entry, optionally with a
// scheduled transition to a successor currency.
type SpecialCase struct {
	// CutOverMillis is the transition instant in epoch milliseconds, or
	// CutOverNever when the record has no successor.
	CutOverMillis int64

	OldCurrency string
	// NewCurrency is empty when the record has no successor.
	NewCurrency string

	// Fraction digits use -1 for currencies with no defined minor unit.
	OldDigits int
	NewDigits int

	OldNumeric int
	NewNumeric int
}

// OtherCurrency is a registry-valid currency unreachable as any country's
// primary simple-case mapping.
type OtherCurrency struct {
	Code    string
	Digits  int
	Numeric int
}

// TableSet is the complete, immutable result of one generator run, ready
// for serialization.
type TableSet struct {
	FormatVersion int32
	DataVersion   int32

	// MainTable holds one entry per two-letter country code, row-major by
	// (first letter, second letter).
	MainTable []Entry

	SpecialCases    []SpecialCase
	OtherCurrencies []OtherCurrency
}
