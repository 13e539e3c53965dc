package domain

// Packed main-table entry layout. The low byte carries the variant tag and
// the simple-case payload, the next ten bits carry the ISO numeric code.
// These values are part of the binary format contract and must match the
// runtime reader of the generated file.
const (
	// AToZ is the number of letters from A to Z.
	AToZ = int('Z'-'A') + 1

	// MainTableSize is one entry per two-letter country code.
	MainTableSize = AToZ * AToZ

	// InvalidCountryEntry marks a country code not present in the input.
	InvalidCountryEntry = 0x007F

	// CountryWithoutCurrencyEntry marks a country with no currency in circulation.
	CountryWithoutCurrencyEntry = 0x0080

	// SimpleCaseCountryMask selects simple-case entries.
	SimpleCaseCountryMask = 0x0000

	// SimpleCaseFinalCharMask selects the currency code's third-letter offset.
	SimpleCaseFinalCharMask = 0x001F

	// SimpleCaseDefaultDigitsMask selects the default fraction digits.
	SimpleCaseDefaultDigitsMask = 0x0060

	// SimpleCaseDefaultDigitsShift is the shift for the fraction digits field.
	SimpleCaseDefaultDigitsShift = 5

	// SpecialCaseCountryMask selects special-case entries.
	SpecialCaseCountryMask = 0x0080

	// SpecialCaseIndexMask selects the special-case table index.
	SpecialCaseIndexMask = 0x001F

	// SpecialCaseIndexDelta is the offset between the index stored in a main
	// table entry and the index into the special-case tables. Index value 0
	// is reserved for the country-without-currency entry.
	SpecialCaseIndexDelta = 1

	// CountryTypeMask distinguishes simple and special case entries.
	CountryTypeMask = SimpleCaseCountryMask | SpecialCaseCountryMask

	// NumericCodeMask selects the ISO numeric code of the currency.
	NumericCodeMask = 0x0003FF00

	// NumericCodeShift is the shift for the numeric code field.
	NumericCodeShift = 8
)

// EntryKind identifies the variant of a main-table entry.
type EntryKind int

const (
	// KindInvalid is a country code not present in the input data.
	KindInvalid EntryKind = iota
	// KindNoCurrency is a country with no currency in circulation.
	KindNoCurrency
	// KindSimple is a currency whose first two letters equal the country code.
	KindSimple
	// KindSpecial is a currency resolved through the special-case table.
	KindSpecial
)

// Entry is one main-table entry in its unpacked form. The packed integer
// representation exists only at the serialization boundary.
type Entry struct {
	Kind EntryKind

	// FinalChar is the currency code's third-letter offset from 'A' (0..25).
	// Simple entries only.
	FinalChar int

	// Digits is the currency's default fraction digits (0..3). Simple entries only.
	Digits int

	// Numeric is the ISO 4217 numeric code (0..999). Simple entries only.
	Numeric int

	// SpecialIndex is the 0-based index into the special-case table.
	// Special entries only.
	SpecialIndex int
}

// Pack flattens the entry into its 32-bit main-table representation.
func (e Entry) Pack() int32 {
	switch e.Kind {
	case KindNoCurrency:
		return CountryWithoutCurrencyEntry
	case KindSimple:
		return int32(SimpleCaseCountryMask |
			(e.FinalChar & SimpleCaseFinalCharMask) |
			(e.Digits << SimpleCaseDefaultDigitsShift) |
			(e.Numeric << NumericCodeShift))
	case KindSpecial:
		return int32(SpecialCaseCountryMask | (e.SpecialIndex + SpecialCaseIndexDelta))
	default:
		return InvalidCountryEntry
	}
}

// UnpackEntry recovers the variant and payload from a packed main-table value.
// The variant tags occupy disjoint bit patterns, so the mapping is unambiguous.
func UnpackEntry(v int32) Entry {
	if v == InvalidCountryEntry {
		return Entry{Kind: KindInvalid}
	}
	if v&SpecialCaseCountryMask != 0 {
		idx := int(v & SpecialCaseIndexMask)
		if idx == 0 {
			return Entry{Kind: KindNoCurrency}
		}
		return Entry{Kind: KindSpecial, SpecialIndex: idx - SpecialCaseIndexDelta}
	}
	return Entry{
		Kind:      KindSimple,
		FinalChar: int(v & SimpleCaseFinalCharMask),
		Digits:    int(v&SimpleCaseDefaultDigitsMask) >> SimpleCaseDefaultDigitsShift,
		Numeric:   int(v&NumericCodeMask) >> NumericCodeShift,
	}
}

// CountryIndex returns the main-table index for a two-letter country code
// given its letters' offsets from 'A'.
func CountryIndex(first, second int) int {
	return first*AToZ + second
}
