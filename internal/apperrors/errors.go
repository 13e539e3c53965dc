package apperrors

import "errors"

// ErrMissingInputKey indicates that a required key is absent from the input data.
var ErrMissingInputKey = errors.New("required input key missing")

// ErrInvalidCurrencyCodeFormat indicates a currency code that is not three uppercase letters.
var ErrInvalidCurrencyCodeFormat = errors.New("invalid currency code format")

// ErrUnknownCurrencyCode indicates a currency code absent from the authoritative registry.
var ErrUnknownCurrencyCode = errors.New("currency code not listed as valid")

// ErrFractionDigitsOutOfRange indicates fraction digits outside 0..3 in a simple entry.
var ErrFractionDigitsOutOfRange = errors.New("fraction digits out of range")

// ErrNumericCodeOutOfRange indicates an ISO numeric code outside 0..999.
var ErrNumericCodeOutOfRange = errors.New("numeric code out of range")

// ErrMalformedSpecialCase indicates a special-case string that does not match
// either the bare-code or the OLD;timestamp;NEW shape.
var ErrMalformedSpecialCase = errors.New("malformed special case string")

// ErrCutOverOutOfSanityWindow indicates a currency cut-over instant more than
// the sanity window away from the present.
var ErrCutOverOutOfSanityWindow = errors.New("cut-over time out of sanity window")

// ErrTooManySpecialCases indicates the special-case table capacity was exceeded.
var ErrTooManySpecialCases = errors.New("too many special cases")

// ErrTooManyOtherCurrencies indicates the other-currencies table capacity was exceeded.
var ErrTooManyOtherCurrencies = errors.New("too many other currencies")

// ErrMalformedRegistryString indicates the authoritative "all" registry string
// is not a well-formed sequence of 7-character records.
var ErrMalformedRegistryString = errors.New("malformed registry string")

// ErrOutputWriteFailure indicates the binary output could not be written.
var ErrOutputWriteFailure = errors.New("output write failure")
