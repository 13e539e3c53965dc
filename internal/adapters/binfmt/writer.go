// Package binfmt implements the fixed big-endian layout of the generated
// currency data file:
//
//	magic number            int32, always 0x43757244 ('CurD')
//	formatVersion           int32
//	dataVersion             int32
//	mainTable               int32[26*26]
//	specialCaseCount        int32
//	specialCaseCutOverTimes int64[specialCaseCount]
//	specialCaseOldCurrencies  utf[specialCaseCount]
//	specialCaseNewCurrencies  utf[specialCaseCount]
//	specialCaseOldDigits    int32[specialCaseCount]
//	specialCaseNewDigits    int32[specialCaseCount]
//	specialCaseOldNumeric   int32[specialCaseCount]
//	specialCaseNewNumeric   int32[specialCaseCount]
//	otherCurrenciesCount    int32
//	otherCurrencies         utf, dash-separated codes
//	otherCurrenciesDigits   int32[otherCurrenciesCount]
//	otherCurrenciesNumeric  int32[otherCurrenciesCount]
//
// utf strings carry a big-endian 2-byte length prefix followed by UTF-8
// bytes, matching the runtime reader of the file.
package binfmt

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/fintool-labs/currencygen/internal/apperrors"
	"github.com/fintool-labs/currencygen/internal/core/domain"
)

// MagicNumber identifies a currency data file ('CurD').
const MagicNumber int32 = 0x43757244

// Encoder serializes a table set into the binary layout. It is a pure
// function of the fully built tables.
type Encoder struct{}

func NewEncoder() Encoder { return Encoder{} }

// Encode writes ts to w in the fixed layout. Any failure is reported as an
// output write failure; the stream is left in an undefined state.
func (Encoder) Encode(w io.Writer, ts *domain.TableSet) error {
	bw := newBinWriter(w)

	bw.int32(MagicNumber)
	bw.int32(ts.FormatVersion)
	bw.int32(ts.DataVersion)
	for _, entry := range ts.MainTable {
		bw.int32(entry.Pack())
	}

	bw.int32(int32(len(ts.SpecialCases)))
	for _, sc := range ts.SpecialCases {
		bw.int64(sc.CutOverMillis)
	}
	for _, sc := range ts.SpecialCases {
		bw.utf(sc.OldCurrency)
	}
	for _, sc := range ts.SpecialCases {
		bw.utf(sc.NewCurrency)
	}
	for _, sc := range ts.SpecialCases {
		bw.int32(int32(sc.OldDigits))
	}
	for _, sc := range ts.SpecialCases {
		bw.int32(int32(sc.NewDigits))
	}
	for _, sc := range ts.SpecialCases {
		bw.int32(int32(sc.OldNumeric))
	}
	for _, sc := range ts.SpecialCases {
		bw.int32(int32(sc.NewNumeric))
	}

	bw.int32(int32(len(ts.OtherCurrencies)))
	codes := make([]string, len(ts.OtherCurrencies))
	for i, oc := range ts.OtherCurrencies {
		codes[i] = oc.Code
	}
	bw.utf(strings.Join(codes, "-"))
	for _, oc := range ts.OtherCurrencies {
		bw.int32(int32(oc.Digits))
	}
	for _, oc := range ts.OtherCurrencies {
		bw.int32(int32(oc.Numeric))
	}

	return bw.flush()
}

// binWriter is a sticky-error big-endian writer.
type binWriter struct {
	w   *bufio.Writer
	err error
}

func newBinWriter(w io.Writer) *binWriter {
	return &binWriter{w: bufio.NewWriter(w)}
}

func (b *binWriter) int32(v int32) {
	if b.err != nil {
		return
	}
	b.err = binary.Write(b.w, binary.BigEndian, v)
}

func (b *binWriter) int64(v int64) {
	if b.err != nil {
		return
	}
	b.err = binary.Write(b.w, binary.BigEndian, v)
}

func (b *binWriter) utf(s string) {
	if b.err != nil {
		return
	}
	if len(s) > math.MaxUint16 {
		b.err = fmt.Errorf("string of %d bytes exceeds length prefix", len(s))
		return
	}
	if b.err = binary.Write(b.w, binary.BigEndian, uint16(len(s))); b.err != nil {
		return
	}
	_, b.err = b.w.WriteString(s)
}

func (b *binWriter) flush() error {
	if b.err == nil {
		b.err = b.w.Flush()
	}
	if b.err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrOutputWriteFailure, b.err)
	}
	return nil
}
