package binfmt

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/fintool-labs/currencygen/internal/core/domain"
)

// Decoder reads a serialized table set back into its unpacked form. It is
// the inverse of Encoder and exists for round-trip verification and the
// inspect tool.
type Decoder struct{}

func NewDecoder() Decoder { return Decoder{} }

// Decode reads one complete currency data file from r.
func (Decoder) Decode(r io.Reader) (*domain.TableSet, error) {
	br := &binReader{r: bufio.NewReader(r)}

	if magic := br.int32(); br.err == nil && magic != MagicNumber {
		return nil, fmt.Errorf("bad magic number 0x%08X", uint32(magic))
	}

	ts := &domain.TableSet{
		FormatVersion: br.int32(),
		DataVersion:   br.int32(),
	}
	ts.MainTable = make([]domain.Entry, domain.MainTableSize)
	for i := range ts.MainTable {
		ts.MainTable[i] = domain.UnpackEntry(br.int32())
	}

	specialCount := int(br.int32())
	if br.err == nil && (specialCount < 0 || specialCount > domain.MaxSpecialCases) {
		return nil, fmt.Errorf("special case count %d out of range", specialCount)
	}
	ts.SpecialCases = make([]domain.SpecialCase, specialCount)
	for i := range ts.SpecialCases {
		ts.SpecialCases[i].CutOverMillis = br.int64()
	}
	for i := range ts.SpecialCases {
		ts.SpecialCases[i].OldCurrency = br.utf()
	}
	for i := range ts.SpecialCases {
		ts.SpecialCases[i].NewCurrency = br.utf()
	}
	for i := range ts.SpecialCases {
		ts.SpecialCases[i].OldDigits = int(br.int32())
	}
	for i := range ts.SpecialCases {
		ts.SpecialCases[i].NewDigits = int(br.int32())
	}
	for i := range ts.SpecialCases {
		ts.SpecialCases[i].OldNumeric = int(br.int32())
	}
	for i := range ts.SpecialCases {
		ts.SpecialCases[i].NewNumeric = int(br.int32())
	}

	otherCount := int(br.int32())
	if br.err == nil && (otherCount < 0 || otherCount > domain.MaxOtherCurrencies) {
		return nil, fmt.Errorf("other currencies count %d out of range", otherCount)
	}
	joined := br.utf()
	if br.err != nil {
		return nil, br.err
	}

	var codes []string
	if joined != "" {
		codes = strings.Split(joined, "-")
	}
	if len(codes) != otherCount {
		return nil, fmt.Errorf("other currencies string has %d codes, count says %d",
			len(codes), otherCount)
	}
	ts.OtherCurrencies = make([]domain.OtherCurrency, otherCount)
	for i := range ts.OtherCurrencies {
		if codes[i] == "" {
			return nil, fmt.Errorf("other currencies string has an empty code at index %d", i)
		}
		ts.OtherCurrencies[i].Code = codes[i]
	}
	for i := range ts.OtherCurrencies {
		ts.OtherCurrencies[i].Digits = int(br.int32())
	}
	for i := range ts.OtherCurrencies {
		ts.OtherCurrencies[i].Numeric = int(br.int32())
	}

	if br.err != nil {
		return nil, br.err
	}
	return ts, nil
}

// binReader is a sticky-error big-endian reader.
type binReader struct {
	r   *bufio.Reader
	err error
}

func (b *binReader) int32() int32 {
	if b.err != nil {
		return 0
	}
	var v int32
	b.err = binary.Read(b.r, binary.BigEndian, &v)
	return v
}

func (b *binReader) int64() int64 {
	if b.err != nil {
		return 0
	}
	var v int64
	b.err = binary.Read(b.r, binary.BigEndian, &v)
	return v
}

func (b *binReader) utf() string {
	if b.err != nil {
		return ""
	}
	var n uint16
	if b.err = binary.Read(b.r, binary.BigEndian, &n); b.err != nil {
		return ""
	}
	buf := make([]byte, n)
	if _, b.err = io.ReadFull(b.r, buf); b.err != nil {
		return ""
	}
	return string(buf)
}
