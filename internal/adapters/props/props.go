// Package props reads currency data in properties format: one key=value
// pair per logical line, # or ! comments, backslash line continuations and
// the usual backslash escapes.
package props

import (
	"fmt"
	"io"

	"github.com/fintool-labs/currencygen/internal/dto"
	"github.com/magiconair/properties"
)

// Source parses properties input into validated generator input data.
type Source struct{}

func NewSource() Source { return Source{} }

// Load reads all key/value pairs from r and builds the input data,
// failing on any missing required key.
func (Source) Load(r io.Reader) (*dto.CurrencyData, error) {
	pairs, err := Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input data: %w", err)
	}
	return dto.NewCurrencyData(pairs)
}

// Parse reads a properties stream into a key/value map. Later occurrences
// of a key override earlier ones. Values are taken literally; ${key}
// references are not expanded, since currency codes and registry strings
// are opaque data, not configuration.
func Parse(r io.Reader) (map[string]string, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	p := properties.NewProperties()
	p.DisableExpansion = true
	if err := p.Load(buf, properties.UTF8); err != nil {
		return nil, err
	}
	return p.Map(), nil
}
