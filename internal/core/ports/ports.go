// Package ports defines the interfaces between the generator core and its
// input/output adapters.
package ports

import (
	"io"

	"github.com/fintool-labs/currencygen/internal/core/domain"
	"github.com/fintool-labs/currencygen/internal/dto"
)

// CurrencyDataSource loads and validates generator input.
type CurrencyDataSource interface {
	Load(r io.Reader) (*dto.CurrencyData, error)
}

// TableEncoder serializes a generated table set.
type TableEncoder interface {
	Encode(w io.Writer, ts *domain.TableSet) error
}

// TableDecoder reads a serialized table set back.
type TableDecoder interface {
	Decode(r io.Reader) (*domain.TableSet, error)
}
