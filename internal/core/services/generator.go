package services

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/fintool-labs/currencygen/internal/core/domain"
	"github.com/fintool-labs/currencygen/internal/dto"
)

// Generator runs the whole build pipeline: main and special-case tables
// first, then the other-currencies overflow table. The result is immutable;
// running twice on identical input yields identical tables, including
// special-case indices.
type Generator struct {
	logger *slog.Logger
	now    time.Time
}

// NewGenerator creates a generator. now anchors the cut-over sanity window;
// passing a fixed instant makes builds reproducible.
func NewGenerator(logger *slog.Logger, now time.Time) *Generator {
	return &Generator{logger: logger, now: now}
}

// Generate builds the complete table set from validated input data.
func (g *Generator) Generate(data *dto.CurrencyData) (*domain.TableSet, error) {
	formatVersion, err := strconv.ParseInt(data.FormatVersion, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid formatVersion %q: %w", data.FormatVersion, err)
	}
	dataVersion, err := strconv.ParseInt(data.DataVersion, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid dataVersion %q: %w", data.DataVersion, err)
	}

	registry := &domain.Registry{
		All:            data.All,
		Minor0:         data.Minor0,
		Minor1:         data.Minor1,
		Minor3:         data.Minor3,
		MinorUndefined: data.MinorUndefined,
	}
	validator := NewCurrencyCodeValidator(registry)
	digits := NewFractionDigitsResolver(registry)
	numeric := NewNumericCodeResolver(registry)
	specials := NewSpecialCaseRegistry(validator, digits, numeric, g.now)

	mainTable, err := NewMainTableBuilder(validator, digits, numeric, specials).
		Build(data.Countries)
	if err != nil {
		return nil, fmt.Errorf("failed to build main table: %w", err)
	}

	others, err := NewOtherCurrencyTableBuilder(validator, digits, numeric).
		Build(registry, mainTable)
	if err != nil {
		return nil, fmt.Errorf("failed to build other currencies table: %w", err)
	}

	specialCases := specials.Cases()
	g.logger.Info("currency tables built",
		slog.Int("countries", len(data.Countries)),
		slog.Int("special_cases", len(specialCases)),
		slog.Int("other_currencies", len(others)),
	)

	return &domain.TableSet{
		FormatVersion:   int32(formatVersion),
		DataVersion:     int32(dataVersion),
		MainTable:       mainTable,
		SpecialCases:    specialCases,
		OtherCurrencies: others,
	}, nil
}
