package dto

import (
	"github.com/fintool-labs/currencygen/internal/core/domain"
	"github.com/fintool-labs/currencygen/internal/utils"
)

// CountryCurrencyView is one simple main-table mapping in readable form.
type CountryCurrencyView struct {
	Country  string
	Currency string
	Digits   int
	Numeric  int
	// Increment is the minor-unit rounding increment, e.g. "0.01" for two
	// fraction digits.
	Increment string
}

// OtherCurrencyView is one overflow-table record in readable form.
type OtherCurrencyView struct {
	Code      string
	Digits    int
	Numeric   int
	Increment string
}

// InspectReport summarizes a decoded table set for display.
type InspectReport struct {
	SimpleCount     int
	NoCurrencyCount int
	SpecialCount    int
	InvalidCount    int

	Countries []CountryCurrencyView
	Others    []OtherCurrencyView
}

// NewInspectReport derives the display view from a decoded table set.
func NewInspectReport(ts *domain.TableSet) *InspectReport {
	report := &InspectReport{}
	for i, entry := range ts.MainTable {
		country := string([]byte{
			byte('A' + i/domain.AToZ),
			byte('A' + i%domain.AToZ),
		})
		switch entry.Kind {
		case domain.KindSimple:
			report.SimpleCount++
			report.Countries = append(report.Countries, CountryCurrencyView{
				Country:   country,
				Currency:  country + string(rune('A'+entry.FinalChar)),
				Digits:    entry.Digits,
				Numeric:   entry.Numeric,
				Increment: MinorUnitIncrement(entry.Digits),
			})
		case domain.KindNoCurrency:
			report.NoCurrencyCount++
		case domain.KindSpecial:
			report.SpecialCount++
		default:
			report.InvalidCount++
		}
	}
	for _, oc := range ts.OtherCurrencies {
		report.Others = append(report.Others, OtherCurrencyView{
			Code:      oc.Code,
			Digits:    oc.Digits,
			Numeric:   oc.Numeric,
			Increment: MinorUnitIncrement(oc.Digits),
		})
	}
	return report
}

// MinorUnitIncrement renders 10^-digits as an exact decimal, or "n/a" for
// currencies with no defined minor unit.
func MinorUnitIncrement(digits int) string {
	return utils.MinorUnitIncrement(digits)
}
