// Command currencyinspect decodes a generated currency data file and prints
// its tables in readable form.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fintool-labs/currencygen/internal/adapters/binfmt"
	"github.com/fintool-labs/currencygen/internal/core/domain"
	"github.com/fintool-labs/currencygen/internal/core/ports"
	"github.com/fintool-labs/currencygen/internal/dto"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: currencyinspect <datafile>")
		os.Exit(1)
	}

	f, err := os.Open(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	var decoder ports.TableDecoder = binfmt.NewDecoder()
	tables, err := decoder.Decode(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	report := dto.NewInspectReport(tables)
	fmt.Printf("formatVersion: %d\ndataVersion:   %d\n", tables.FormatVersion, tables.DataVersion)
	fmt.Printf("countries:     %d simple, %d without currency, %d special, %d invalid\n",
		report.SimpleCount, report.NoCurrencyCount, report.SpecialCount, report.InvalidCount)

	fmt.Println("\ncountry currencies:")
	for _, c := range report.Countries {
		fmt.Printf("  %s -> %s  digits=%d numeric=%03d increment=%s\n",
			c.Country, c.Currency, c.Digits, c.Numeric, c.Increment)
	}

	fmt.Printf("\nspecial cases (%d):\n", len(tables.SpecialCases))
	for i, sc := range tables.SpecialCases {
		cutOver := "never"
		if sc.CutOverMillis != domain.CutOverNever {
			cutOver = time.UnixMilli(sc.CutOverMillis).UTC().Format(time.RFC3339)
		}
		successor := "-"
		if sc.NewCurrency != "" {
			successor = fmt.Sprintf("%s (digits=%d numeric=%03d)",
				sc.NewCurrency, sc.NewDigits, sc.NewNumeric)
		}
		fmt.Printf("  [%d] %s (digits=%d numeric=%03d) -> %s at %s\n",
			i, sc.OldCurrency, sc.OldDigits, sc.OldNumeric, successor, cutOver)
	}

	fmt.Printf("\nother currencies (%d):\n", len(tables.OtherCurrencies))
	for _, oc := range report.Others {
		fmt.Printf("  %s  digits=%d numeric=%03d increment=%s\n",
			oc.Code, oc.Digits, oc.Numeric, oc.Increment)
	}
}
