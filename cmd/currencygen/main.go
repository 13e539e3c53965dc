// Command currencygen reads currency data in properties format from stdin
// and writes the binary lookup tables consumed by the runtime currency
// library to the file named by -o.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fintool-labs/currencygen/internal/adapters/binfmt"
	"github.com/fintool-labs/currencygen/internal/adapters/props"
	"github.com/fintool-labs/currencygen/internal/core/ports"
	"github.com/fintool-labs/currencygen/internal/core/services"
	"github.com/fintool-labs/currencygen/pkg/config"
	"github.com/google/uuid"
)

// outputPath extracts the output file from the command line. The only
// supported invocation form is "-o <outputfile>".
func outputPath(args []string) (string, bool) {
	if len(args) != 3 || args[1] != "-o" {
		return "", false
	}
	return args[2], true
}

func main() {
	// Validate the invocation before doing any other work.
	outputPath, ok := outputPath(os.Args)
	if !ok {
		fmt.Fprintln(os.Stderr, "Usage: currencygen -o <outputfile>")
		os.Exit(1)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger with a per-run correlation id
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})).With(slog.String("build_id", uuid.NewString()))

	// The output sink is opened before any processing; failure here is fatal.
	out, err := os.Create(outputPath)
	if err != nil {
		logger.Error("Failed to open output file",
			slog.String("path", outputPath), slog.String("error", err.Error()))
		os.Exit(1)
	}

	var source ports.CurrencyDataSource = props.NewSource()
	data, err := source.Load(os.Stdin)
	if err != nil {
		logger.Error("Failed to read input data", slog.String("error", err.Error()))
		os.Exit(1)
	}

	tables, err := services.NewGenerator(logger, cfg.Now()).Generate(data)
	if err != nil {
		logger.Error("Failed to generate currency tables", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var encoder ports.TableEncoder = binfmt.NewEncoder()
	if err := encoder.Encode(out, tables); err != nil {
		logger.Error("Failed to write output", slog.String("error", err.Error()))
		os.Exit(1)
	}
	// Flush and close on the success path only; an aborted run may leave a
	// partial file, which is acceptable for a build artifact.
	if err := out.Close(); err != nil {
		logger.Error("Failed to close output file", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Currency data file written",
		slog.String("path", outputPath),
		slog.Int("special_cases", len(tables.SpecialCases)),
		slog.Int("other_currencies", len(tables.OtherCurrencies)),
	)
}
