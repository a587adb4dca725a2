package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"rental-ledger/internal/config"
	"rental-ledger/internal/domain"
	"rental-ledger/internal/gateway"
	"rental-ledger/internal/logging"
	"rental-ledger/internal/pricing"
	"rental-ledger/internal/usecase"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:]))
}

func run(ctx context.Context, args []string) int {
	// Define command-line flags
	fs := flag.NewFlagSet("pricer", flag.ContinueOnError)
	inputPath := fs.String("input", "", "Path to the input JSON document, or - for stdin (required)")
	outputPath := fs.String("output", gateway.StdioPath, "Path to write the JSON report, or - for stdout")
	modeStr := fs.String("mode", "", "Report mode: price, commission, options, actions or modifications (default from config)")
	configPath := fs.String("config", "", "Path to a YAML config file (optional)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	// Validate required flags
	if *inputPath == "" {
		fmt.Fprintln(os.Stderr, "Error: the -input flag is required.")
		fs.Usage()
		return 2
	}

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return 1
	}
	if *modeStr != "" {
		cfg.Output.Mode = *modeStr
	}

	logger := logging.NewLogger(cfg.Logging, os.Stderr).With("batch_id", uuid.NewString())

	mode, err := cfg.Output.ReportMode()
	if err != nil {
		logger.Error("invalid report mode", "error", err)
		return 1
	}
	rules, err := cfg.Pricing.Rules()
	if err != nil {
		logger.Error("invalid pricing rules", "error", err)
		return 1
	}
	engine, err := pricing.NewEngine(rules)
	if err != nil {
		logger.Error("invalid pricing rules", "error", err)
		return 1
	}

	// --- Dependency Injection (Wiring the application) ---
	batchRepo := gateway.NewJSONBatchRepository()
	pricingUseCase := usecase.NewPricingUseCase(batchRepo, engine, logger)
	writer := gateway.NewJSONReportWriter(cfg.Output.Indent)

	// --- Execute the Usecase ---
	report, err := pricingUseCase.Price(ctx, *inputPath, mode)
	if err != nil {
		logBatchError(logger, err)
		return 1
	}

	// --- Present the Output ---
	if err := writer.WriteReport(ctx, *outputPath, report); err != nil {
		logger.Error("failed to write report", "output", *outputPath, "error", err)
		return 1
	}
	return 0
}

func logBatchError(logger *slog.Logger, err error) {
	var verr *domain.ValidationError
	var lerr *domain.LookupError
	switch {
	case errors.As(err, &verr):
		logger.Error("invalid input", "field", verr.Field, "error", err)
	case errors.As(err, &lerr):
		logger.Error("unknown reference", "kind", lerr.Kind, "id", lerr.ID, "error", err)
	default:
		logger.Error("pricing failed", "error", err)
	}
}
