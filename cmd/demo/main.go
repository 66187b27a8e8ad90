// Package main is the entry point for the transfer demo.
// It builds one account pair from configuration, runs the configured
// transfers against it and reports the outcome of each.
package main

import (
	"context"
	"fmt"
	"os"

	"atomictx/internal/config"
	"atomictx/internal/services/batch"
	"atomictx/internal/services/transfer"

	"go.uber.org/zap"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "demo: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	if err := config.LoadEnv(); err != nil {
		return fmt.Errorf("load .env: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	metrics := newCounters()
	pair := transfer.NewAccountPair(cfg.SenderBalance, cfg.ReceiverBalance, metrics)
	logger.Info("account pair opened", zap.Stringer("balances", pair.Balances()))

	results, err := batch.NewService(pair, cfg.Concurrency).Run(ctx, cfg.TransferAmounts)
	if err != nil {
		return fmt.Errorf("run transfers: %w", err)
	}

	for _, r := range results {
		report(logger, r)
	}

	summary := batch.Summarize(results)
	logger.Info("transfers finished",
		zap.Stringer("balances", pair.Balances()),
		zap.Int("attempts", summary.Attempts),
		zap.Int("succeeded", summary.Succeeded),
		zap.Any("failures", summary.Failures),
		zap.Uint64("fees_burned", summary.FeesBurned),
		zap.Uint64("moved", summary.Moved),
	)
	metrics.log(logger)
	return nil
}

func report(logger *zap.Logger, r batch.Result) {
	fields := []zap.Field{
		zap.Stringer("id", r.ID),
		zap.Uint64("amount", r.Amount),
		zap.Uint64("fee", r.Fee),
		zap.String("result", transfer.ResultLabel(r.Err)),
	}
	if r.Succeeded() {
		logger.Info("transfer applied", fields...)
		return
	}
	logger.Warn("transfer rejected", append(fields, zap.Error(r.Err))...)
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
