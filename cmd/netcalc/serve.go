package main

import (
	"fmt"

	"github.com/rgehrsitz/netcalc/internal/calculation"
	"github.com/rgehrsitz/netcalc/internal/config"
	"github.com/rgehrsitz/netcalc/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the estimator as an HTML form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfiguration(cmd, config.NewInputParser())
			if err != nil {
				return err
			}

			debugMode, _ := cmd.Flags().GetBool("debug")
			logger, err := newLogger(debugMode)
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}
			defer logger.Sync()
			sugar := logger.Sugar()

			calc := calculation.NewNetIncomeCalculatorWithConfig(cfg.Calculator)
			if debugMode {
				calc.SetLogger(sugar)
			}

			srv, err := server.New(calc, config.NewFormReader(), cfg.Calculator.CurrencySymbol, sugar)
			if err != nil {
				return fmt.Errorf("failed to create server: %w", err)
			}

			addr, _ := cmd.Flags().GetString("addr")
			return srv.ListenAndServe(addr)
		},
	}
	cmd.Flags().String("addr", ":8080", "Listen address")
	cmd.Flags().String("config", "", "YAML calculator configuration file")
	cmd.Flags().Bool("debug", false, "Enable debug logging")
	return cmd
}

func newLogger(debugMode bool) (*zap.Logger, error) {
	if debugMode {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
