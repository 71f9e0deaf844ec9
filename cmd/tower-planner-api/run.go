package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	apiserver "github.com/PratikS7412/Tower-Retrival-Time/internal/api_server"
	"github.com/PratikS7412/Tower-Retrival-Time/internal/config"
	"github.com/PratikS7412/Tower-Retrival-Time/internal/estimation/calculators"
	"github.com/PratikS7412/Tower-Retrival-Time/internal/estimation/params"
	"github.com/PratikS7412/Tower-Retrival-Time/internal/estimation/retrieval"
	"github.com/PratikS7412/Tower-Retrival-Time/internal/service"
	"github.com/PratikS7412/Tower-Retrival-Time/pkg/log"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the tower planner api",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		logLvl, err := zap.ParseAtomicLevel(cfg.Log.Level)
		if err != nil {
			logLvl = zap.NewAtomicLevelAt(zap.InfoLevel)
		}

		logger := log.InitLog(logLvl, log.WithFile(log.FileConfig{
			Path:       cfg.Log.File,
			MaxSizeMB:  cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAgeDays: cfg.Log.MaxAgeDays,
		}))
		defer func() { _ = logger.Sync() }()

		undo := zap.ReplaceGlobals(logger)
		defer undo()

		zap.S().Info("Starting API service...")
		defer zap.S().Info("API service stopped")

		model, err := params.ParseHeightModel(cfg.Planner.HeightModel)
		if err != nil {
			zap.S().Fatalw("invalid height model", "error", err)
		}
		estimator := retrieval.NewEstimator(
			retrieval.WithTieredLiftingOptions(calculators.WithMinLiftRatio(cfg.Planner.MinLiftRatio)),
		)
		retrievalSrv := service.NewRetrievalService(estimator, model)
		reportSrv := service.NewReportService()

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGQUIT)
		defer cancel()

		go func() {
			defer cancel()
			listener, err := newListener(cfg.Service.Address)
			if err != nil {
				zap.S().Fatalw("creating listener", "error", err)
			}

			server := apiserver.New(cfg, listener, retrievalSrv, reportSrv)
			if err := server.Run(ctx); err != nil {
				zap.S().Fatalw("Error running server", "error", err)
			}
		}()

		go func() {
			defer cancel()
			listener, err := newListener(cfg.Service.MetricsAddress)
			if err != nil {
				zap.S().Fatalw("creating listener", "error", err)
			}

			metricsServer := apiserver.NewMetricServer(cfg.Service.MetricsAddress, listener)
			if err := metricsServer.Run(ctx); err != nil {
				zap.S().Fatalw("failed to run metrics server", "error", err)
			}
		}()

		<-ctx.Done()
		return nil
	},
}

func loadConfig() (*config.Config, error) {
	if envFile != "" {
		return config.Load(envFile)
	}
	return config.New()
}

func newListener(address string) (net.Listener, error) {
	if address == "" {
		address = "localhost:0"
	}
	return net.Listen("tcp", address)
}
