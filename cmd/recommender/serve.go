package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/internship-recommender/internal/classifier"
	"github.com/jonathan/internship-recommender/internal/dataset"
	"github.com/jonathan/internship-recommender/internal/metrics"
	"github.com/jonathan/internship-recommender/internal/recommender"
	"github.com/jonathan/internship-recommender/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the recommendation web server",
	Long:  "Starts an HTTP server exposing the recommendation form, the JSON API and the operational endpoints. The dataset and model are loaded once at startup and are read-only afterwards.",
	RunE:  runServe,
}

var (
	servePort      int
	serveDataset   string
	serveModel     string
	serveMode      string
	serveRateLimit int
)

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config)")
	serveCmd.Flags().StringVar(&serveDataset, "dataset", "", "Path to the dataset (default from config)")
	serveCmd.Flags().StringVar(&serveModel, "model", "", "Path to the trained model artifact (default from config)")
	serveCmd.Flags().StringVar(&serveMode, "mode", "", "Scoring mode: rules or hybrid (default from config)")
	serveCmd.Flags().IntVar(&serveRateLimit, "rate-limit", 60, "Requests per minute per client; 0 disables rate limiting")

	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	log, err := buildLogger()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if servePort == 0 {
		servePort = cfg.Port
	}
	if serveDataset == "" {
		serveDataset = cfg.Dataset
	}
	if serveModel == "" {
		serveModel = cfg.Model
	}
	if serveMode == "" {
		serveMode = cfg.Mode
	}

	mode, err := recommender.ParseMode(serveMode)
	if err != nil {
		return err
	}

	// Startup is the fail-fast point: a missing dataset or (in hybrid mode)
	// model must prevent serving entirely.
	ds, err := dataset.Load(serveDataset)
	if err != nil {
		return err
	}
	log.Info("dataset loaded", zap.String("path", serveDataset), zap.Int("records", len(ds.Records)))

	var model *classifier.Model
	if mode == recommender.ModeHybrid {
		model, err = classifier.Load(serveModel)
		if err != nil {
			return fmt.Errorf("hybrid mode needs a trained model (run `recommender train` first): %w", err)
		}
		log.Info("model loaded", zap.String("path", serveModel), zap.Int("classes", len(model.Classes)))
	}

	engine, err := recommender.New(ds, model, mode)
	if err != nil {
		return err
	}

	metrics.DatasetRecords.Set(float64(engine.RecordCount()))
	if engine.ModelLoaded() {
		metrics.ModelLoaded.Set(1)
	}

	srv, err := server.New(server.Config{
		Port:         servePort,
		DefaultLimit: cfg.Limit,
		RateLimit:    serveRateLimit,
		RateWindow:   time.Minute,
	}, engine, log)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
