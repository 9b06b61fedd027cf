package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/internship-recommender/internal/classifier"
	"github.com/jonathan/internship-recommender/internal/dataset"
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train the career classifier and persist the model artifact",
	Long:  "Fits the TF-IDF pipeline and multinomial logistic regression against the dataset and writes the model artifact used by hybrid mode.",
	RunE:  runTrain,
}

var (
	trainDataset   string
	trainModelPath string
)

func init() {
	trainCmd.Flags().StringVar(&trainDataset, "dataset", "", "Path to the dataset CSV/JSON (default from config)")
	trainCmd.Flags().StringVar(&trainModelPath, "model-path", "", "Where to save the trained model artifact (default from config)")

	rootCmd.AddCommand(trainCmd)
}

func runTrain(_ *cobra.Command, _ []string) error {
	log, err := buildLogger()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if trainDataset == "" {
		trainDataset = cfg.Dataset
	}
	if trainModelPath == "" {
		trainModelPath = cfg.Model
	}

	ds, err := dataset.Load(trainDataset)
	if err != nil {
		return err
	}
	log.Info("dataset loaded",
		zap.String("path", trainDataset),
		zap.Int("records", len(ds.Records)),
		zap.Int("examples", len(ds.Examples)),
	)

	model, err := classifier.Train(ds)
	if err != nil {
		return err
	}
	if err := model.Save(trainModelPath); err != nil {
		return err
	}

	log.Info("model trained and saved",
		zap.String("path", trainModelPath),
		zap.Int("classes", len(model.Classes)),
		zap.Int("features", model.Vectorizer.Dim()),
	)
	return nil
}
