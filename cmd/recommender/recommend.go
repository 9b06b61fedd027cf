package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/internship-recommender/internal/classifier"
	"github.com/jonathan/internship-recommender/internal/dataset"
	"github.com/jonathan/internship-recommender/internal/observability"
	"github.com/jonathan/internship-recommender/internal/recommender"
	"github.com/jonathan/internship-recommender/internal/types"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Score a learner profile against the internship dataset",
	Long:  "Ranks internship and career opportunities for the given profile and prints the top results. Rules mode needs only the dataset; hybrid mode also needs a trained model artifact.",
	RunE:  runRecommend,
}

var (
	recommendEducation string
	recommendSkills    string
	recommendInterests string
	recommendAge       int
	recommendLocation  string
	recommendLimit     int
	recommendMode      string
	recommendDataset   string
	recommendModel     string
)

func init() {
	recommendCmd.Flags().StringVar(&recommendEducation, "education", "", "Highest completed education level, e.g. Bachelor's (required)")
	recommendCmd.Flags().StringVar(&recommendSkills, "skills", "", "Comma-separated skills (required)")
	recommendCmd.Flags().StringVar(&recommendInterests, "interests", "", "Comma-separated interests (required)")
	recommendCmd.Flags().IntVar(&recommendAge, "age", 0, "Age (optional)")
	recommendCmd.Flags().StringVar(&recommendLocation, "location", "", "City or region (optional)")
	recommendCmd.Flags().IntVar(&recommendLimit, "limit", 5, "Number of recommendations to show")
	recommendCmd.Flags().StringVar(&recommendMode, "mode", string(recommender.ModeRules), "Scoring mode: rules or hybrid")
	recommendCmd.Flags().StringVar(&recommendDataset, "dataset", "", "Path to the dataset (default from config)")
	recommendCmd.Flags().StringVar(&recommendModel, "model", "", "Path to the trained model artifact (default from config)")

	for _, flag := range []string{"education", "skills", "interests"} {
		if err := recommendCmd.MarkFlagRequired(flag); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", flag, err))
		}
	}

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	log, err := buildLogger()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if recommendDataset == "" {
		recommendDataset = cfg.Dataset
	}
	if recommendModel == "" {
		recommendModel = cfg.Model
	}

	mode, err := recommender.ParseMode(recommendMode)
	if err != nil {
		return err
	}

	ds, err := dataset.Load(recommendDataset)
	if err != nil {
		return err
	}
	log.Debug("dataset loaded", zap.String("path", recommendDataset), zap.Int("records", len(ds.Records)))

	var model *classifier.Model
	if mode == recommender.ModeHybrid {
		model, err = classifier.Load(recommendModel)
		if err != nil {
			return fmt.Errorf("hybrid mode needs a trained model (run `recommender train` first): %w", err)
		}
	}

	engine, err := recommender.New(ds, model, mode)
	if err != nil {
		return err
	}

	profile := &types.LearnerProfile{
		Education: recommendEducation,
		Skills:    recommendSkills,
		Interests: recommendInterests,
		Location:  recommendLocation,
	}
	if cmd.Flags().Changed("age") {
		profile.Age = &recommendAge
	}
	if err := profile.Validate(); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}

	recs, err := engine.Recommend(profile, recommendLimit)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintProfile(profile)
	printer.PrintRecommendations(recs)
	return nil
}
