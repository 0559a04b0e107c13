package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"alfredoptarigan/salary-estimator/internal/logger"
	"alfredoptarigan/salary-estimator/internal/models"
	"alfredoptarigan/salary-estimator/internal/repositories"
)

// Resources is the read-only state loaded once at startup.
type Resources struct {
	Dataset  repositories.DatasetRepository
	Artifact *ModelArtifact
}

// LoadResources loads the dataset and the model artifact concurrently.
// Either failure is fatal for startup.
func LoadResources(ctx context.Context, store ArtifactStore, datasetName, modelName string, synth *Synthesizer) (*Resources, error) {
	var res Resources

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		dataset, err := LoadDataset(gctx, store, datasetName, synth)
		if err != nil {
			return fmt.Errorf("failed to load dataset %s: %w", datasetName, err)
		}
		res.Dataset = dataset
		return nil
	})
	g.Go(func() error {
		artifact, err := LoadArtifact(gctx, store, modelName)
		if err != nil {
			return fmt.Errorf("failed to load model %s: %w", modelName, err)
		}
		res.Artifact = artifact
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &res, nil
}

// VocabularyGaps lists dataset values per column that the encoder was not fitted on.
// Selecting one of them in the form makes the prediction fail with UnknownCategoryError.
func (r *Resources) VocabularyGaps() map[models.Column][]string {
	gaps := make(map[models.Column][]string)
	for _, col := range models.CategoricalFeatures {
		values, err := r.Dataset.DistinctValues(col)
		if err != nil {
			continue
		}
		for _, v := range values {
			if !r.Artifact.Encoder.Knows(col, v) {
				gaps[col] = append(gaps[col], v)
			}
		}
	}
	return gaps
}

type EstimatorService interface {
	Estimate(ctx context.Context, query models.QueryRecord) (*models.Estimate, error)
	Form(current *models.PredictRequest) ([]models.FormField, error)
	Resources() *Resources
	Money() CurrencyFormatter
}

type estimatorService struct {
	res   *Resources
	money CurrencyFormatter
}

func NewEstimatorService(res *Resources, money CurrencyFormatter) EstimatorService {
	return &estimatorService{
		res:   res,
		money: money,
	}
}

// Estimate implements EstimatorService.
func (e *estimatorService) Estimate(ctx context.Context, query models.QueryRecord) (*models.Estimate, error) {
	prediction, err := e.res.Artifact.Predict(query)
	if err != nil {
		return nil, fmt.Errorf("failed to predict salary: %w", err)
	}

	cmp, err := Compare(e.res.Dataset, query.Department, prediction)
	if err != nil {
		return nil, fmt.Errorf("failed to compare with department: %w", err)
	}

	logger.Log.Debug("salary estimated",
		zap.String("department", query.Department),
		zap.Float64("prediction", prediction),
		zap.Float64("percentile", cmp.Percentile),
	)

	return &models.Estimate{
		Query:      query,
		Prediction: prediction,
		Comparison: cmp,
		Chart:      BuildChart(cmp, e.money),
	}, nil
}

// Form implements EstimatorService.
func (e *estimatorService) Form(current *models.PredictRequest) ([]models.FormField, error) {
	return BuildForm(e.res.Dataset, current)
}

func (e *estimatorService) Resources() *Resources {
	return e.res
}

func (e *estimatorService) Money() CurrencyFormatter {
	return e.money
}
