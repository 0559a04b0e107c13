package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/salary-estimator/internal/apperrors"
	"alfredoptarigan/salary-estimator/internal/middleware"
	"alfredoptarigan/salary-estimator/internal/models"
	"alfredoptarigan/salary-estimator/internal/services"
	"alfredoptarigan/salary-estimator/internal/validator"
)

type PredictHandler struct {
	estimator services.EstimatorService
	startTime time.Time
}

func NewPredictHandler(estimator services.EstimatorService) *PredictHandler {
	return &PredictHandler{
		estimator: estimator,
		startTime: time.Now(),
	}
}

// HandlePredict handles POST /api/v1/predict
func (h *PredictHandler) HandlePredict(c *fiber.Ctx) error {
	var req models.PredictRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.BadRequest("Invalid request payload").WithError(err)
	}

	estimate, err := runEstimate(c, h.estimator, req)
	if err != nil {
		return err
	}

	money := h.estimator.Money()
	return c.JSON(models.PredictResponse{
		RequestID:       middleware.GetRequestID(c),
		PredictedSalary: estimate.Prediction,
		PredictedText:   money.Format(estimate.Prediction),
		Department:      estimate.Comparison.Stats,
		Percentile:      estimate.Comparison.Percentile,
		PercentileText:  services.FormatPercent(estimate.Comparison.Percentile),
		Chart:           estimate.Chart.Bars,
	})
}

// HandleForm handles GET /api/v1/form
func (h *PredictHandler) HandleForm(c *fiber.Ctx) error {
	fields, err := h.estimator.Form(nil)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"fields": fields})
}

// HandleHealth handles GET /api/v1/health
func (h *PredictHandler) HandleHealth(c *fiber.Ctx) error {
	res := h.estimator.Resources()
	return c.JSON(models.HealthResponse{
		Status:       "healthy",
		DatasetRows:  res.Dataset.Len(),
		ModelKind:    res.Artifact.Regressor.Kind(),
		FeatureCount: len(res.Artifact.FeatureNames),
		Uptime:       time.Since(h.startTime).Round(time.Second).String(),
	})
}

// runEstimate validates req, runs the estimator and records the outcome.
// Failures are returned as *apperrors.AppError.
func runEstimate(c *fiber.Ctx, estimator services.EstimatorService, req models.PredictRequest) (*models.Estimate, error) {
	if err := validator.Validate(req); err != nil {
		appErr := toAppError(err, req.Department)
		middleware.RecordPrediction(appErr.Code, 0)
		return nil, appErr
	}

	estimate, err := estimator.Estimate(c.UserContext(), req.ToQuery())
	if err != nil {
		appErr := toAppError(err, req.Department)
		middleware.RecordPrediction(appErr.Code, 0)
		return nil, appErr
	}

	middleware.RecordPrediction("ok", estimate.Prediction)
	return estimate, nil
}
