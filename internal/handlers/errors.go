package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"alfredoptarigan/salary-estimator/internal/apperrors"
	"alfredoptarigan/salary-estimator/internal/logger"
	"alfredoptarigan/salary-estimator/internal/middleware"
	"alfredoptarigan/salary-estimator/internal/services"
	"alfredoptarigan/salary-estimator/internal/validator"
)

// toAppError classifies an error from the request path into a user-visible AppError.
func toAppError(err error, department string) *apperrors.AppError {
	if appErr, ok := apperrors.As(err); ok {
		return appErr
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		appErr := apperrors.Validation(validationErrs.Error())
		for _, v := range validationErrs {
			appErr.WithDetail(v.Field, v.Message)
		}
		return appErr
	}

	var unknown *services.UnknownCategoryError
	if errors.As(err, &unknown) {
		return apperrors.UnknownCategory(unknown.Field, unknown.Value).WithError(err)
	}

	switch {
	case errors.Is(err, services.ErrEmptyDepartment):
		return apperrors.EmptyDepartment(department).WithError(err)
	case errors.Is(err, services.ErrNonFinitePrediction), errors.Is(err, services.ErrFeatureOrder):
		return apperrors.PredictionFailed("the model could not produce a salary estimate").WithError(err)
	}

	return apperrors.Internal("an unexpected error occurred").WithError(err)
}

// ErrorHandler renders errors returned by API handlers as JSON.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"error": fiberErr.Message,
			"code":  fiberErr.Code,
		})
	}

	appErr := toAppError(err, "")
	if appErr.StatusCode >= fiber.StatusInternalServerError {
		logger.WithRequestID(middleware.GetRequestID(c)).Error("request failed",
			zap.Error(err),
			zap.String("path", c.Path()),
		)
	}

	return c.Status(appErr.StatusCode).JSON(fiber.Map{
		"error":      appErr.Message,
		"code":       appErr.Code,
		"details":    appErr.Details,
		"request_id": middleware.GetRequestID(c),
	})
}
