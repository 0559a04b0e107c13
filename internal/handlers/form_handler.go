package handlers

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/salary-estimator/internal/apperrors"
	"alfredoptarigan/salary-estimator/internal/models"
	"alfredoptarigan/salary-estimator/internal/services"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

type FormHandler struct {
	estimator services.EstimatorService
}

func NewFormHandler(estimator services.EstimatorService) *FormHandler {
	return &FormHandler{estimator: estimator}
}

type pageData struct {
	Fields    []models.FormField
	Result    *resultView
	Error     string
	PoweredBy string
}

type resultView struct {
	Predicted  string
	Department string
	Average    string
	Minimum    string
	Maximum    string
	Percentile string
	Chart      models.Chart
}

// HandleIndex handles GET /
func (h *FormHandler) HandleIndex(c *fiber.Ctx) error {
	fields, err := h.estimator.Form(nil)
	if err != nil {
		return err
	}
	return h.render(c, fiber.StatusOK, pageData{Fields: fields})
}

// HandlePredict handles POST /predict. Errors are shown on the page next to the form.
func (h *FormHandler) HandlePredict(c *fiber.Ctx) error {
	var req models.PredictRequest
	if err := c.BodyParser(&req); err != nil {
		fields, ferr := h.estimator.Form(nil)
		if ferr != nil {
			return ferr
		}
		return h.render(c, fiber.StatusBadRequest, pageData{
			Fields: fields,
			Error:  "The submitted form could not be read.",
		})
	}

	fields, err := h.estimator.Form(&req)
	if err != nil {
		return err
	}

	estimate, err := runEstimate(c, h.estimator, req)
	if err != nil {
		appErr, _ := apperrors.As(err)
		return h.render(c, appErr.StatusCode, pageData{
			Fields: fields,
			Error:  appErr.Message,
		})
	}

	money := h.estimator.Money()
	stats := estimate.Comparison.Stats
	return h.render(c, fiber.StatusOK, pageData{
		Fields: fields,
		Result: &resultView{
			Predicted:  money.Format(estimate.Prediction),
			Department: stats.Department,
			Average:    money.Format(stats.Mean),
			Minimum:    money.Format(stats.Min),
			Maximum:    money.Format(stats.Max),
			Percentile: services.FormatPercent(estimate.Comparison.Percentile),
			Chart:      estimate.Chart,
		},
	})
}

func (h *FormHandler) render(c *fiber.Ctx, status int, data pageData) error {
	data.PoweredBy = poweredBy(h.estimator.Resources().Artifact.Regressor.Kind())

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return apperrors.Internal("failed to render page").WithError(err)
	}
	c.Type("html", "utf-8")
	return c.Status(status).Send(buf.Bytes())
}

func poweredBy(kind string) string {
	switch kind {
	case models.RegressorRandomForest:
		return "Random Forests 🌲"
	case models.RegressorLinear:
		return "Linear Regression 📈"
	default:
		return kind
	}
}
