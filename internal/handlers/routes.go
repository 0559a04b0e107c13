package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes mounts the HTML form, the JSON API and the metrics endpoint.
func SetupRoutes(app *fiber.App, form *FormHandler, predict *PredictHandler) {
	app.Get("/", form.HandleIndex)
	app.Post("/predict", form.HandlePredict)

	api := app.Group("/api/v1")
	api.Get("/health", predict.HandleHealth)
	api.Get("/form", predict.HandleForm)
	api.Post("/predict", predict.HandlePredict)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
