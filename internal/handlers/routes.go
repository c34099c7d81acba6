package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the API. screenings may be nil when history is disabled.
func RegisterRoutes(app *fiber.App, predict *PredictionHandler, screenings *ScreeningHandler) {
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Post("/predict", predict.HandlePredict)
	api.Post("/predict/text", predict.HandlePredictText)

	endpoints := []string{
		"POST /api/v1/predict",
		"POST /api/v1/predict/text",
	}

	if screenings != nil {
		api.Get("/screenings", screenings.HandleListScreenings)
		api.Get("/screenings/:id", screenings.HandleGetScreening)
		endpoints = append(endpoints, "GET /api/v1/screenings", "GET /api/v1/screenings/:id")
	}

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message":   "Resume Screener API",
			"version":   "1.0.0",
			"endpoints": endpoints,
		})
	})
}

func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
