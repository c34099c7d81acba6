package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/resume-screener/internal/models"
	"alfredoptarigan/resume-screener/internal/repositories"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type ScreeningHandler struct {
	screeningRepo repositories.ScreeningRepository
}

func NewScreeningHandler(screeningRepo repositories.ScreeningRepository) *ScreeningHandler {
	return &ScreeningHandler{
		screeningRepo: screeningRepo,
	}
}

// HandleGetScreening handles GET /screenings/:id
func (h *ScreeningHandler) HandleGetScreening(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid screening ID format")
	}

	screening, err := h.screeningRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrScreeningNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Screening not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(screening.Response())
}

// HandleListScreenings handles GET /screenings?limit=N
func (h *ScreeningHandler) HandleListScreenings(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", defaultListLimit)
	if limit < 1 || limit > maxListLimit {
		return fiber.NewError(fiber.StatusBadRequest, "limit must be between 1 and 100")
	}

	screenings, err := h.screeningRepo.FindRecent(limit)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	responses := make([]models.ScreeningResponse, len(screenings))
	for i := range screenings {
		responses[i] = screenings[i].Response()
	}

	return c.JSON(fiber.Map{
		"screenings": responses,
	})
}
