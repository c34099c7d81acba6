package handlers

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"alfredoptarigan/resume-screener/internal/models"
	"alfredoptarigan/resume-screener/internal/repositories"
	"alfredoptarigan/resume-screener/internal/services"
)

type PredictionHandler struct {
	classifier    services.ResumeClassifierService
	screeningRepo repositories.ScreeningRepository
	maxFileSize   int64
	logger        *zap.Logger
}

// NewPredictionHandler builds the handler. screeningRepo may be nil, in
// which case predictions are not recorded.
func NewPredictionHandler(
	classifier services.ResumeClassifierService,
	screeningRepo repositories.ScreeningRepository,
	maxFileSize int64,
	logger *zap.Logger,
) *PredictionHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PredictionHandler{
		classifier:    classifier,
		screeningRepo: screeningRepo,
		maxFileSize:   maxFileSize,
		logger:        logger,
	}
}

// HandlePredict handles POST /predict with a multipart "file" field.
func (h *PredictionHandler) HandlePredict(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "file is required")
	}

	if strings.ToLower(filepath.Ext(file.Filename)) != ".pdf" {
		return fiber.NewError(fiber.StatusBadRequest, "Only PDF files are supported")
	}

	if file.Size > h.maxFileSize {
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("File too large. Max size: %d bytes", h.maxFileSize))
	}

	src, err := file.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "failed to open uploaded file")
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "failed to read uploaded file")
	}

	result, err := h.classifier.PredictPDF(c.UserContext(), data)
	if err != nil {
		return h.predictionError(err)
	}

	return c.JSON(h.respond(file.Filename, result))
}

// HandlePredictText handles POST /predict/text for already extracted text.
func (h *PredictionHandler) HandlePredictText(c *fiber.Ctx) error {
	var req models.PredictTextRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request payload")
	}

	result, err := h.classifier.Predict(c.UserContext(), req.Text)
	if err != nil {
		return h.predictionError(err)
	}

	return c.JSON(h.respond("text", result))
}

func (h *PredictionHandler) respond(source string, result *models.PredictionResult) models.PredictionResponse {
	resp := models.PredictionResponse{PredictionResult: *result}
	if h.screeningRepo == nil {
		return resp
	}

	screening := models.NewScreening(source, result)
	if err := h.screeningRepo.Create(screening); err != nil {
		h.logger.Warn("failed to record screening", zap.Error(err))
		return resp
	}
	resp.ScreeningID = screening.ID.String()
	return resp
}

func (h *PredictionHandler) predictionError(err error) error {
	switch {
	case errors.Is(err, services.ErrNoText):
		return fiber.NewError(fiber.StatusBadRequest, "Could not extract sufficient text from PDF")
	case errors.Is(err, services.ErrClassification):
		h.logger.Error("classification failed", zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, fmt.Sprintf("Error processing resume: %v", err))
	case errors.Is(err, services.ErrUnreadablePDF):
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Error reading PDF: %v", err))
	default:
		h.logger.Error("prediction failed", zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, fmt.Sprintf("Error processing resume: %v", err))
	}
}
