package handlers

import (
	"SkinSense-Backend/domain"
	"SkinSense-Backend/internal/api/presenters"
	"SkinSense-Backend/pkg/progress"
	"errors"
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ProgressHandler interface {
		GetProgressSummary(c *fiber.Ctx) error
		GetActiveProgress(c *fiber.Ctx) error
		GetResolvedProgress(c *fiber.Ctx) error
		UpdateProgress(c *fiber.Ctx) error
		AddProgressPhoto(c *fiber.Ctx) error
		GetHealingPlan(c *fiber.Ctx) error
		DeleteProgress(c *fiber.Ctx) error
	}

	progressHandler struct {
		progressService progress.ProgressService
		validator       *validator.Validate
	}
)

func NewProgressHandler(progressService progress.ProgressService, validator *validator.Validate) ProgressHandler {
	return &progressHandler{
		progressService: progressService,
		validator:       validator,
	}
}

func (h *progressHandler) GetProgressSummary(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	summary, err := h.progressService.GetProgressSummary(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetProgressSummary, nil)
	}

	return presenters.SuccessResponse(c, summary, fiber.StatusOK, domain.MessageSuccessGetProgressSummary)
}

func (h *progressHandler) GetActiveProgress(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	records, err := h.progressService.GetActiveProgress(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetProgress, nil)
	}

	return presenters.SuccessResponse(c, records, fiber.StatusOK, domain.MessageSuccessGetActiveProgress)
}

func (h *progressHandler) GetResolvedProgress(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	records, err := h.progressService.GetResolvedProgress(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetProgress, nil)
	}

	return presenters.SuccessResponse(c, records, fiber.StatusOK, domain.MessageSuccessGetResolvedProgress)
}

func (h *progressHandler) UpdateProgress(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	progressID := c.Params("id")
	req := new(domain.UpdateProgressRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateProgress, err)
	}

	res, err := h.progressService.UpdateProgress(c.Context(), progressID, userID, *req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoFieldsToUpdate),
			errors.Is(err, domain.ErrInvalidPercentage),
			errors.Is(err, domain.ErrInvalidStatus):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateProgress, err)
		case errors.Is(err, domain.ErrProgressNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateProgress, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateProgress, nil)
		}
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateProgress)
}

func (h *progressHandler) AddProgressPhoto(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	progressID := c.Params("id")

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddProgressPhoto, domain.ErrImageRequired)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	defer file.Close()

	photoBytes, err := io.ReadAll(file)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	req := domain.AddProgressPhotoRequest{
		Photo:    photoBytes,
		MimeType: fileHeader.Header.Get("Content-Type"),
	}
	if notes := c.FormValue("notes"); notes != "" {
		req.Notes = &notes
	}

	res, err := h.progressService.AddProgressPhoto(c.Context(), progressID, userID, req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrImageRequired),
			errors.Is(err, domain.ErrInvalidImageFormat),
			errors.Is(err, domain.ErrImageTooLarge):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddProgressPhoto, err)
		case errors.Is(err, domain.ErrProgressNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedAddProgressPhoto, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedAddProgressPhoto, nil)
		}
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessAddProgressPhoto)
}

func (h *progressHandler) GetHealingPlan(c *fiber.Ctx) error {
	req := new(domain.HealingPlanRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	issueName := req.IssueName
	if issueName == "" {
		issueName = "Acne"
	}

	plan := h.progressService.GetHealingPlan(issueName)

	return presenters.SuccessResponse(c, plan, fiber.StatusOK, domain.MessageSuccessGetHealingPlan)
}

func (h *progressHandler) DeleteProgress(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	progressID := c.Params("id")

	if err := h.progressService.DeleteProgress(c.Context(), progressID, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteProgress, nil)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteProgress)
}
