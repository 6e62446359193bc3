package handlers

import (
	"SkinSense-Backend/domain"
	"SkinSense-Backend/internal/api/presenters"
	"SkinSense-Backend/pkg/scan"
	"errors"
	"io"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ScanHandler interface {
		SubmitScan(c *fiber.Ctx) error
		GetScans(c *fiber.Ctx) error
		GetScanDetails(c *fiber.Ctx) error
		DeleteScan(c *fiber.Ctx) error
		GetScanStats(c *fiber.Ctx) error
	}

	scanHandler struct {
		scanService scan.ScanService
		validator   *validator.Validate
	}
)

func NewScanHandler(scanService scan.ScanService, validator *validator.Validate) ScanHandler {
	return &scanHandler{
		scanService: scanService,
		validator:   validator,
	}
}

func (h *scanHandler) SubmitScan(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSubmitScan, domain.ErrImageRequired)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	defer file.Close()

	imageBytes, err := io.ReadAll(file)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	req := domain.SubmitScanRequest{
		Image:    imageBytes,
		MimeType: fileHeader.Header.Get("Content-Type"),
	}

	res, err := h.scanService.SubmitScan(c.Context(), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrImageRequired),
			errors.Is(err, domain.ErrInvalidImageFormat),
			errors.Is(err, domain.ErrImageTooLarge):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSubmitScan, err)
		case errors.Is(err, domain.ErrAnalysisFailed):
			return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedSubmitScan, nil)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSubmitScan, nil)
		}
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSubmitScan)
}

func (h *scanHandler) GetScans(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	limit, err := strconv.Atoi(c.Query("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}

	offset, err := strconv.Atoi(c.Query("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	scans, err := h.scanService.GetUserScans(c.Context(), userID, limit, offset)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetScans, nil)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"scans": scans,
		"pagination": fiber.Map{
			"limit":  limit,
			"offset": offset,
			"total":  len(scans),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetScans)
}

func (h *scanHandler) GetScanDetails(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	scanID := c.Params("id")

	res, err := h.scanService.GetScanByID(c.Context(), scanID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrScanNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetScans, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetScans, nil)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetScan)
}

func (h *scanHandler) DeleteScan(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	scanID := c.Params("id")

	if err := h.scanService.DeleteScan(c.Context(), scanID, userID); err != nil {
		if errors.Is(err, domain.ErrScanNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteScan, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteScan, nil)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteScan)
}

func (h *scanHandler) GetScanStats(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	stats, err := h.scanService.GetUserScanStats(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetScanStats, nil)
	}

	return presenters.SuccessResponse(c, stats, fiber.StatusOK, domain.MessageSuccessGetScanStats)
}
