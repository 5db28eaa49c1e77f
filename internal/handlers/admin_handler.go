package handlers

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/samajseva/registration-backend/internal/dto"
	"github.com/samajseva/registration-backend/internal/services"
)

type AdminHandler struct {
	registrationService *services.RegistrationService
	statsService        *services.StatsService
	photoService        *services.PhotoService
}

func NewAdminHandler(
	registrationService *services.RegistrationService,
	statsService *services.StatsService,
	photoService *services.PhotoService,
) *AdminHandler {
	return &AdminHandler{
		registrationService: registrationService,
		statsService:        statsService,
		photoService:        photoService,
	}
}

// ListRegistrations serves the admin list view: search, filter, sort and
// paginate. Malformed optional filters degrade to "no filter" rather than
// failing the request.
func (h *AdminHandler) ListRegistrations(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))

	params := dto.ListRegistrationsParams{
		Page:      page,
		Limit:     limit,
		Search:    c.Query("search"),
		Gender:    c.Query("gender"),
		Verified:  c.Query("verified"),
		SortBy:    c.Query("sortBy", "id"),
		SortOrder: c.Query("sortOrder", "desc"),
	}

	rows, total, err := h.registrationService.List(c.Context(), params)
	if err != nil {
		slog.Error("registration list failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	registrations := make([]dto.RegistrationResponse, len(rows))
	for i, reg := range rows {
		registrations[i] = toRegistrationResponse(reg)
	}

	effectivePage := services.ClampPage(page)
	effectiveLimit := services.ClampLimit(limit)

	return c.JSON(dto.ListRegistrationsResponse{
		Registrations: registrations,
		Pagination: dto.Pagination{
			Page:       effectivePage,
			Limit:      effectiveLimit,
			Total:      total,
			TotalPages: services.TotalPages(total, effectiveLimit),
		},
	})
}

// ToggleVerified flips the verified flag on one registration.
func (h *AdminHandler) ToggleVerified(c *fiber.Ctx) error {
	var req dto.ToggleVerifiedRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if req.ID == nil || req.Verified == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Missing required fields: id and verified are required",
		})
	}

	if err := h.registrationService.ToggleVerified(c.Context(), *req.ID, *req.Verified); err != nil {
		if errors.Is(err, services.ErrRegistrationNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Registration not found",
			})
		}
		slog.Error("verified toggle failed", "error", err, "registration_id", req.ID)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	resp := dto.ToggleVerifiedResponse{Success: true}
	resp.Registration.ID = *req.ID
	resp.Registration.Verified = *req.Verified
	return c.JSON(resp)
}

// Statistics serves the aggregate dashboard, optionally filtered by gender.
func (h *AdminHandler) Statistics(c *fiber.Ctx) error {
	gender := strings.TrimSpace(c.Query("gender"))

	stats, err := h.statsService.Statistics(c.Context(), gender)
	if err != nil {
		slog.Error("statistics aggregation failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.JSON(stats)
}

// CityStats serves the lightweight per-city widget.
func (h *AdminHandler) CityStats(c *fiber.Ctx) error {
	stats, err := h.statsService.CityStats(c.Context(), c.Query("city"))
	if err != nil {
		slog.Error("city stats failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.JSON(stats)
}

// PhotoURL resolves a registration's photo to a short-lived signed URL.
func (h *AdminHandler) PhotoURL(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid registration ID",
		})
	}

	expiresIn := h.photoService.ResolveExpiry(c.Query("expiresIn"))

	url, err := h.photoService.PhotoURL(c.Context(), id, expiresIn)
	if err != nil {
		if errors.Is(err, services.ErrRegistrationNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Registration not found",
			})
		}
		// Bucket-not-found, object-not-found and permission-denied each carry
		// their own actionable message; forward it for operator diagnosis.
		slog.Error("signed URL generation failed", "error", err, "registration_id", id)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.JSON(dto.PhotoURLResponse{URL: url, ExpiresIn: expiresIn})
}
