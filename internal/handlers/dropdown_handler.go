package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/samajseva/registration-backend/internal/dto"
	"github.com/samajseva/registration-backend/internal/services"
)

type DropdownHandler struct {
	dropdownService *services.DropdownService
}

func NewDropdownHandler(dropdownService *services.DropdownService) *DropdownHandler {
	return &DropdownHandler{dropdownService: dropdownService}
}

func (h *DropdownHandler) GetOptions(c *fiber.Ctx) error {
	options, err := h.dropdownService.Options(c.Context(), c.Query("type"))
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid type. Must be 'cities', 'states', or 'native_places'",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.JSON(dto.DropdownOptionsResponse{Options: options})
}

func (h *DropdownHandler) AddOption(c *fiber.Ctx) error {
	var req dto.AddDropdownOptionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	created, err := h.dropdownService.Add(c.Context(), req.Type, req.Name)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	resp := dto.AddDropdownOptionResponse{Success: true, Option: strings.TrimSpace(req.Name)}
	if !created {
		resp.Message = "Option already exists"
	}
	return c.JSON(resp)
}
