package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/samajseva/registration-backend/internal/dto"
	"github.com/samajseva/registration-backend/internal/models"
	"github.com/samajseva/registration-backend/internal/services"
)

type RegistrationHandler struct {
	registrationService *services.RegistrationService
}

func NewRegistrationHandler(registrationService *services.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{registrationService: registrationService}
}

// Submit accepts the public multipart registration form: personal details plus
// the photo file.
func (h *RegistrationHandler) Submit(c *fiber.Ctx) error {
	in := services.CreateRegistrationInput{
		FirstName:     c.FormValue("firstName"),
		MiddleName:    c.FormValue("middleName"),
		LastName:      c.FormValue("lastName"),
		Gender:        c.FormValue("gender"),
		MaritalStatus: c.FormValue("maritalStatus"),
		Birthday:      c.FormValue("birthday"),
		Street:        c.FormValue("street"),
		City:          c.FormValue("city"),
		State:         c.FormValue("state"),
		ZipCode:       c.FormValue("zipCode"),
		Phone:         c.FormValue("phone"),
		RelativePhone: c.FormValue("relativePhone"),
		NativePlace:   c.FormValue("nativePlace"),
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Photo is required",
		})
	}

	photo, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to read photo upload",
		})
	}
	defer photo.Close()

	reg, err := h.registrationService.Create(
		c.Context(), in, photo, fileHeader.Filename, fileHeader.Header.Get("Content-Type"))
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

	return c.JSON(dto.SubmitRegistrationResponse{OK: true, ID: reg.ID})
}

// toRegistrationResponse shapes a row into the external DTO. Optional fields
// come out as empty string or null, never as absent keys.
func toRegistrationResponse(reg models.Registration) dto.RegistrationResponse {
	resp := dto.RegistrationResponse{
		ID:            reg.ID,
		SerialNumber:  reg.SerialNumber,
		FirstName:     reg.FirstName,
		MiddleName:    reg.MiddleName,
		LastName:      reg.LastName,
		Gender:        reg.Gender,
		MaritalStatus: reg.MaritalStatus,
		Street:        reg.Street,
		City:          reg.City,
		State:         reg.State,
		ZipCode:       reg.ZipCode,
		Phone:         reg.Phone,
		RelativePhone: reg.RelativePhone,
		NativePlace:   reg.NativePlace,
		PhotoBucket:   reg.PhotoBucket,
		PhotoPath:     reg.PhotoPath,
		Verified:      reg.Verified,
		CreatedAt:     reg.CreatedAt.UTC().Format(time.RFC3339),
	}
	if reg.Birthday != nil {
		b := reg.Birthday.Format("2006-01-02")
		resp.Birthday = &b
	}
	return resp
}
