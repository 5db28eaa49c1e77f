package dto

import (
	"github.com/google/uuid"
)

// ListRegistrationsParams carries the untrusted list-view inputs after lenient
// parsing at the handler. Zero values mean "no filter".
type ListRegistrationsParams struct {
	Page      int
	Limit     int
	Search    string
	Gender    string
	Verified  string // "", "verified" or "unverified"
	SortBy    string
	SortOrder string
}

// RegistrationResponse is the external shape of one registration row. Optional
// fields marshal as empty string or null, never as absent keys.
type RegistrationResponse struct {
	ID            uuid.UUID `json:"id"`
	SerialNumber  int64     `json:"serial_number"`
	FirstName     string    `json:"first_name"`
	MiddleName    string    `json:"middle_name"`
	LastName      string    `json:"last_name"`
	Gender        string    `json:"gender"`
	MaritalStatus *string   `json:"marital_status"`
	Birthday      *string   `json:"birthday"`
	Street        string    `json:"street"`
	City          string    `json:"city"`
	State         string    `json:"state"`
	ZipCode       string    `json:"zip_code"`
	Phone         string    `json:"phone"`
	RelativePhone *string   `json:"relative_phone"`
	NativePlace   string    `json:"native_place"`
	PhotoBucket   string    `json:"photo_bucket"`
	PhotoPath     string    `json:"photo_path"`
	Verified      bool      `json:"verified"`
	CreatedAt     string    `json:"created_at"`
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

type ListRegistrationsResponse struct {
	Registrations []RegistrationResponse `json:"registrations"`
	Pagination    Pagination             `json:"pagination"`
}

type ToggleVerifiedRequest struct {
	ID       *uuid.UUID `json:"id"`
	Verified *bool      `json:"verified"`
}

type ToggleVerifiedResponse struct {
	Success      bool `json:"success"`
	Registration struct {
		ID       uuid.UUID `json:"id"`
		Verified bool      `json:"verified"`
	} `json:"registration"`
}

type PhotoURLResponse struct {
	URL       string `json:"url"`
	ExpiresIn int    `json:"expiresIn"`
}

type SubmitRegistrationResponse struct {
	OK bool      `json:"ok"`
	ID uuid.UUID `json:"id"`
}

type DropdownOptionsResponse struct {
	Options []string `json:"options"`
}

type AddDropdownOptionRequest struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

type AddDropdownOptionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Option  string `json:"option"`
}
