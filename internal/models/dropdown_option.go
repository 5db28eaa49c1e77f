package models

import (
	"time"

	"github.com/google/uuid"
)

// DropdownOption is one known value in an append-only catalog of selectable
// choices (cities, states, native places). Names are unique per category;
// inserting a duplicate is treated as success.
type DropdownOption struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Category  string    `gorm:"size:30;not null;uniqueIndex:idx_dropdown_category_name" json:"category"`
	Name      string    `gorm:"size:100;not null;uniqueIndex:idx_dropdown_category_name" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

const (
	DropdownCities       = "cities"
	DropdownStates       = "states"
	DropdownNativePlaces = "native_places"
)

// ValidDropdownCategory reports whether t names a known catalog.
func ValidDropdownCategory(t string) bool {
	return t == DropdownCities || t == DropdownStates || t == DropdownNativePlaces
}
