package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/samajseva/registration-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DropdownService struct {
	db *gorm.DB
}

func NewDropdownService(db *gorm.DB) *DropdownService {
	return &DropdownService{db: db}
}

// Options returns the catalog's names for a category, sorted ascending.
func (s *DropdownService) Options(ctx context.Context, category string) ([]string, error) {
	if !models.ValidDropdownCategory(category) {
		return nil, fmt.Errorf("%w: invalid type, must be 'cities', 'states', or 'native_places'", ErrValidation)
	}

	var names []string
	err := s.db.WithContext(ctx).Model(&models.DropdownOption{}).
		Where("category = ?", category).
		Order("name ASC").
		Pluck("name", &names).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch dropdown options: %w", err)
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

// Add appends a value to the catalog. A duplicate insert is success, not an
// error; created reports whether the row was actually new.
func (s *DropdownService) Add(ctx context.Context, category, name string) (created bool, err error) {
	if !models.ValidDropdownCategory(category) {
		return false, fmt.Errorf("%w: invalid type, must be 'cities', 'states', or 'native_places'", ErrValidation)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return false, fmt.Errorf("%w: name is required and must be a non-empty string", ErrValidation)
	}

	option := models.DropdownOption{
		ID:       uuid.New(),
		Category: category,
		Name:     name,
	}
	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&option)
	if result.Error != nil {
		return false, fmt.Errorf("failed to add dropdown option: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
