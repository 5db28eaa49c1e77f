package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SignedURLProvider is the slice of the storage client the photo gateway
// needs: a time-bounded read URL with bucket/object existence verified.
type SignedURLProvider interface {
	SignedURL(ctx context.Context, bucket, object string, expiresIn time.Duration) (string, error)
}

type ExpiryBounds struct {
	Default int
	Min     int
	Max     int
}

type PhotoService struct {
	db     *gorm.DB
	table  string
	urls   SignedURLProvider
	bounds ExpiryBounds
}

func NewPhotoService(db *gorm.DB, table string, urls SignedURLProvider, bounds ExpiryBounds) *PhotoService {
	return &PhotoService{db: db, table: table, urls: urls, bounds: bounds}
}

// ResolveExpiry turns the raw expiresIn query value into seconds: absent or
// non-numeric input yields the default, everything else is clamped to the
// inclusive [min, max] window.
func (s *PhotoService) ResolveExpiry(raw string) int {
	if raw == "" {
		return s.bounds.Default
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return s.bounds.Default
	}
	seconds := int(n)
	if seconds < s.bounds.Min {
		return s.bounds.Min
	}
	if seconds > s.bounds.Max {
		return s.bounds.Max
	}
	return seconds
}

// PhotoURL resolves the registration's stored photo locator to a fresh signed
// URL valid for expiresIn seconds. Every call produces an independently
// expiring URL; nothing is cached.
func (s *PhotoService) PhotoURL(ctx context.Context, id uuid.UUID, expiresIn int) (string, error) {
	var locator struct {
		PhotoBucket string
		PhotoPath   string
	}
	err := s.db.WithContext(ctx).Table(s.table).
		Select("photo_bucket", "photo_path").
		Where("id = ?", id).
		Take(&locator).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrRegistrationNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to fetch photo locator: %w", err)
	}

	return s.urls.SignedURL(ctx, locator.PhotoBucket, locator.PhotoPath, time.Duration(expiresIn)*time.Second)
}
