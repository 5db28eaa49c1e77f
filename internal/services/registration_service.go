package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samajseva/registration-backend/internal/dto"
	"github.com/samajseva/registration-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrValidation           = errors.New("validation failed")
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// validSortColumns is the allow-list of sortable columns. Anything outside it
// falls back to "id" so caller input never reaches the ORDER BY clause verbatim.
var validSortColumns = map[string]struct{}{
	"id":             {},
	"serial_number":  {},
	"first_name":     {},
	"middle_name":    {},
	"last_name":      {},
	"gender":         {},
	"marital_status": {},
	"birthday":       {},
	"city":           {},
	"state":          {},
	"zip_code":       {},
	"phone":          {},
	"native_place":   {},
	"verified":       {},
	"created_at":     {},
}

// Uploader is the slice of the storage client the submission flow needs.
type Uploader interface {
	Upload(ctx context.Context, bucket, object string, r io.Reader, contentType string) error
}

type RegistrationService struct {
	db     *gorm.DB
	table  string
	store  Uploader
	bucket string
}

func NewRegistrationService(db *gorm.DB, table string, store Uploader, bucket string) *RegistrationService {
	return &RegistrationService{db: db, table: table, store: store, bucket: bucket}
}

// List returns one page of registrations matching the caller-supplied criteria
// plus the total filtered count. The count runs as its own query since a capped
// fetch cannot report it.
func (s *RegistrationService) List(ctx context.Context, p dto.ListRegistrationsParams) ([]models.Registration, int64, error) {
	page := ClampPage(p.Page)
	limit := ClampLimit(p.Limit)
	sortColumn, sortOrder := resolveSort(p.SortBy, p.SortOrder)

	query := s.db.WithContext(ctx).Table(s.table)
	query = applySearch(query, p.Search)
	if p.Gender != "" {
		query = query.Where("gender = ?", p.Gender)
	}
	if p.Verified == "verified" || p.Verified == "unverified" {
		query = query.Where("verified = ?", p.Verified == "verified")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count registrations: %w", err)
	}

	var rows []models.Registration
	err := query.
		Order(sortColumn + " " + sortOrder).
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch registrations: %w", err)
	}

	return rows, total, nil
}

// applySearch adds the case-insensitive substring group over the searchable
// text fields.
func applySearch(query *gorm.DB, search string) *gorm.DB {
	cond, args := searchCondition(search)
	if cond == "" {
		return query
	}
	return query.Where(cond, args...)
}

// searchCondition builds the OR group matched by free-text search. Purely
// numeric input additionally matches the serial number by exact equality.
func searchCondition(search string) (string, []interface{}) {
	search = strings.TrimSpace(search)
	if search == "" {
		return "", nil
	}

	pattern := "%" + search + "%"
	cond := "(id::text ILIKE ? OR first_name ILIKE ? OR middle_name ILIKE ? OR last_name ILIKE ?" +
		" OR phone ILIKE ? OR city ILIKE ? OR state ILIKE ? OR native_place ILIKE ? OR zip_code ILIKE ?"
	args := []interface{}{pattern, pattern, pattern, pattern, pattern, pattern, pattern, pattern, pattern}

	if serial, err := strconv.ParseInt(search, 10, 64); err == nil {
		cond += " OR serial_number = ?"
		args = append(args, serial)
	}
	cond += ")"

	return cond, args
}

func resolveSort(sortBy, sortOrder string) (string, string) {
	if _, ok := validSortColumns[sortBy]; !ok {
		sortBy = "id"
	}
	if sortOrder != "asc" {
		sortOrder = "desc"
	}
	return sortBy, sortOrder
}

// ClampPage floors the requested page at 1.
func ClampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// ClampLimit resolves the page size: non-positive input gets the default,
// anything above the server-side cap is clamped to 100.
func ClampLimit(limit int) int {
	if limit < 1 {
		return defaultPageLimit
	}
	if limit > maxPageLimit {
		return maxPageLimit
	}
	return limit
}

// TotalPages computes ceil(total/limit) for the pagination envelope.
func TotalPages(total int64, limit int) int64 {
	if limit < 1 {
		return 0
	}
	return (total + int64(limit) - 1) / int64(limit)
}

// ToggleVerified flips exactly one row's verified flag. No other column is
// touched; the admin surface supports no full edit.
func (s *RegistrationService) ToggleVerified(ctx context.Context, id uuid.UUID, verified bool) error {
	result := s.db.WithContext(ctx).Table(s.table).
		Where("id = ?", id).
		Update("verified", verified)
	if result.Error != nil {
		return fmt.Errorf("failed to update registration: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRegistrationNotFound
	}
	return nil
}

// Get returns one registration by id.
func (s *RegistrationService) Get(ctx context.Context, id uuid.UUID) (*models.Registration, error) {
	var reg models.Registration
	err := s.db.WithContext(ctx).Table(s.table).Where("id = ?", id).First(&reg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRegistrationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch registration: %w", err)
	}
	return &reg, nil
}

// CreateRegistrationInput is the validated public submission payload.
type CreateRegistrationInput struct {
	FirstName     string
	MiddleName    string
	LastName      string
	Gender        string
	MaritalStatus string
	Birthday      string
	Street        string
	City          string
	State         string
	ZipCode       string
	Phone         string
	RelativePhone string
	NativePlace   string
}

// Create uploads the photo under a fresh UUID name and inserts the row with
// its (bucket, path) locator. Names are stored with the first letter
// capitalized.
func (s *RegistrationService) Create(ctx context.Context, in CreateRegistrationInput, photo io.Reader, photoName, contentType string) (*models.Registration, error) {
	if err := validateSubmission(&in); err != nil {
		return nil, err
	}

	birthday, err := time.Parse("2006-01-02", in.Birthday)
	if err != nil {
		return nil, fmt.Errorf("%w: birthday must be YYYY-MM-DD", ErrValidation)
	}

	photoPath := uuid.NewString() + photoExtension(photoName)
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	if err := s.store.Upload(ctx, s.bucket, photoPath, photo, contentType); err != nil {
		return nil, err
	}

	reg := models.Registration{
		ID:          uuid.New(),
		FirstName:   capitalize(in.FirstName),
		MiddleName:  capitalize(in.MiddleName),
		LastName:    capitalize(in.LastName),
		Gender:      in.Gender,
		Birthday:    &birthday,
		Street:      in.Street,
		City:        in.City,
		State:       in.State,
		ZipCode:     in.ZipCode,
		Phone:       in.Phone,
		NativePlace: in.NativePlace,
		PhotoBucket: s.bucket,
		PhotoPath:   photoPath,
	}
	if in.MaritalStatus != "" {
		reg.MaritalStatus = &in.MaritalStatus
	}
	if in.RelativePhone != "" {
		reg.RelativePhone = &in.RelativePhone
	}

	if err := s.db.WithContext(ctx).Table(s.table).Create(&reg).Error; err != nil {
		return nil, fmt.Errorf("failed to create registration: %w", err)
	}
	return &reg, nil
}

func validateSubmission(in *CreateRegistrationInput) error {
	required := map[string]string{
		"firstName":   in.FirstName,
		"middleName":  in.MiddleName,
		"lastName":    in.LastName,
		"gender":      in.Gender,
		"birthday":    in.Birthday,
		"street":      in.Street,
		"city":        in.City,
		"state":       in.State,
		"zipCode":     in.ZipCode,
		"phone":       in.Phone,
		"nativePlace": in.NativePlace,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%w: missing field: %s", ErrValidation, field)
		}
	}

	if in.Gender != models.GenderMale && in.Gender != models.GenderFemale {
		return fmt.Errorf("%w: invalid gender value", ErrValidation)
	}
	if in.Gender == models.GenderFemale && strings.TrimSpace(in.RelativePhone) == "" {
		return fmt.Errorf("%w: relative phone is required for female registrations", ErrValidation)
	}
	if in.MaritalStatus != "" &&
		in.MaritalStatus != models.MaritalStatusMarried &&
		in.MaritalStatus != models.MaritalStatusUnmarried {
		return fmt.Errorf("%w: invalid marital status value", ErrValidation)
	}
	return nil
}

func capitalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

func photoExtension(name string) string {
	if idx := strings.LastIndex(name, "."); idx >= 0 && idx < len(name)-1 {
		return name[idx:]
	}
	return ".jpg"
}
