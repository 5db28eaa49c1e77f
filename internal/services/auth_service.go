package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/samajseva/registration-backend/internal/config"
	"github.com/samajseva/registration-backend/internal/dto"
	"github.com/samajseva/registration-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired refresh token")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrAdminNotFound      = errors.New("admin user not found")
)

type AuthService struct {
	db    *gorm.DB
	cfg   *config.Config
	table string
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{db: db, cfg: cfg, table: cfg.AdminUsersTable}
}

func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrValidation)
	}

	var admin models.AdminUser
	if err := s.db.WithContext(ctx).Table(s.table).Where("username = ?", req.Username).First(&admin).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.generateTokenPair(ctx, &admin)
}

func (s *AuthService) Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.AuthResponse, error) {
	tokenHash := hashToken(req.RefreshToken)

	var stored models.RefreshToken
	if err := s.db.WithContext(ctx).Where("token_hash = ? AND revoked = false", tokenHash).First(&stored).Error; err != nil {
		return nil, ErrInvalidToken
	}

	if time.Now().After(stored.ExpiresAt) {
		s.db.WithContext(ctx).Model(&stored).Update("revoked", true)
		return nil, ErrInvalidToken
	}

	s.db.WithContext(ctx).Model(&stored).Update("revoked", true)

	var admin models.AdminUser
	if err := s.db.WithContext(ctx).Table(s.table).First(&admin, "id = ?", stored.AdminID).Error; err != nil {
		return nil, fmt.Errorf("admin user not found: %w", err)
	}

	return s.generateTokenPair(ctx, &admin)
}

func (s *AuthService) Logout(ctx context.Context, req *dto.LogoutRequest) error {
	tokenHash := hashToken(req.RefreshToken)
	return s.db.WithContext(ctx).Model(&models.RefreshToken{}).
		Where("token_hash = ?", tokenHash).
		Update("revoked", true).Error
}

// CreateAdmin provisions a new admin user. Callers must already be
// authenticated; this is not a public sign-up.
func (s *AuthService) CreateAdmin(ctx context.Context, req *dto.CreateAdminRequest) (*models.AdminUser, error) {
	if len(req.Username) < 3 {
		return nil, fmt.Errorf("%w: username must be at least 3 characters", ErrValidation)
	}
	if len(req.Password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", ErrValidation)
	}

	var existing models.AdminUser
	if err := s.db.WithContext(ctx).Table(s.table).Where("username = ?", req.Username).First(&existing).Error; err == nil {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := models.AdminUser{
		ID:           uuid.New(),
		Username:     req.Username,
		PasswordHash: string(hash),
	}
	if err := s.db.WithContext(ctx).Table(s.table).Create(&admin).Error; err != nil {
		return nil, fmt.Errorf("failed to create admin user: %w", err)
	}
	return &admin, nil
}

// GetAdmin returns the admin user backing a token subject.
func (s *AuthService) GetAdmin(ctx context.Context, id uuid.UUID) (*models.AdminUser, error) {
	var admin models.AdminUser
	err := s.db.WithContext(ctx).Table(s.table).First(&admin, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAdminNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch admin user: %w", err)
	}
	return &admin, nil
}

func (s *AuthService) generateTokenPair(ctx context.Context, admin *models.AdminUser) (*dto.AuthResponse, error) {
	accessToken, err := s.generateAccessToken(admin)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.generateRefreshToken(ctx, admin)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: dto.AdminUserResponse{
			ID:        admin.ID,
			Username:  admin.Username,
			CreatedAt: admin.CreatedAt.UTC().Format(time.RFC3339),
		},
	}, nil
}

func (s *AuthService) generateAccessToken(admin *models.AdminUser) (string, error) {
	claims := jwt.MapClaims{
		"sub":      admin.ID.String(),
		"username": admin.Username,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(s.cfg.JWTAccessExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *AuthService) generateRefreshToken(ctx context.Context, admin *models.AdminUser) (string, error) {
	rawBytes := make([]byte, 32)
	if _, err := rand.Read(rawBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	rawToken := base64.URLEncoding.EncodeToString(rawBytes)

	record := models.RefreshToken{
		ID:        uuid.New(),
		AdminID:   admin.ID,
		TokenHash: hashToken(rawToken),
		ExpiresAt: time.Now().Add(s.cfg.JWTRefreshExpiry),
	}

	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return "", fmt.Errorf("failed to store refresh token: %w", err)
	}

	return rawToken, nil
}

func hashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return fmt.Sprintf("%x", h)
}
