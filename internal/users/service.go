package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"flight-service/internal/apperrors"
	"flight-service/internal/auth"
	"flight-service/internal/models"

	"golang.org/x/crypto/bcrypt"
)

type DBLayer interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
}

type Service struct {
	DB        DBLayer
	JWTSecret string
	TokenTTL  time.Duration
}

func NewService(db DBLayer, jwtSecret string, tokenTTL time.Duration) *Service {
	return &Service{DB: db, JWTSecret: jwtSecret, TokenTTL: tokenTTL}
}

// Register creates a non-staff account with a bcrypt-hashed password.
func (s *Service) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	fields := map[string]string{}
	if !strings.Contains(req.Email, "@") {
		fields["email"] = "enter a valid email address"
	}
	if len(req.Password) < 8 {
		fields["password"] = "must be at least 8 characters"
	}
	if len(fields) > 0 {
		return nil, apperrors.NewFieldValidation(fields)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:     strings.ToLower(req.Email),
		Password:  string(hash),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.DB.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Token exchanges credentials for a signed access token. Wrong email and
// wrong password look identical to the caller.
func (s *Service) Token(ctx context.Context, req models.TokenRequest) (*models.TokenResponse, error) {
	invalid := apperrors.NewValidation("invalid email or password")

	user, err := s.DB.GetUserByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, invalid
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, invalid
	}

	access, err := auth.IssueToken(s.JWTSecret, s.TokenTTL, user.ID, user.IsStaff)
	if err != nil {
		return nil, err
	}
	return &models.TokenResponse{Access: access}, nil
}

func (s *Service) Me(ctx context.Context, userID int64) (*models.User, error) {
	return s.DB.GetUserByID(ctx, userID)
}
