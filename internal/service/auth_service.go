package service

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/photodrop-app/photodrop-backend/internal/models"
	"github.com/photodrop-app/photodrop-backend/internal/repository"
	"github.com/photodrop-app/photodrop-backend/pkg/passhash"
	"github.com/photodrop-app/photodrop-backend/pkg/token"
	"github.com/photodrop-app/photodrop-backend/pkg/utils"
)

type AuthService struct {
	userRepo *repository.UserRepository
	tokens   *token.Manager
	logger   *zap.Logger
}

func NewAuthService(userRepo *repository.UserRepository, tokens *token.Manager, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

func (s *AuthService) Signup(req models.SignupRequest) (*models.AuthResponse, error) {
	email := utils.NormalizeEmail(req.Email)

	// Check-then-insert; the unique index on email backstops the race
	// between two concurrent signups.
	exists, err := s.userRepo.EmailExists(email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	salt, err := passhash.NewSalt()
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         req.Name,
		Email:        email,
		Salt:         salt,
		PasswordHash: passhash.Hash(req.Password, salt),
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	tok, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user signed up", zap.Uint("user_id", user.ID))

	return &models.AuthResponse{
		Message: "Signup success",
		Token:   tok,
		User:    user.ToResponse(),
	}, nil
}

func (s *AuthService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	email := utils.NormalizeEmail(req.Email)

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !passhash.Verify(req.Password, user.Salt, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	tok, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.TouchUpdatedAt(user.ID); err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Message: "Login success",
		Token:   tok,
		User:    user.ToResponse(),
	}, nil
}
