package services

import (
	"fmt"

	"gigflow_backend/internal/auth"
	"gigflow_backend/internal/config"
	"gigflow_backend/internal/email"
	"gigflow_backend/internal/models"
	"gigflow_backend/internal/repositories"
	"gigflow_backend/internal/services/dto"
	"gigflow_backend/internal/workers"
	"gigflow_backend/pkg/apperrors"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(req *dto.LoginRequest) (*dto.AuthResponse, error)
	GetUser(userID string) (*dto.UserDTO, error)
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	emailProvider email.Provider
	dispatcher    *workers.Dispatcher
}

func NewAuthService(
	userRepo repositories.UserRepository,
	emailProvider email.Provider,
	dispatcher *workers.Dispatcher,
) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		emailProvider: emailProvider,
		dispatcher:    dispatcher,
	}
}

func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	exists, err := s.userRepo.EmailExists(req.Email)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrEmailConflict) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	s.sendWelcomeEmail(user)

	accessToken, err := auth.GenerateToken(user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		AccessToken: accessToken,
		User:        *buildUserDTO(user),
	}, nil
}

func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	accessToken, err := auth.GenerateToken(user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		AccessToken: accessToken,
		User:        *buildUserDTO(user),
	}, nil
}

func (s *AuthServiceImpl) GetUser(userID string) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return buildUserDTO(user), nil
}

func (s *AuthServiceImpl) sendWelcomeEmail(user *models.User) {
	to := user.Email
	name := user.Name
	dashboardURL := fmt.Sprintf("%s/dashboard", config.GetConfig().Client.BaseURL)

	s.dispatcher.Submit(workers.Task{
		Name: "welcome_email",
		Run: func() error {
			return s.emailProvider.SendWelcome(to, name, dashboardURL)
		},
	})
}

func buildUserDTO(user *models.User) *dto.UserDTO {
	return &dto.UserDTO{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}
