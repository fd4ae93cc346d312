package services

import (
	"messenger_backend/internal/auth"
	"messenger_backend/internal/models"
	"messenger_backend/internal/repositories"
	"messenger_backend/internal/services/dto"
	"messenger_backend/pkg/apperrors"
)

type UserService interface {
	Register(req *dto.RegisterRequest) (uint, error)
	Login(req *dto.LoginRequest) (*dto.UserResponse, error)
	GetByID(id uint) (*dto.UserResponse, error)
	Search(query string) ([]dto.UserResponse, error)
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

// Register creates a new account and returns its id. The login must be
// unique; a taken login is a Conflict.
func (s *UserServiceImpl) Register(req *dto.RegisterRequest) (uint, error) {
	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Login:        req.Login,
		PasswordHash: hashedPassword,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrLoginAlreadyTaken) {
			return 0, apperrors.ErrLoginAlreadyExists
		}
		return 0, apperrors.StoreError(err)
	}

	return user.ID, nil
}

// Login authenticates by login and password. Unknown login and wrong
// password produce the same error so callers cannot probe for logins.
func (s *UserServiceImpl) Login(req *dto.LoginRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByLogin(req.Login)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.StoreError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return userResponse(user), nil
}

func (s *UserServiceImpl) GetByID(id uint) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.StoreError(err)
	}
	return userResponse(user), nil
}

// Search is a substring match against login or name. Case folding is
// whatever the store's LIKE does.
func (s *UserServiceImpl) Search(query string) ([]dto.UserResponse, error) {
	users, err := s.userRepo.Search(query)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}

	result := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		result = append(result, *userResponse(&users[i]))
	}
	return result, nil
}

func userResponse(user *models.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Login: user.Login,
	}
}
