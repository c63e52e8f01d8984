package service

import (
	"errors"

	"github.com/google/uuid"

	"github.com/NasmeenI/Inventory-pro/internal/model"
	"github.com/NasmeenI/Inventory-pro/internal/repository"
	"github.com/NasmeenI/Inventory-pro/pkg/jwt"
	"github.com/NasmeenI/Inventory-pro/pkg/validator"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserInactive       = errors.New("user account is inactive")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidRole        = errors.New("role must be admin or staff")
)

type AuthService interface {
	Register(req *RegisterRequest) (*LoginResponse, error)
	Login(email, password string) (*LoginResponse, error)
	Logout(userID uuid.UUID) error
	Me(userID uuid.UUID) (*model.UserResponse, error)
}

type RegisterRequest struct {
	Name     string     `json:"name" validate:"required"`
	Email    string     `json:"email" validate:"required,email"`
	Phone    string     `json:"tel"`
	Role     model.Role `json:"role" validate:"required,oneof=admin staff"`
	Password string     `json:"password" validate:"required,min=6"`
}

type LoginResponse struct {
	Token string             `json:"token"`
	User  model.UserResponse `json:"user"`
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Register(req *RegisterRequest) (*LoginResponse, error) {
	if err := validator.FirstError(req); err != nil {
		return nil, err
	}
	if !req.Role.Valid() {
		return nil, ErrInvalidRole
	}

	if existing, _ := s.userRepo.FindByEmail(req.Email); existing != nil {
		return nil, ErrEmailTaken
	}

	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		PhoneNumber:  req.Phone,
		Role:         req.Role,
		IsActive:     true,
		TokenVersion: uuid.New().String(),
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, errors.New("failed to hash password")
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return s.issueToken(user)
}

func (s *authService) Login(email, password string) (*LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrUserInactive
	}

	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	// Fresh token version per login; logout bumps it again so old tokens die.
	user.TokenVersion = uuid.New().String()
	if err := s.userRepo.Update(user); err != nil {
		return nil, errors.New("failed to update session")
	}

	return s.issueToken(user)
}

func (s *authService) Logout(userID uuid.UUID) error {
	// Rotating the version invalidates every outstanding token for the user.
	return s.userRepo.UpdateTokenVersion(userID, uuid.New().String())
}

func (s *authService) Me(userID uuid.UUID) (*model.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}
	resp := user.ToResponse()
	return &resp, nil
}

func (s *authService) issueToken(user *model.User) (*LoginResponse, error) {
	token, err := jwt.GenerateToken(user.ID, user.Email, user.Name, string(user.Role), user.TokenVersion)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}
	return &LoginResponse{
		Token: token,
		User:  user.ToResponse(),
	}, nil
}
