package user

import (
	"context"
	"errors"

	"emenu/domain"
	"emenu/entities"
	"emenu/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterUserRequest) (domain.UserResponse, error)
		Login(ctx context.Context, req domain.LoginUserRequest) (domain.LoginUserResponse, error)
		Me(ctx context.Context, userID uint) (domain.UserResponse, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterUserRequest) (domain.UserResponse, error) {
	taken, err := s.userRepository.EmailTaken(ctx, req.Email)
	if err != nil {
		return domain.UserResponse{}, err
	}
	if taken {
		return domain.UserResponse{}, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.UserResponse{}, err
	}

	user := &entities.User{
		Email:    req.Email,
		Name:     req.Name,
		Password: string(hash),
		IsActive: true,
	}
	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.UserResponse{}, err
	}

	return userResponse(user), nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginUserRequest) (domain.LoginUserResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginUserResponse{}, domain.ErrCredentialsInvalid
		}
		return domain.LoginUserResponse{}, err
	}

	if !user.IsActive {
		return domain.LoginUserResponse{}, domain.ErrUserNotActive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginUserResponse{}, domain.ErrCredentialsInvalid
	}

	return domain.LoginUserResponse{
		Token: s.jwtService.GenerateTokenUser(user.ID),
		User:  userResponse(user),
	}, nil
}

func (s *userService) Me(ctx context.Context, userID uint) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}
	return userResponse(user), nil
}

func userResponse(user *entities.User) domain.UserResponse {
	return domain.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
	}
}
