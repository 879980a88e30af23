package service

import (
	"errors"
	"time"

	"github.com/findingbd/findingbd-backend/internal/app/model"
	"github.com/findingbd/findingbd-backend/internal/app/repository"
	"github.com/findingbd/findingbd-backend/pkg/logger"
	"github.com/findingbd/findingbd-backend/pkg/util"
	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

// RegisterUserInput carries the signup form fields
type RegisterUserInput struct {
	FullName    string
	Email       string
	Password    string
	PhoneNumber string
	DateOfBirth string
	Gender      string
	City        string
}

type AuthService interface {
	Register(input RegisterUserInput) (*model.User, *util.TokenPair, error)
	Login(email, password string) (*model.User, *util.TokenPair, error)
	GetUserByID(id string) (*model.User, error)
	UpdateProfile(userID string, fullName, phoneNumber, city string) (*model.User, error)
	DeleteUserByEmail(email string) (bool, error)
}

type authService struct {
	userRepo      repository.UserRepository
	jwtSecret     string
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

func NewAuthService(
	userRepo repository.UserRepository,
	jwtSecret string,
	accessExpiry, refreshExpiry time.Duration,
) AuthService {
	return &authService{
		userRepo:      userRepo,
		jwtSecret:     jwtSecret,
		accessExpiry:  accessExpiry,
		refreshExpiry: refreshExpiry,
	}
}

// Register creates a user account. There is no approval step for users;
// the account is usable as soon as registration succeeds.
func (s *authService) Register(input RegisterUserInput) (*model.User, *util.TokenPair, error) {
	logger.Info("Attempting user registration", map[string]interface{}{
		"email": input.Email,
	})

	existing, err := s.userRepo.FindByEmail(input.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("Failed to check existing user", err, map[string]interface{}{
			"email": input.Email,
		})
		return nil, nil, err
	}
	if existing != nil {
		logger.Warn("Registration failed: email already exists", map[string]interface{}{
			"email": input.Email,
		})
		return nil, nil, ErrEmailAlreadyExists
	}

	hashedPassword, err := util.HashPassword(input.Password)
	if err != nil {
		return nil, nil, err
	}

	user := &model.User{
		UserID:      util.NewUserID(),
		FullName:    input.FullName,
		Email:       input.Email,
		Password:    hashedPassword,
		PhoneNumber: input.PhoneNumber,
		DateOfBirth: input.DateOfBirth,
		Gender:      input.Gender,
		City:        input.City,
		UserType:    model.DefaultUserType,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, nil, err
	}

	tokens, err := util.GenerateTokenPair(
		user.UserID, user.Email, util.RoleUser,
		s.jwtSecret, s.accessExpiry, s.refreshExpiry,
	)
	if err != nil {
		logger.Error("Failed to generate tokens", err, map[string]interface{}{
			"user_id": user.UserID,
		})
		return nil, nil, err
	}

	logger.Info("User registered successfully", map[string]interface{}{
		"user_id": user.UserID,
		"email":   user.Email,
	})
	return user, tokens, nil
}

func (s *authService) Login(email, password string) (*model.User, *util.TokenPair, error) {
	logger.Info("User login attempt", map[string]interface{}{
		"email": email,
	})

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Login failed: user not found", map[string]interface{}{
				"email": email,
			})
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if !util.VerifyPassword(user.Password, password) {
		logger.Warn("Login failed: invalid password", map[string]interface{}{
			"email": email,
		})
		return nil, nil, ErrInvalidCredentials
	}

	tokens, err := util.GenerateTokenPair(
		user.UserID, user.Email, util.RoleUser,
		s.jwtSecret, s.accessExpiry, s.refreshExpiry,
	)
	if err != nil {
		return nil, nil, err
	}

	logger.Info("User logged in successfully", map[string]interface{}{
		"user_id": user.UserID,
	})
	return user, tokens, nil
}

func (s *authService) GetUserByID(id string) (*model.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *authService) UpdateProfile(userID string, fullName, phoneNumber, city string) (*model.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if fullName != "" {
		user.FullName = fullName
	}
	if phoneNumber != "" {
		user.PhoneNumber = phoneNumber
	}
	if city != "" {
		user.City = city
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	logger.Info("User profile updated", map[string]interface{}{
		"user_id": user.UserID,
	})
	return user, nil
}

// DeleteUserByEmail is the maintenance operation behind the seed tool's
// -delete-user flag; it is not exposed over the API.
func (s *authService) DeleteUserByEmail(email string) (bool, error) {
	deleted, err := s.userRepo.DeleteByEmail(email)
	if err != nil {
		return false, err
	}
	if deleted {
		logger.Info("User deleted", map[string]interface{}{
			"email": email,
		})
	}
	return deleted, nil
}
