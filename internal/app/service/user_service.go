package service

import (
	"errors"

	"github.com/ikkim/baedal-backend/internal/app/model"
	"github.com/ikkim/baedal-backend/internal/app/repository"
	"github.com/ikkim/baedal-backend/pkg/logger"
	"github.com/ikkim/baedal-backend/pkg/util"
	"gorm.io/gorm"
)

var (
	ErrLoginIDExists      = errors.New("이미 존재하는 아이디입니다")
	ErrInvalidCredentials = errors.New("아이디 또는 비밀번호가 올바르지 않습니다")
	ErrUserNotFound       = errors.New("사용자를 찾을 수 없습니다")
)

type UserRegisterInput struct {
	LoginID  string
	Password string
	Email    string
	Name     string
	Address  string
}

type UserService interface {
	CheckLoginID(loginID string) (bool, error)
	Register(input UserRegisterInput) (*model.User, error)
	Login(loginID, password string) (*model.User, error)
	GetByID(id uint) (*model.User, error)
	UpdateAddress(userID uint, address string) (*model.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// CheckLoginID 아이디 사용 가능 여부 (true = 사용 가능)
func (s *userService) CheckLoginID(loginID string) (bool, error) {
	exists, err := s.userRepo.ExistsByLoginID(loginID)
	if err != nil {
		return false, err
	}
	return !exists, nil
}

func (s *userService) Register(input UserRegisterInput) (*model.User, error) {
	logger.Info("Attempting user registration", map[string]interface{}{
		"login_id": input.LoginID,
	})

	exists, err := s.userRepo.ExistsByLoginID(input.LoginID)
	if err != nil {
		return nil, err
	}
	if exists {
		logger.Warn("Registration failed: login ID already exists", map[string]interface{}{
			"login_id": input.LoginID,
		})
		return nil, ErrLoginIDExists
	}

	hashedPassword, err := util.HashPassword(input.Password)
	if err != nil {
		logger.Error("Failed to hash password", err, map[string]interface{}{
			"login_id": input.LoginID,
		})
		return nil, err
	}

	user := &model.User{
		LoginID:      input.LoginID,
		PasswordHash: hashedPassword,
		Email:        input.Email,
		Name:         input.Name,
		Address:      input.Address,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	logger.Info("User registered successfully", map[string]interface{}{
		"user_id":  user.ID,
		"login_id": user.LoginID,
	})
	return user, nil
}

func (s *userService) Login(loginID, password string) (*model.User, error) {
	user, err := s.userRepo.FindByLoginID(loginID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Login failed: user not found", map[string]interface{}{
				"login_id": loginID,
			})
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !util.VerifyPassword(user.PasswordHash, password) {
		logger.Warn("Login failed: invalid password", map[string]interface{}{
			"login_id": loginID,
		})
		return nil, ErrInvalidCredentials
	}

	logger.Info("User logged in", map[string]interface{}{
		"user_id":  user.ID,
		"login_id": user.LoginID,
	})
	return user, nil
}

func (s *userService) GetByID(id uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateAddress(userID uint, address string) (*model.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user.Address = address
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	logger.Info("User address updated", map[string]interface{}{
		"user_id": user.ID,
	})
	return user, nil
}
