package service

import (
	"errors"

	"github.com/ikkim/baedal-backend/internal/app/model"
	"github.com/ikkim/baedal-backend/internal/app/repository"
	"github.com/ikkim/baedal-backend/pkg/logger"
	"github.com/ikkim/baedal-backend/pkg/util"
	"gorm.io/gorm"
)

var ErrOwnerNotFound = errors.New("사장님 정보를 찾을 수 없습니다")

type OwnerRegisterInput struct {
	LoginID  string
	Password string
	Email    string
}

type OwnerService interface {
	Register(input OwnerRegisterInput) (*model.Owner, error)
	Login(loginID, password string) (*model.Owner, error)
	GetByID(id uint) (*model.Owner, error)
}

type ownerService struct {
	ownerRepo repository.OwnerRepository
}

func NewOwnerService(ownerRepo repository.OwnerRepository) OwnerService {
	return &ownerService{ownerRepo: ownerRepo}
}

func (s *ownerService) Register(input OwnerRegisterInput) (*model.Owner, error) {
	exists, err := s.ownerRepo.ExistsByLoginID(input.LoginID)
	if err != nil {
		return nil, err
	}
	if exists {
		logger.Warn("Owner registration failed: login ID already exists", map[string]interface{}{
			"login_id": input.LoginID,
		})
		return nil, ErrLoginIDExists
	}

	hashedPassword, err := util.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	owner := &model.Owner{
		LoginID:      input.LoginID,
		PasswordHash: hashedPassword,
		Email:        input.Email,
	}
	if err := s.ownerRepo.Create(owner); err != nil {
		return nil, err
	}

	logger.Info("Owner registered successfully", map[string]interface{}{
		"owner_id": owner.ID,
		"login_id": owner.LoginID,
	})
	return owner, nil
}

func (s *ownerService) Login(loginID, password string) (*model.Owner, error) {
	owner, err := s.ownerRepo.FindByLoginID(loginID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Owner login failed: not found", map[string]interface{}{
				"login_id": loginID,
			})
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !util.VerifyPassword(owner.PasswordHash, password) {
		logger.Warn("Owner login failed: invalid password", map[string]interface{}{
			"login_id": loginID,
		})
		return nil, ErrInvalidCredentials
	}

	logger.Info("Owner logged in", map[string]interface{}{
		"owner_id": owner.ID,
		"login_id": owner.LoginID,
	})
	return owner, nil
}

func (s *ownerService) GetByID(id uint) (*model.Owner, error) {
	owner, err := s.ownerRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOwnerNotFound
		}
		return nil, err
	}
	return owner, nil
}
