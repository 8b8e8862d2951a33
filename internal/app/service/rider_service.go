package service

import (
	"errors"

	"github.com/ikkim/baedal-backend/internal/app/model"
	"github.com/ikkim/baedal-backend/internal/app/repository"
	"github.com/ikkim/baedal-backend/pkg/logger"
	"gorm.io/gorm"
)

var ErrRiderNotFound = errors.New("라이더를 찾을 수 없습니다")

type RiderRegisterInput struct {
	LoginID string
	Phone   string
	Vehicle string
}

type RiderService interface {
	Register(input RiderRegisterInput) (*model.Rider, error)
	GetByID(id uint) (*model.Rider, error)
	GetByLoginID(loginID string) (*model.Rider, error)
}

type riderService struct {
	riderRepo repository.RiderRepository
}

func NewRiderService(riderRepo repository.RiderRepository) RiderService {
	return &riderService{riderRepo: riderRepo}
}

func (s *riderService) Register(input RiderRegisterInput) (*model.Rider, error) {
	exists, err := s.riderRepo.ExistsByLoginID(input.LoginID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrLoginIDExists
	}

	rider := &model.Rider{
		LoginID: input.LoginID,
		Phone:   input.Phone,
		Vehicle: input.Vehicle,
	}
	if err := s.riderRepo.Create(rider); err != nil {
		return nil, err
	}

	logger.Info("Rider registered successfully", map[string]interface{}{
		"rider_id": rider.ID,
		"login_id": rider.LoginID,
	})
	return rider, nil
}

func (s *riderService) GetByID(id uint) (*model.Rider, error) {
	rider, err := s.riderRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRiderNotFound
		}
		return nil, err
	}
	return rider, nil
}

func (s *riderService) GetByLoginID(loginID string) (*model.Rider, error) {
	rider, err := s.riderRepo.FindByLoginID(loginID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRiderNotFound
		}
		return nil, err
	}
	return rider, nil
}
