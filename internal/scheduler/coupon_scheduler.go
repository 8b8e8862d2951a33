package scheduler

import (
	"time"

	"github.com/ikkim/baedal-backend/internal/app/repository"
	"github.com/ikkim/baedal-backend/pkg/logger"
	"github.com/robfig/cron/v3"
)

// CouponScheduler 쿠폰 만료 자동 처리 스케줄러
type CouponScheduler struct {
	cron       *cron.Cron
	couponRepo repository.CouponRepository
}

// NewCouponScheduler 쿠폰 만료 스케줄러 생성
func NewCouponScheduler(couponRepo repository.CouponRepository) *CouponScheduler {
	return &CouponScheduler{
		cron:       cron.New(),
		couponRepo: couponRepo,
	}
}

// Start 스케줄러 시작
func (s *CouponScheduler) Start() error {
	// 매일 자정에 발행 후 유효기간이 지난 쿠폰을 만료 처리
	// cron 표현식: "0 0 * * *" = 매일 0시 0분
	_, err := s.cron.AddFunc("0 0 * * *", func() {
		logger.Info("Starting scheduled coupon expiry sweep", nil)

		expired, err := s.couponRepo.SoftDeleteExpired(time.Now())
		if err != nil {
			logger.Error("Failed to expire coupons from scheduler", err)
			return
		}

		logger.Info("Coupon expiry sweep completed", map[string]interface{}{
			"expired": expired,
		})
	})

	if err != nil {
		logger.Error("Failed to add cron job for coupon expiry", err)
		return err
	}

	s.cron.Start()
	logger.Info("Coupon scheduler started successfully (daily at midnight)", nil)

	return nil
}

// Stop 스케줄러 중지
func (s *CouponScheduler) Stop() {
	logger.Info("Stopping coupon scheduler...", nil)
	s.cron.Stop()
	logger.Info("Coupon scheduler stopped", nil)
}
