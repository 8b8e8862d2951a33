package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	apperrors "github.com/ikkim/baedal-backend/internal/errors"
	"github.com/ikkim/baedal-backend/internal/app/service"
	"github.com/ikkim/baedal-backend/internal/middleware"
)

type CouponController struct {
	couponService service.CouponService
}

func NewCouponController(couponService service.CouponService) *CouponController {
	return &CouponController{couponService: couponService}
}

type CouponCreateRequest struct {
	Discount int  `json:"discount" binding:"required,gt=0"`
	Period   *int `json:"period"`
}

// Create 쿠폰 발행 (가게 소유자만)
// POST /coupons/store/:store_id
func (ctrl *CouponController) Create(c *gin.Context) {
	user, _ := middleware.GetCurrentUser(c)

	storeID, err := strconv.ParseUint(c.Param("store_id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 가게 ID입니다")
		return
	}

	var req CouponCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "할인 금액을 입력해주세요")
		return
	}

	coupon, err := ctrl.couponService.Create(user, uint(storeID), service.CouponCreateInput{
		Discount: req.Discount,
		Period:   req.Period,
	})
	if err != nil {
		respondStoreError(c, err, "쿠폰 발행 중 오류가 발생했습니다")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "쿠폰이 발행되었습니다",
		"coupon":  coupon,
	})
}

// ListActive 가게의 활성 쿠폰 목록
// GET /coupons/store/:store_id
func (ctrl *CouponController) ListActive(c *gin.Context) {
	storeID, err := strconv.ParseUint(c.Param("store_id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 가게 ID입니다")
		return
	}

	coupons, err := ctrl.couponService.ListActive(uint(storeID))
	if err != nil {
		if errors.Is(err, service.ErrStoreNotFound) {
			apperrors.NotFound(c, apperrors.StoreNotFound, "가게를 찾을 수 없습니다")
			return
		}
		apperrors.InternalError(c, "쿠폰 조회 중 오류가 발생했습니다")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"coupons": coupons,
		"count":   len(coupons),
	})
}

// Delete 쿠폰 삭제 (가게 소유자만, 소프트 삭제)
// DELETE /coupons/store/:store_id/:coupon_id
func (ctrl *CouponController) Delete(c *gin.Context) {
	user, _ := middleware.GetCurrentUser(c)

	storeID, err := strconv.ParseUint(c.Param("store_id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 가게 ID입니다")
		return
	}
	couponID, err := strconv.ParseUint(c.Param("coupon_id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 쿠폰 ID입니다")
		return
	}

	if err := ctrl.couponService.Delete(user, uint(storeID), uint(couponID)); err != nil {
		if errors.Is(err, service.ErrCouponNotFound) {
			apperrors.NotFound(c, apperrors.CouponNotFound, "쿠폰을 찾을 수 없습니다")
			return
		}
		respondStoreError(c, err, "쿠폰 삭제 중 오류가 발생했습니다")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "쿠폰이 삭제되었습니다"})
}
