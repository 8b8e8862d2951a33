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

// PaymentController 사장 세션으로 가게 지불방식을 관리한다
type PaymentController struct {
	paymentService service.PaymentService
}

func NewPaymentController(paymentService service.PaymentService) *PaymentController {
	return &PaymentController{paymentService: paymentService}
}

// PaymentAttachRequest payment_id 또는 payment 이름 중 하나는 필수
type PaymentAttachRequest struct {
	PaymentID *uint  `json:"payment_id"`
	Name      string `json:"payment"`
}

// Attach 가게에 지불방식 연결
// POST /payments/store/:store_id
func (ctrl *PaymentController) Attach(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	owner, _ := middleware.GetCurrentOwner(c)

	storeID, err := strconv.ParseUint(c.Param("store_id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 가게 ID입니다")
		return
	}

	var req PaymentAttachRequest
	if err := c.ShouldBindJSON(&req); err != nil || (req.PaymentID == nil && req.Name == "") {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "지불방식 ID 또는 이름을 입력해주세요")
		return
	}

	payment, err := ctrl.paymentService.AttachToStore(owner, uint(storeID), service.PaymentAttachInput{
		PaymentID: req.PaymentID,
		Name:      req.Name,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStoreNotFound):
			apperrors.NotFound(c, apperrors.StoreNotFound, "가게를 찾을 수 없습니다")
		case errors.Is(err, service.ErrNotStoreOwner):
			apperrors.RespondWithError(c, http.StatusForbidden,
				apperrors.AuthzOwnerOnly, "가게 소유자만 가능합니다")
		case errors.Is(err, service.ErrPaymentNotFound):
			apperrors.NotFound(c, apperrors.PaymentNotFound, "지불방식을 찾을 수 없습니다")
		case errors.Is(err, service.ErrPaymentAlreadyOffered):
			apperrors.BadRequest(c, apperrors.ResourceAlreadyExists, "이미 제공 중인 지불방식입니다")
		default:
			log.Error("Failed to attach payment", err, map[string]interface{}{
				"store_id": storeID,
			})
			apperrors.InternalError(c, "지불방식 연결 중 오류가 발생했습니다")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "지불방식이 추가되었습니다",
		"payment": payment,
	})
}

// Detach 가게에서 지불방식 제거
// DELETE /payments/store/:store_id/:payment_id
func (ctrl *PaymentController) Detach(c *gin.Context) {
	owner, _ := middleware.GetCurrentOwner(c)

	storeID, err := strconv.ParseUint(c.Param("store_id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 가게 ID입니다")
		return
	}
	paymentID, err := strconv.ParseUint(c.Param("payment_id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 지불방식 ID입니다")
		return
	}

	if err := ctrl.paymentService.DetachFromStore(owner, uint(storeID), uint(paymentID)); err != nil {
		switch {
		case errors.Is(err, service.ErrStoreNotFound):
			apperrors.NotFound(c, apperrors.StoreNotFound, "가게를 찾을 수 없습니다")
		case errors.Is(err, service.ErrNotStoreOwner):
			apperrors.RespondWithError(c, http.StatusForbidden,
				apperrors.AuthzOwnerOnly, "가게 소유자만 가능합니다")
		case errors.Is(err, service.ErrPaymentNotOffered):
			apperrors.NotFound(c, apperrors.PaymentNotFound, "제공하지 않는 지불방식입니다")
		default:
			apperrors.InternalError(c, "지불방식 제거 중 오류가 발생했습니다")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "지불방식이 제거되었습니다"})
}

// ListForStore 가게의 지불방식 목록
// GET /payments/store/:store_id
func (ctrl *PaymentController) ListForStore(c *gin.Context) {
	storeID, err := strconv.ParseUint(c.Param("store_id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 가게 ID입니다")
		return
	}

	payments, err := ctrl.paymentService.ListForStore(uint(storeID))
	if err != nil {
		if errors.Is(err, service.ErrStoreNotFound) {
			apperrors.NotFound(c, apperrors.StoreNotFound, "가게를 찾을 수 없습니다")
			return
		}
		apperrors.InternalError(c, "지불방식 조회 중 오류가 발생했습니다")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"payments": payments,
		"count":    len(payments),
	})
}
