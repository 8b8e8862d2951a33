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

type OrderController struct {
	orderService service.OrderService
}

func NewOrderController(orderService service.OrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

type OrderCreateRequest struct {
	StoreID    uint   `json:"store_id" binding:"required"`
	Content    string `json:"order" binding:"required"`
	TotalPrice int    `json:"total_price" binding:"required,gt=0"`
}

// List 내 주문 목록 (리뷰 작성 여부 포함, 최신순)
// GET /customer/orders
func (ctrl *OrderController) List(c *gin.Context) {
	user, _ := middleware.GetCurrentUser(c)

	orders, err := ctrl.orderService.ListByUser(user.ID)
	if err != nil {
		middleware.GetLoggerFromContext(c).Error("Failed to list orders", err, map[string]interface{}{
			"user_id": user.ID,
		})
		apperrors.InternalError(c, "주문 조회 중 오류가 발생했습니다")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"count":  len(orders),
	})
}

// Waiting 라이더 배정 대기 중인 주문 목록 (최신순)
// GET /customer/orders/waiting
func (ctrl *OrderController) Waiting(c *gin.Context) {
	orders, err := ctrl.orderService.ListWaiting()
	if err != nil {
		apperrors.InternalError(c, "대기 주문 조회 중 오류가 발생했습니다")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"count":  len(orders),
	})
}

// Create 주문 생성. 라이더는 미배정 상태로 시작한다.
// POST /customer/orders
func (ctrl *OrderController) Create(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	user, _ := middleware.GetCurrentUser(c)

	var req OrderCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid order create request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력값이 올바르지 않습니다")
		return
	}

	order, err := ctrl.orderService.Create(user.ID, req.StoreID, req.Content, req.TotalPrice)
	if err != nil {
		if errors.Is(err, service.ErrStoreNotFound) {
			apperrors.NotFound(c, apperrors.StoreNotFound, "가게를 찾을 수 없습니다")
			return
		}
		log.Error("Failed to create order", err, map[string]interface{}{
			"user_id":  user.ID,
			"store_id": req.StoreID,
		})
		apperrors.InternalError(c, "주문 생성 중 오류가 발생했습니다")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "주문이 접수되었습니다",
		"order":   order,
	})
}

// Accept 주문 수락. 동시에 여러 명이 수락해도 한 명만 성공한다.
// POST /customer/orders/:id/accept
func (ctrl *OrderController) Accept(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	user, _ := middleware.GetCurrentUser(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 주문 ID입니다")
		return
	}

	rider, err := ctrl.orderService.Accept(user, uint(id))
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			apperrors.NotFound(c, apperrors.OrderNotFound, "주문을 찾을 수 없습니다")
			return
		}
		if errors.Is(err, service.ErrOrderAlreadyAccepted) {
			apperrors.BadRequest(c, apperrors.OrderAlreadyAccepted, "이미 수락된 주문입니다")
			return
		}
		log.Error("Failed to accept order", err, map[string]interface{}{
			"order_id": id,
			"user_id":  user.ID,
		})
		apperrors.InternalError(c, "주문 수락 중 오류가 발생했습니다")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "주문을 수락했습니다",
		"rider":   rider,
	})
}
