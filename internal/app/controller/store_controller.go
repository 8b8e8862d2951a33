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

type StoreController struct {
	storeService service.StoreService
}

func NewStoreController(storeService service.StoreService) *StoreController {
	return &StoreController{storeService: storeService}
}

type StoreRegisterRequest struct {
	Name          string `json:"store_name" binding:"required"`
	CategoryID    uint   `json:"category_id" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	MinPrice      string `json:"minprice" binding:"required"`
	OperationTime string `json:"operationTime" binding:"required"`
	ClosedDay     string `json:"closedDay" binding:"required"`
	Information   string `json:"information"`
	PaymentIDs    []uint `json:"payment_ids"`
}

type StoreUpdateRequest struct {
	Name          *string `json:"store_name"`
	CategoryID    *uint   `json:"category_id"`
	Phone         *string `json:"phone"`
	MinPrice      *string `json:"minprice"`
	OperationTime *string `json:"operationTime"`
	ClosedDay     *string `json:"closedDay"`
	Information   *string `json:"information"`
	PaymentIDs    []uint  `json:"payment_ids"`
}

// respondStoreError 가게 관련 공통 에러 매핑
func respondStoreError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrStoreNotFound):
		apperrors.NotFound(c, apperrors.StoreNotFound, "가게를 찾을 수 없습니다")
	case errors.Is(err, service.ErrNotStoreOwner):
		apperrors.RespondWithError(c, http.StatusForbidden,
			apperrors.AuthzOwnerOnly, "가게 소유자만 가능합니다")
	case errors.Is(err, service.ErrCategoryNotFound):
		apperrors.NotFound(c, apperrors.CategoryNotFound, "카테고리를 찾을 수 없습니다")
	case errors.Is(err, service.ErrPaymentNotFound):
		apperrors.NotFound(c, apperrors.PaymentNotFound, "지불방식을 찾을 수 없습니다")
	default:
		apperrors.InternalError(c, fallback)
	}
}

// Register 가게 등록. 사용자 세션으로 호출하며, 같은 아이디의 사장
// 계정이 없으면 자동 생성된다.
// POST /stores/register
func (ctrl *StoreController) Register(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	user, _ := middleware.GetCurrentUser(c)

	var req StoreRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid store register request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력값이 올바르지 않습니다")
		return
	}

	store, err := ctrl.storeService.Register(user, service.StoreRegisterInput{
		Name:          req.Name,
		CategoryID:    req.CategoryID,
		Phone:         req.Phone,
		MinPrice:      req.MinPrice,
		OperationTime: req.OperationTime,
		ClosedDay:     req.ClosedDay,
		Information:   req.Information,
		PaymentIDs:    req.PaymentIDs,
	})
	if err != nil {
		respondStoreError(c, err, "가게 등록 중 오류가 발생했습니다")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "가게가 등록되었습니다",
		"store":   store,
	})
}

// Detail 가게 상세 (실시간 리뷰 수, 평균 평점, 주문 수 포함)
// GET /stores/:id
func (ctrl *StoreController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 가게 ID입니다")
		return
	}

	detail, err := ctrl.storeService.Detail(uint(id))
	if err != nil {
		respondStoreError(c, err, "가게 조회 중 오류가 발생했습니다")
		return
	}

	c.JSON(http.StatusOK, detail)
}

// Update 가게 수정 (소유자만)
// PUT /stores/:id
func (ctrl *StoreController) Update(c *gin.Context) {
	user, _ := middleware.GetCurrentUser(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 가게 ID입니다")
		return
	}

	var req StoreUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력값이 올바르지 않습니다")
		return
	}

	store, err := ctrl.storeService.Update(user, uint(id), service.StoreUpdateInput{
		Name:          req.Name,
		CategoryID:    req.CategoryID,
		Phone:         req.Phone,
		MinPrice:      req.MinPrice,
		OperationTime: req.OperationTime,
		ClosedDay:     req.ClosedDay,
		Information:   req.Information,
		PaymentIDs:    req.PaymentIDs,
	})
	if err != nil {
		respondStoreError(c, err, "가게 수정 중 오류가 발생했습니다")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "가게 정보가 수정되었습니다",
		"store":   store,
	})
}

// ByCategory 카테고리별 가게 목록
// GET /stores/category/:id
func (ctrl *StoreController) ByCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 카테고리 ID입니다")
		return
	}

	stores, err := ctrl.storeService.ListByCategory(uint(id), c.Query("sort"))
	if err != nil {
		respondStoreError(c, err, "가게 목록 조회 중 오류가 발생했습니다")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stores": stores,
		"count":  len(stores),
	})
}

// ByOwner 로그인 아이디로 사장의 가게 목록 조회
// GET /stores/owner/:user_id
func (ctrl *StoreController) ByOwner(c *gin.Context) {
	loginID := c.Param("user_id")

	stores, err := ctrl.storeService.ListByOwnerLoginID(loginID)
	if err != nil {
		if errors.Is(err, service.ErrOwnerNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "사장님 정보를 찾을 수 없습니다")
			return
		}
		apperrors.InternalError(c, "가게 목록 조회 중 오류가 발생했습니다")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stores": stores,
		"count":  len(stores),
	})
}
