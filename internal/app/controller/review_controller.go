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

type ReviewController struct {
	reviewService service.ReviewService
}

func NewReviewController(reviewService service.ReviewService) *ReviewController {
	return &ReviewController{reviewService: reviewService}
}

type ReviewCreateRequest struct {
	StoreID uint   `json:"store_id" binding:"required"`
	OrderID *uint  `json:"order_id"`
	Rating  int    `json:"rating" binding:"required"`
	Content string `json:"content"`
}

// Create 리뷰 등록
// POST /reviews
func (ctrl *ReviewController) Create(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	user, _ := middleware.GetCurrentUser(c)

	var req ReviewCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력값이 올바르지 않습니다")
		return
	}

	review, err := ctrl.reviewService.Create(user, service.ReviewCreateInput{
		StoreID: req.StoreID,
		OrderID: req.OrderID,
		Rating:  req.Rating,
		Content: req.Content,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRating):
			apperrors.BadRequest(c, apperrors.ReviewInvalidRating, "평점은 1~5 사이여야 합니다")
		case errors.Is(err, service.ErrStoreNotFound):
			apperrors.NotFound(c, apperrors.StoreNotFound, "가게를 찾을 수 없습니다")
		case errors.Is(err, service.ErrOrderNotFound):
			apperrors.NotFound(c, apperrors.OrderNotFound, "주문을 찾을 수 없습니다")
		case errors.Is(err, service.ErrReviewAlreadyExists):
			apperrors.BadRequest(c, apperrors.ReviewAlreadyExists, "이미 이 주문에 리뷰를 작성했습니다")
		default:
			log.Error("Failed to create review", err, map[string]interface{}{
				"user_id":  user.ID,
				"store_id": req.StoreID,
			})
			apperrors.InternalError(c, "리뷰 등록 중 오류가 발생했습니다")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "리뷰가 등록되었습니다",
		"review":  review,
	})
}

// ListByStore 가게 리뷰 목록 (최신순, 작성자 이름 포함)
// GET /reviews/store/:store_id
func (ctrl *ReviewController) ListByStore(c *gin.Context) {
	storeID, err := strconv.ParseUint(c.Param("store_id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 가게 ID입니다")
		return
	}

	reviews, err := ctrl.reviewService.ListByStore(uint(storeID))
	if err != nil {
		if errors.Is(err, service.ErrStoreNotFound) {
			apperrors.NotFound(c, apperrors.StoreNotFound, "가게를 찾을 수 없습니다")
			return
		}
		apperrors.InternalError(c, "리뷰 조회 중 오류가 발생했습니다")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reviews": reviews,
		"count":   len(reviews),
	})
}

// Delete 리뷰 삭제 (가게 소유자만)
// DELETE /reviews/:review_id
func (ctrl *ReviewController) Delete(c *gin.Context) {
	user, _ := middleware.GetCurrentUser(c)

	reviewID, err := strconv.ParseUint(c.Param("review_id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 리뷰 ID입니다")
		return
	}

	if err := ctrl.reviewService.Delete(user, uint(reviewID)); err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			apperrors.NotFound(c, apperrors.ReviewNotFound, "리뷰를 찾을 수 없습니다")
			return
		}
		respondStoreError(c, err, "리뷰 삭제 중 오류가 발생했습니다")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "리뷰가 삭제되었습니다"})
}
