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

type FavoriteController struct {
	favoriteService service.FavoriteService
}

func NewFavoriteController(favoriteService service.FavoriteService) *FavoriteController {
	return &FavoriteController{favoriteService: favoriteService}
}

type FavoriteAddRequest struct {
	StoreID uint `json:"store_id" binding:"required"`
}

// Add 가게 찜하기
// POST /favorites
func (ctrl *FavoriteController) Add(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	user, _ := middleware.GetCurrentUser(c)

	var req FavoriteAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "가게 ID를 입력해주세요")
		return
	}

	favorite, err := ctrl.favoriteService.Add(user.ID, req.StoreID)
	if err != nil {
		if errors.Is(err, service.ErrStoreNotFound) {
			apperrors.NotFound(c, apperrors.StoreNotFound, "가게를 찾을 수 없습니다")
			return
		}
		if errors.Is(err, service.ErrFavoriteExists) {
			apperrors.BadRequest(c, apperrors.FavoriteAlreadyExists, "이미 찜한 가게입니다")
			return
		}
		log.Error("Failed to add favorite", err, map[string]interface{}{
			"user_id":  user.ID,
			"store_id": req.StoreID,
		})
		apperrors.InternalError(c, "찜하기 중 오류가 발생했습니다")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "가게를 찜했습니다",
		"favorite": favorite,
	})
}

// Remove 찜 해제
// DELETE /favorites/:store_id
func (ctrl *FavoriteController) Remove(c *gin.Context) {
	user, _ := middleware.GetCurrentUser(c)

	storeID, err := strconv.ParseUint(c.Param("store_id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 가게 ID입니다")
		return
	}

	if err := ctrl.favoriteService.Remove(user.ID, uint(storeID)); err != nil {
		if errors.Is(err, service.ErrFavoriteNotFound) {
			apperrors.NotFound(c, apperrors.FavoriteNotFound, "찜한 가게가 아닙니다")
			return
		}
		apperrors.InternalError(c, "찜 해제 중 오류가 발생했습니다")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "찜을 해제했습니다"})
}

// List 찜한 가게 목록
// GET /favorites
func (ctrl *FavoriteController) List(c *gin.Context) {
	user, _ := middleware.GetCurrentUser(c)

	favorites, err := ctrl.favoriteService.List(user.ID)
	if err != nil {
		middleware.GetLoggerFromContext(c).Error("Failed to list favorites", err, map[string]interface{}{
			"user_id": user.ID,
		})
		apperrors.InternalError(c, "찜 목록 조회 중 오류가 발생했습니다")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"favorites": favorites,
		"count":     len(favorites),
	})
}
