package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	apperrors "github.com/ikkim/baedal-backend/internal/errors"
	"github.com/ikkim/baedal-backend/internal/app/service"
)

type RiderController struct {
	riderService service.RiderService
}

func NewRiderController(riderService service.RiderService) *RiderController {
	return &RiderController{riderService: riderService}
}

type RiderRegisterRequest struct {
	LoginID string `json:"rider_id" binding:"required"`
	Phone   string `json:"phone"`
	Vehicle string `json:"vehicle" binding:"required"`
}

// Register 라이더 등록
// POST /riders/register
func (ctrl *RiderController) Register(c *gin.Context) {
	var req RiderRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력값이 올바르지 않습니다")
		return
	}

	rider, err := ctrl.riderService.Register(service.RiderRegisterInput{
		LoginID: req.LoginID,
		Phone:   req.Phone,
		Vehicle: req.Vehicle,
	})
	if err != nil {
		if errors.Is(err, service.ErrLoginIDExists) {
			apperrors.BadRequest(c, apperrors.AuthLoginIDExists, "이미 존재하는 아이디입니다")
			return
		}
		apperrors.InternalError(c, "라이더 등록 중 오류가 발생했습니다")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "라이더 등록이 완료되었습니다",
		"rider":   rider,
	})
}

// GetByID 라이더 조회
// GET /riders/:id
func (ctrl *RiderController) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 라이더 ID입니다")
		return
	}

	rider, err := ctrl.riderService.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrRiderNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "라이더를 찾을 수 없습니다")
			return
		}
		apperrors.InternalError(c, "라이더 조회 중 오류가 발생했습니다")
		return
	}

	c.JSON(http.StatusOK, gin.H{"rider": rider})
}

// GetByLoginID 로그인 아이디로 라이더 조회
// GET /riders/by-user-id/:login_id
func (ctrl *RiderController) GetByLoginID(c *gin.Context) {
	loginID := c.Param("login_id")

	rider, err := ctrl.riderService.GetByLoginID(loginID)
	if err != nil {
		if errors.Is(err, service.ErrRiderNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "라이더를 찾을 수 없습니다")
			return
		}
		apperrors.InternalError(c, "라이더 조회 중 오류가 발생했습니다")
		return
	}

	c.JSON(http.StatusOK, gin.H{"rider": rider})
}
