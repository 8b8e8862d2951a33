package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/baedal-backend/config"
	apperrors "github.com/ikkim/baedal-backend/internal/errors"
	"github.com/ikkim/baedal-backend/internal/app/service"
	"github.com/ikkim/baedal-backend/internal/middleware"
	"github.com/ikkim/baedal-backend/pkg/session"
)

type OwnerController struct {
	ownerService service.OwnerService
	session      sessionWriter
}

func NewOwnerController(ownerService service.OwnerService, store session.Store, cfg *config.SessionConfig) *OwnerController {
	return &OwnerController{
		ownerService: ownerService,
		session:      newSessionWriter(store, cfg),
	}
}

type OwnerRegisterRequest struct {
	LoginID  string `json:"owner_id" binding:"required"`
	Password string `json:"password" binding:"required,min=4"`
	Email    string `json:"email" binding:"required,email"`
}

type OwnerLoginRequest struct {
	LoginID  string `json:"owner_id" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register 사장 회원가입
// POST /owners/register
func (ctrl *OwnerController) Register(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req OwnerRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력값이 올바르지 않습니다")
		return
	}

	owner, err := ctrl.ownerService.Register(service.OwnerRegisterInput{
		LoginID:  req.LoginID,
		Password: req.Password,
		Email:    req.Email,
	})
	if err != nil {
		if errors.Is(err, service.ErrLoginIDExists) {
			apperrors.BadRequest(c, apperrors.AuthLoginIDExists, "이미 존재하는 아이디입니다")
			return
		}
		log.Error("Failed to register owner", err, map[string]interface{}{
			"login_id": req.LoginID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "register owner")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "사장님 회원가입이 완료되었습니다",
		"owner":   owner,
	})
}

// Login 사장 로그인. 세션 쿠키의 사장 슬롯을 채운다. 같은 브라우저에서
// 사용자 로그인과 공존할 수 있다.
// POST /owners/login
func (ctrl *OwnerController) Login(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req OwnerLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "아이디와 비밀번호를 입력해주세요")
		return
	}

	owner, err := ctrl.ownerService.Login(req.LoginID, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			apperrors.RespondWithError(c, http.StatusUnauthorized,
				apperrors.AuthInvalidCredentials, "아이디 또는 비밀번호가 올바르지 않습니다")
			return
		}
		log.Error("Failed to login owner", err, map[string]interface{}{
			"login_id": req.LoginID,
		})
		apperrors.InternalError(c, "로그인 중 오류가 발생했습니다")
		return
	}

	if err := ctrl.session.mutate(c, func(sess *session.Session) {
		sess.OwnerID = &owner.ID
	}); err != nil {
		log.Error("Failed to save session", err, map[string]interface{}{
			"owner_id": owner.ID,
		})
		apperrors.InternalError(c, "로그인 중 오류가 발생했습니다")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "로그인되었습니다",
		"owner":   owner,
	})
}

// Logout 세션의 사장 슬롯을 비운다
// POST /owners/logout
func (ctrl *OwnerController) Logout(c *gin.Context) {
	if err := ctrl.session.clear(c, func(sess *session.Session) {
		sess.OwnerID = nil
	}); err != nil {
		middleware.GetLoggerFromContext(c).Error("Failed to clear session", err, nil)
		apperrors.InternalError(c, "로그아웃 중 오류가 발생했습니다")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "로그아웃되었습니다"})
}

// Me 로그인한 사장 정보
// GET /owners/me
func (ctrl *OwnerController) Me(c *gin.Context) {
	owner, _ := middleware.GetCurrentOwner(c)
	c.JSON(http.StatusOK, gin.H{"owner": owner})
}

// GetByID 사장 조회
// GET /owners/:id
func (ctrl *OwnerController) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 사장 ID입니다")
		return
	}

	owner, err := ctrl.ownerService.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrOwnerNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "사장님 정보를 찾을 수 없습니다")
			return
		}
		apperrors.InternalError(c, "사장 조회 중 오류가 발생했습니다")
		return
	}

	c.JSON(http.StatusOK, gin.H{"owner": owner})
}
