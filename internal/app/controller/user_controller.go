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

type UserController struct {
	userService service.UserService
	session     sessionWriter
}

func NewUserController(userService service.UserService, store session.Store, cfg *config.SessionConfig) *UserController {
	return &UserController{
		userService: userService,
		session:     newSessionWriter(store, cfg),
	}
}

type CheckIDRequest struct {
	LoginID string `json:"user_id" binding:"required"`
}

type UserRegisterRequest struct {
	LoginID  string `json:"user_id" binding:"required"`
	Password string `json:"password" binding:"required,min=4"`
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Address  string `json:"address" binding:"required"`
}

type LoginRequest struct {
	LoginID  string `json:"user_id" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ModifyAddressRequest struct {
	Address string `json:"address" binding:"required"`
}

// CheckID 아이디 사용 가능 여부 확인
// POST /users/check-id
func (ctrl *UserController) CheckID(c *gin.Context) {
	var req CheckIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "아이디를 입력해주세요")
		return
	}

	available, err := ctrl.userService.CheckLoginID(req.LoginID)
	if err != nil {
		apperrors.InternalError(c, "아이디 확인 중 오류가 발생했습니다")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id":   req.LoginID,
		"available": available,
	})
}

// Register 회원가입
// POST /users/register
func (ctrl *UserController) Register(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req UserRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid user register request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력값이 올바르지 않습니다")
		return
	}

	user, err := ctrl.userService.Register(service.UserRegisterInput{
		LoginID:  req.LoginID,
		Password: req.Password,
		Email:    req.Email,
		Name:     req.Name,
		Address:  req.Address,
	})
	if err != nil {
		if errors.Is(err, service.ErrLoginIDExists) {
			apperrors.BadRequest(c, apperrors.AuthLoginIDExists, "이미 존재하는 아이디입니다")
			return
		}
		log.Error("Failed to register user", err, map[string]interface{}{
			"login_id": req.LoginID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "register user")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "회원가입이 완료되었습니다",
		"user":    user,
	})
}

// Login 로그인. 세션 쿠키의 사용자 슬롯을 채운다.
// POST /users/login
func (ctrl *UserController) Login(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "아이디와 비밀번호를 입력해주세요")
		return
	}

	user, err := ctrl.userService.Login(req.LoginID, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			apperrors.RespondWithError(c, http.StatusUnauthorized,
				apperrors.AuthInvalidCredentials, "아이디 또는 비밀번호가 올바르지 않습니다")
			return
		}
		log.Error("Failed to login user", err, map[string]interface{}{
			"login_id": req.LoginID,
		})
		apperrors.InternalError(c, "로그인 중 오류가 발생했습니다")
		return
	}

	if err := ctrl.session.mutate(c, func(sess *session.Session) {
		sess.UserID = &user.ID
	}); err != nil {
		log.Error("Failed to save session", err, map[string]interface{}{
			"user_id": user.ID,
		})
		apperrors.InternalError(c, "로그인 중 오류가 발생했습니다")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "로그인되었습니다",
		"user":    user,
	})
}

// Logout 세션의 사용자 슬롯을 비운다. 사장 로그인은 유지된다.
// POST /users/logout
func (ctrl *UserController) Logout(c *gin.Context) {
	if err := ctrl.session.clear(c, func(sess *session.Session) {
		sess.UserID = nil
	}); err != nil {
		middleware.GetLoggerFromContext(c).Error("Failed to clear session", err, nil)
		apperrors.InternalError(c, "로그아웃 중 오류가 발생했습니다")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "로그아웃되었습니다"})
}

// Me 로그인한 사용자 정보
// GET /users/me
func (ctrl *UserController) Me(c *gin.Context) {
	user, _ := middleware.GetCurrentUser(c)
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// GetByID 사용자 조회
// GET /users/:id
func (ctrl *UserController) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 사용자 ID입니다")
		return
	}

	user, err := ctrl.userService.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "사용자를 찾을 수 없습니다")
			return
		}
		apperrors.InternalError(c, "사용자 조회 중 오류가 발생했습니다")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// ModifyAddress 배달 주소 변경
// POST /users/modify/address
func (ctrl *UserController) ModifyAddress(c *gin.Context) {
	currentUser, _ := middleware.GetCurrentUser(c)

	var req ModifyAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "주소를 입력해주세요")
		return
	}

	user, err := ctrl.userService.UpdateAddress(currentUser.ID, req.Address)
	if err != nil {
		middleware.GetLoggerFromContext(c).Error("Failed to update address", err, map[string]interface{}{
			"user_id": currentUser.ID,
		})
		apperrors.InternalError(c, "주소 변경 중 오류가 발생했습니다")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "주소가 변경되었습니다",
		"user":    user,
	})
}
