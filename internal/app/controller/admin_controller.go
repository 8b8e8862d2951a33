package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/ikkim/baedal-backend/internal/errors"
	"github.com/ikkim/baedal-backend/internal/app/service"
	"github.com/ikkim/baedal-backend/internal/middleware"
)

// AdminController 시드/일괄 삭제/초기화 API
type AdminController struct {
	adminService service.AdminService
}

func NewAdminController(adminService service.AdminService) *AdminController {
	return &AdminController{adminService: adminService}
}

// respondSeed 시드/생성 결과 공통 응답
func respondSeed(c *gin.Context, message string, count int, err error) {
	if err != nil {
		if errors.Is(err, service.ErrNoCategories) {
			apperrors.BadRequest(c, apperrors.CategoryNotFound, "카테고리를 먼저 생성해주세요")
			return
		}
		if errors.Is(err, service.ErrNoStores) {
			apperrors.BadRequest(c, apperrors.StoreNotFound, "가게를 먼저 생성해주세요")
			return
		}
		middleware.GetLoggerFromContext(c).Error("Seed operation failed", err, nil)
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "create")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"count":   count,
	})
}

// respondClear 일괄 삭제 결과 공통 응답
func respondClear(c *gin.Context, message string, count int64, err error) {
	if err != nil {
		middleware.GetLoggerFromContext(c).Error("Clear operation failed", err, nil)
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "delete")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"count":   count,
	})
}

// POST /admin/categories/seed
func (ctrl *AdminController) SeedCategories(c *gin.Context) {
	count, err := ctrl.adminService.SeedCategories()
	respondSeed(c, "카테고리 시드가 완료되었습니다", count, err)
}

// POST /admin/users/seed
func (ctrl *AdminController) SeedUsers(c *gin.Context) {
	count, err := ctrl.adminService.SeedUsers()
	respondSeed(c, "사용자 시드가 완료되었습니다", count, err)
}

// POST /admin/stores/seed
func (ctrl *AdminController) SeedStores(c *gin.Context) {
	count, err := ctrl.adminService.SeedStores()
	respondSeed(c, "가게 시드가 완료되었습니다", count, err)
}

// POST /admin/menus/seed
func (ctrl *AdminController) SeedMenus(c *gin.Context) {
	count, err := ctrl.adminService.SeedMenus()
	respondSeed(c, "메뉴 시드가 완료되었습니다", count, err)
}

// POST /admin/coupons/seed
func (ctrl *AdminController) SeedCoupons(c *gin.Context) {
	count, err := ctrl.adminService.SeedCoupons()
	respondSeed(c, "쿠폰 시드가 완료되었습니다", count, err)
}

// POST /admin/categories/create
func (ctrl *AdminController) CreateCategories(c *gin.Context) {
	var records []service.CategoryRecord
	if err := c.ShouldBindJSON(&records); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력값이 올바르지 않습니다")
		return
	}
	count, err := ctrl.adminService.CreateCategories(records)
	respondSeed(c, "카테고리가 생성되었습니다", count, err)
}

// POST /admin/users/create
func (ctrl *AdminController) CreateUsers(c *gin.Context) {
	var records []service.UserRecord
	if err := c.ShouldBindJSON(&records); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력값이 올바르지 않습니다")
		return
	}
	count, err := ctrl.adminService.CreateUsers(records)
	respondSeed(c, "사용자가 생성되었습니다", count, err)
}

// POST /admin/stores/create
func (ctrl *AdminController) CreateStores(c *gin.Context) {
	var records []service.StoreRecord
	if err := c.ShouldBindJSON(&records); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력값이 올바르지 않습니다")
		return
	}
	count, err := ctrl.adminService.CreateStores(records)
	respondSeed(c, "가게가 생성되었습니다", count, err)
}

// POST /admin/menus/create
func (ctrl *AdminController) CreateMenus(c *gin.Context) {
	var records []service.MenuRecord
	if err := c.ShouldBindJSON(&records); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력값이 올바르지 않습니다")
		return
	}
	count, err := ctrl.adminService.CreateMenus(records)
	respondSeed(c, "메뉴가 생성되었습니다", count, err)
}

// POST /admin/coupons/create
func (ctrl *AdminController) CreateCoupons(c *gin.Context) {
	var records []service.CouponRecord
	if err := c.ShouldBindJSON(&records); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력값이 올바르지 않습니다")
		return
	}
	count, err := ctrl.adminService.CreateCoupons(records)
	respondSeed(c, "쿠폰이 생성되었습니다", count, err)
}

// DELETE /admin/categories/clear
func (ctrl *AdminController) ClearCategories(c *gin.Context) {
	count, err := ctrl.adminService.ClearCategories()
	respondClear(c, "카테고리가 모두 삭제되었습니다", count, err)
}

// DELETE /admin/users/clear
func (ctrl *AdminController) ClearUsers(c *gin.Context) {
	count, err := ctrl.adminService.ClearUsers()
	respondClear(c, "사용자가 모두 삭제되었습니다", count, err)
}

// DELETE /admin/stores/clear
func (ctrl *AdminController) ClearStores(c *gin.Context) {
	count, err := ctrl.adminService.ClearStores()
	respondClear(c, "가게가 모두 삭제되었습니다", count, err)
}

// DELETE /admin/menus/clear
func (ctrl *AdminController) ClearMenus(c *gin.Context) {
	count, err := ctrl.adminService.ClearMenus()
	respondClear(c, "메뉴가 모두 삭제되었습니다", count, err)
}

// DELETE /admin/coupons/clear
func (ctrl *AdminController) ClearCoupons(c *gin.Context) {
	count, err := ctrl.adminService.ClearCoupons()
	respondClear(c, "쿠폰이 모두 삭제되었습니다", count, err)
}

// Reset 전체 초기화. 모든 테이블을 비운다.
// POST /admin/reset
func (ctrl *AdminController) Reset(c *gin.Context) {
	count, err := ctrl.adminService.Reset()
	respondClear(c, "데이터베이스가 초기화되었습니다", count, err)
}

// GET /admin/categories
func (ctrl *AdminController) ListCategories(c *gin.Context) {
	categories, err := ctrl.adminService.ListCategories()
	if err != nil {
		apperrors.InternalError(c, "카테고리 조회 중 오류가 발생했습니다")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": categories,
		"count":      len(categories),
	})
}

// GET /admin/stores/list
func (ctrl *AdminController) ListStores(c *gin.Context) {
	stores, err := ctrl.adminService.ListStores()
	if err != nil {
		apperrors.InternalError(c, "가게 조회 중 오류가 발생했습니다")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stores": stores,
		"count":  len(stores),
	})
}
