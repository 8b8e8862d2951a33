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

// CustomerController 고객 화면용 조회/메뉴 API 묶음
type CustomerController struct {
	storeService   service.StoreService
	menuService    service.MenuService
	paymentService service.PaymentService
	couponService  service.CouponService
}

func NewCustomerController(
	storeService service.StoreService,
	menuService service.MenuService,
	paymentService service.PaymentService,
	couponService service.CouponService,
) *CustomerController {
	return &CustomerController{
		storeService:   storeService,
		menuService:    menuService,
		paymentService: paymentService,
		couponService:  couponService,
	}
}

type MenuCreateRequest struct {
	Name  string `json:"menu" binding:"required"`
	Price int    `json:"price" binding:"required,gt=0"`
}

// Categories 전체 카테고리 목록
// GET /customer/categories
func (ctrl *CustomerController) Categories(c *gin.Context) {
	categories, err := ctrl.storeService.ListCategories()
	if err != nil {
		apperrors.InternalError(c, "카테고리 조회 중 오류가 발생했습니다")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": categories,
		"count":      len(categories),
	})
}

// PaymentMethods 전체 지불방식 목록
// GET /customer/payment-methods
func (ctrl *CustomerController) PaymentMethods(c *gin.Context) {
	payments, err := ctrl.paymentService.ListAll()
	if err != nil {
		apperrors.InternalError(c, "지불방식 조회 중 오류가 발생했습니다")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"payments": payments,
		"count":    len(payments),
	})
}

// StoresByCategory 카테고리별 가게 목록 (정렬: name|review|rating|order)
// GET /customer/categories/:id/stores
func (ctrl *CustomerController) StoresByCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 카테고리 ID입니다")
		return
	}

	stores, err := ctrl.storeService.ListByCategory(uint(id), c.Query("sort"))
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			apperrors.NotFound(c, apperrors.CategoryNotFound, "카테고리를 찾을 수 없습니다")
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

// StoreMenus 가게 메뉴 목록
// GET /customer/stores/:id/menus
func (ctrl *CustomerController) StoreMenus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 가게 ID입니다")
		return
	}

	menus, err := ctrl.menuService.ListByStore(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrStoreNotFound) {
			apperrors.NotFound(c, apperrors.StoreNotFound, "가게를 찾을 수 없습니다")
			return
		}
		apperrors.InternalError(c, "메뉴 조회 중 오류가 발생했습니다")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"menus": menus,
		"count": len(menus),
	})
}

// CreateMenu 메뉴 등록 (가게 소유자만)
// POST /customer/stores/:id/menus
func (ctrl *CustomerController) CreateMenu(c *gin.Context) {
	user, _ := middleware.GetCurrentUser(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 가게 ID입니다")
		return
	}

	var req MenuCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "메뉴 이름과 가격을 입력해주세요")
		return
	}

	menu, err := ctrl.menuService.Create(user, uint(id), req.Name, req.Price)
	if err != nil {
		respondStoreError(c, err, "메뉴 등록 중 오류가 발생했습니다")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "메뉴가 등록되었습니다",
		"menu":    menu,
	})
}

// DeleteMenu 메뉴 삭제 (가게 소유자만)
// DELETE /customer/stores/:id/menus/:menu_id
func (ctrl *CustomerController) DeleteMenu(c *gin.Context) {
	user, _ := middleware.GetCurrentUser(c)

	storeID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 가게 ID입니다")
		return
	}
	menuID, err := strconv.ParseUint(c.Param("menu_id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 메뉴 ID입니다")
		return
	}

	if err := ctrl.menuService.Delete(user, uint(storeID), uint(menuID)); err != nil {
		if errors.Is(err, service.ErrMenuNotFound) {
			apperrors.NotFound(c, apperrors.MenuNotFound, "메뉴를 찾을 수 없습니다")
			return
		}
		respondStoreError(c, err, "메뉴 삭제 중 오류가 발생했습니다")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "메뉴가 삭제되었습니다"})
}

// StorePayments 가게가 제공하는 지불방식 목록
// GET /customer/stores/:id/payments
func (ctrl *CustomerController) StorePayments(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 가게 ID입니다")
		return
	}

	payments, err := ctrl.paymentService.ListForStore(uint(id))
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

// StoreCoupons 가게의 활성 쿠폰 목록
// GET /customer/stores/:id/coupons
func (ctrl *CustomerController) StoreCoupons(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 가게 ID입니다")
		return
	}

	coupons, err := ctrl.couponService.ListActive(uint(id))
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
