package errors

// 에러 코드 상수 정의
// 형식: CATEGORY_SPECIFIC_DETAIL
// 프론트엔드에서 이 코드를 기반으로 메시지를 매핑함

const (
	// ==================== 인증 (AUTH_) ====================
	AuthUnauthorized       = "AUTH_UNAUTHORIZED"       // 로그인 필요
	AuthOwnerRequired      = "AUTH_OWNER_REQUIRED"     // 사장 로그인 필요
	AuthInvalidCredentials = "AUTH_INVALID_CREDENTIALS" // 잘못된 아이디/비밀번호
	AuthLoginIDExists      = "AUTH_LOGIN_ID_EXISTS"    // 아이디 중복

	// ==================== 인가/권한 (AUTHZ_) ====================
	AuthzForbidden = "AUTHZ_FORBIDDEN"  // 접근 권한 없음
	AuthzOwnerOnly = "AUTHZ_OWNER_ONLY" // 가게 소유자만 가능

	// ==================== 검증 (VALIDATION_) ====================
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT" // 잘못된 입력
	ValidationInvalidID    = "VALIDATION_INVALID_ID"    // 잘못된 ID
	ValidationRequired     = "VALIDATION_REQUIRED"      // 필수 항목

	// ==================== 리소스 (RESOURCE_) ====================
	ResourceNotFound      = "RESOURCE_NOT_FOUND"       // 리소스 없음
	ResourceAlreadyExists = "RESOURCE_ALREADY_EXISTS"  // 이미 존재

	// ==================== 가게 (STORE_) ====================
	StoreNotFound    = "STORE_NOT_FOUND"    // 가게 없음
	CategoryNotFound = "CATEGORY_NOT_FOUND" // 카테고리 없음
	MenuNotFound     = "MENU_NOT_FOUND"     // 메뉴 없음
	PaymentNotFound  = "PAYMENT_NOT_FOUND"  // 지불방식 없음
	CouponNotFound   = "COUPON_NOT_FOUND"   // 쿠폰 없음

	// ==================== 주문 (ORDER_) ====================
	OrderNotFound        = "ORDER_NOT_FOUND"         // 주문 없음
	OrderAlreadyAccepted = "ORDER_ALREADY_ACCEPTED"  // 이미 수락된 주문

	// ==================== 리뷰 (REVIEW_) ====================
	ReviewNotFound      = "REVIEW_NOT_FOUND"       // 리뷰 없음
	ReviewInvalidRating = "REVIEW_INVALID_RATING"  // 잘못된 평점
	ReviewAlreadyExists = "REVIEW_ALREADY_EXISTS"  // 이미 리뷰 작성함

	// ==================== 찜 (FAVORITE_) ====================
	FavoriteAlreadyExists = "FAVORITE_ALREADY_EXISTS" // 이미 찜한 가게
	FavoriteNotFound      = "FAVORITE_NOT_FOUND"      // 찜한 가게 아님

	// ==================== 내부 오류 (INTERNAL_) ====================
	InternalServerError   = "INTERNAL_SERVER_ERROR"   // 서버 오류
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR" // DB 오류
)
