package model

import (
	"time"
)

type Store struct {
	ID         uint  `gorm:"primarykey" json:"id"`           // 가게 PK
	OwnerID    uint  `gorm:"not null;index" json:"owner_id"` // 사장 PK
	CategoryID uint  `gorm:"not null;index" json:"category_id"` // 카테고리 PK
	// PaymentID는 단일 지불방식 시절의 하위 호환 컬럼. FK 제약 없이 값만
	// 보관한다. 실제 지불방식 목록은 store_payments 조인 테이블이 담당.
	PaymentID     *uint     `json:"payment_id,omitempty"`
	Name          string    `gorm:"size:50;not null" json:"store_name"`  // 가게 이름
	CategoryName  string    `gorm:"size:30;not null" json:"category"`    // 카테고리 이름 복사본
	Phone         string    `gorm:"size:20;not null" json:"phone"`       // 전화번호
	MinPrice      string    `gorm:"size:30;not null" json:"minprice"`    // 최소주문금액 표기
	ReviewCount   int       `gorm:"not null;default:0" json:"reviewCount"` // 리뷰 수 (비정규화)
	OperationTime string    `gorm:"size:250;not null" json:"operationTime"` // 운영시간
	ClosedDay     string    `gorm:"size:250;not null" json:"closedDay"`  // 휴무일
	Information   string    `gorm:"size:500" json:"information"`         // 가게 소개
	CreatedAt     time.Time `json:"created_at"`                          // 생성 시각
	UpdatedAt     time.Time `json:"updated_at"`                          // 수정 시각

	Owner    Owner    `gorm:"foreignKey:OwnerID" json:"-"`    // 사장 정보
	Category Category `gorm:"foreignKey:CategoryID" json:"-"` // 카테고리 정보

	Menus         []Menu          `gorm:"foreignKey:StoreID" json:"-"` // 메뉴 목록
	Orders        []Order         `gorm:"foreignKey:StoreID" json:"-"` // 주문 목록
	Coupons       []Coupon        `gorm:"foreignKey:StoreID" json:"-"` // 쿠폰 목록
	Favorites     []FavoriteStore `gorm:"foreignKey:StoreID" json:"-"` // 찜 목록
	Reviews       []Review        `gorm:"foreignKey:StoreID" json:"-"` // 리뷰 목록
	StorePayments []StorePayment  `gorm:"foreignKey:StoreID" json:"-"` // 지불방식 목록
}

func (Store) TableName() string {
	return "stores"
}

// StorePayment 가게가 실제 제공하는 지불방식. (가게, 지불방식) 쌍당 한 행.
type StorePayment struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	StoreID   uint      `gorm:"not null;index" json:"store_id"`   // 가게 PK
	PaymentID uint      `gorm:"not null;index" json:"payment_id"` // 지불방식 PK
	CreatedAt time.Time `json:"created_at"`

	Store   Store   `gorm:"foreignKey:StoreID" json:"-"`
	Payment Payment `gorm:"foreignKey:PaymentID" json:"-"`
}

func (StorePayment) TableName() string {
	return "store_payments"
}
