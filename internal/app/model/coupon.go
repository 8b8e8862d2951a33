package model

import (
	"time"
)

// Coupon 가게 쿠폰. 삭제는 IsDeleted 플래그로만 처리한다.
type Coupon struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	StoreID   uint      `gorm:"not null;index" json:"store_id"`           // 가게 PK
	Period    *int      `json:"period"`                                   // 유효기간 (일)
	Discount  *int      `json:"discount"`                                 // 할인 금액 또는 할인율
	IsDeleted bool      `gorm:"not null;default:false" json:"is_deleted"` // 소프트 삭제 플래그
	CreatedAt time.Time `json:"created_at"`                               // 발행 시각 (만료 계산 기준)

	Store Store `gorm:"foreignKey:StoreID" json:"-"`
}

func (Coupon) TableName() string {
	return "coupons"
}
