package model

import (
	"time"
)

type Order struct {
	ID      uint `gorm:"primarykey" json:"id"`
	UserID  uint `gorm:"not null;index" json:"user_id"`  // 주문자 PK
	StoreID uint `gorm:"not null;index" json:"store_id"` // 가게 PK
	// RiderID는 주문 생성 시 null, 라이더가 수락할 때 정확히 한 번 설정된다.
	RiderID    *uint     `gorm:"index" json:"rider_id"`
	Content    string    `gorm:"size:100;not null" json:"order"`       // 주문 내역 텍스트
	TotalPrice int       `gorm:"not null" json:"total_price"`          // 총 금액 (원)
	OrderTime  time.Time `gorm:"autoCreateTime" json:"order_time"`     // 주문 시각

	User  User   `gorm:"foreignKey:UserID" json:"-"`
	Store Store  `gorm:"foreignKey:StoreID" json:"-"`
	Rider *Rider `gorm:"foreignKey:RiderID" json:"-"`
}

func (Order) TableName() string {
	return "orders"
}
