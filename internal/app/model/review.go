package model

import (
	"time"
)

type Review struct {
	ID      uint  `gorm:"primarykey" json:"id"`
	UserID  uint  `gorm:"not null;index" json:"user_id"`  // 작성자 PK
	StoreID uint  `gorm:"not null;index" json:"store_id"` // 가게 PK
	OrderID *uint `gorm:"index" json:"order_id"`          // 주문 PK (선택)
	Rating  int   `gorm:"not null" json:"rating"`         // 평점 (1~5)
	Content string `gorm:"size:200" json:"content"`       // 리뷰 내용
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User  User   `gorm:"foreignKey:UserID" json:"-"`
	Store Store  `gorm:"foreignKey:StoreID" json:"-"`
	Order *Order `gorm:"foreignKey:OrderID" json:"-"`
}

func (Review) TableName() string {
	return "reviews"
}
