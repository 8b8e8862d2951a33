package model

import (
	"time"
)

type Menu struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	StoreID   uint      `gorm:"not null;index" json:"store_id"` // 가게 PK
	Name      string    `gorm:"size:200;not null" json:"menu"`  // 메뉴 이름
	Price     int       `gorm:"not null" json:"price"`          // 가격 (원)
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Store Store `gorm:"foreignKey:StoreID" json:"-"`
}

func (Menu) TableName() string {
	return "menus"
}
