package model

import (
	"time"
)

// FavoriteStore 찜한 가게. 삭제는 IsDeleted 플래그로만 처리하고 행은
// 남긴다. (사용자, 가게)당 활성 행은 최대 하나이며 서비스 계층에서 보장한다.
type FavoriteStore struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`            // 사용자 PK
	StoreID   uint      `gorm:"not null;index" json:"store_id"`           // 가게 PK
	CreatedAt time.Time `json:"created_at"`                               // 찜한 시각
	IsDeleted bool      `gorm:"not null;default:false" json:"is_deleted"` // 소프트 삭제 플래그

	User  User  `gorm:"foreignKey:UserID" json:"-"`
	Store Store `gorm:"foreignKey:StoreID" json:"-"`
}

func (FavoriteStore) TableName() string {
	return "favorite_stores"
}
