package model

import (
	"time"
)

type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`                 // 사용자 PK
	LoginID      string    `gorm:"uniqueIndex;size:30;not null" json:"user_id"` // 로그인 아이디
	PasswordHash string    `gorm:"size:255;not null" json:"-"`           // 비밀번호 해시
	Email        string    `gorm:"size:30;not null" json:"email"`        // 이메일
	Name         string    `gorm:"size:100;not null" json:"name"`        // 이름
	Address      string    `gorm:"size:100;not null" json:"address"`     // 주소
	CreatedAt    time.Time `json:"created_at"`                           // 생성 시각
	UpdatedAt    time.Time `json:"updated_at"`                           // 수정 시각

	Orders    []Order         `gorm:"foreignKey:UserID" json:"-"` // 주문 목록
	Reviews   []Review        `gorm:"foreignKey:UserID" json:"-"` // 리뷰 목록
	Favorites []FavoriteStore `gorm:"foreignKey:UserID" json:"-"` // 찜 목록
}

func (User) TableName() string {
	return "users"
}
