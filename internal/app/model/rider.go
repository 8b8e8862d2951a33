package model

// Rider 배달 라이더. 사용자가 처음 주문을 수락할 때 같은 로그인
// 아이디로 자동 생성될 수 있다.
type Rider struct {
	ID      uint   `gorm:"primarykey" json:"id"`                         // 라이더 PK
	LoginID string `gorm:"uniqueIndex;size:30;not null" json:"rider_id"` // 로그인 아이디
	Phone   string `gorm:"size:20" json:"phone"`                         // 전화번호
	Vehicle string `gorm:"size:30;not null" json:"vehicle"`              // 운송 수단

	Orders []Order `gorm:"foreignKey:RiderID" json:"-"` // 수락한 주문 목록
}

func (Rider) TableName() string {
	return "riders"
}
