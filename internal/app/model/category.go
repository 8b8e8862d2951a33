package model

type Category struct {
	ID   uint   `gorm:"primarykey" json:"id"`           // 카테고리 PK
	Name string `gorm:"size:30;not null" json:"category"` // 카테고리 이름

	Stores []Store `gorm:"foreignKey:CategoryID" json:"-"` // 소속 가게 목록
}

func (Category) TableName() string {
	return "categories"
}

// DefaultCategoryNames 기본 카테고리 목록. 시드와 부트스트랩이 공유한다.
func DefaultCategoryNames() []string {
	return []string{"한식", "중식", "일식", "양식", "분식", "패스트푸드"}
}
