package model

// Owner 가게 사장 계정. 가게 등록 시 User와 같은 로그인 아이디로 자동
// 생성될 수 있다 (로그인 아이디 네임스페이스를 관례적으로 공유).
type Owner struct {
	ID           uint   `gorm:"primarykey" json:"id"`                         // 사장 PK
	LoginID      string `gorm:"uniqueIndex;size:30;not null" json:"owner_id"` // 로그인 아이디
	PasswordHash string `gorm:"size:255;not null" json:"-"`                   // 비밀번호 해시
	Email        string `gorm:"size:30;not null" json:"email"`                // 이메일

	Stores []Store `gorm:"foreignKey:OwnerID" json:"-"` // 소유 가게 목록
}

func (Owner) TableName() string {
	return "owners"
}
