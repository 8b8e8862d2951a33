package model

// Payment 지불방식 이름 테이블 (예: "만나서 카드결제").
type Payment struct {
	ID   uint   `gorm:"primarykey" json:"id"`
	Name string `gorm:"size:30;not null" json:"payment"` // 지불방식 이름

	StorePayments []StorePayment `gorm:"foreignKey:PaymentID" json:"-"`
}

func (Payment) TableName() string {
	return "payments"
}
