package service

import (
	"errors"

	"github.com/ikkim/baedal-backend/internal/app/model"
	"github.com/ikkim/baedal-backend/internal/app/repository"
	"github.com/ikkim/baedal-backend/pkg/logger"
	"github.com/ikkim/baedal-backend/pkg/util"
	"gorm.io/gorm"
)

var (
	ErrNoCategories = errors.New("카테고리를 먼저 생성해주세요")
	ErrNoStores     = errors.New("가게를 먼저 생성해주세요")
)

// 시드 기본값. 가게 시드는 사장/지불방식이 없으면 이 값으로 만든다.
const (
	seedOwnerLoginID  = "testowner"
	seedOwnerPassword = "test1234"
	DefaultPaymentCard = "만나서 카드결제"
	DefaultPaymentCash = "만나서 현금 결제"
)

type storeTemplate struct {
	Name          string
	Phone         string
	MinPrice      string
	OperationTime string
	ClosedDay     string
	Information   string
}

type menuTemplate struct {
	Name  string
	Price int
}

// categoryStoreTemplates 카테고리별 시드 가게. 이름이 자연키라 재실행
// 시 이미 있는 가게는 건너뛴다.
var categoryStoreTemplates = map[string][]storeTemplate{
	"한식": {
		{"김밥천국 본점", "02-1234-0001", "8000원", "09:00 ~ 21:00", "일요일", "분식 같은 한식, 한식 같은 분식"},
		{"장모님순대국", "02-1234-0002", "9000원", "08:00 ~ 22:00", "연중무휴", "24년 전통 순대국 전문점"},
		{"시골밥상", "02-1234-0003", "10000원", "10:00 ~ 20:00", "월요일", "집밥이 그리울 때"},
	},
	"중식": {
		{"만리장성", "02-1234-0011", "12000원", "11:00 ~ 21:30", "화요일", "수타면 전문 중화요리"},
		{"홍콩반점", "02-1234-0012", "10000원", "10:30 ~ 22:00", "연중무휴", "불맛 가득 짬뽕 맛집"},
		{"쉐프의중화", "02-1234-0013", "15000원", "11:30 ~ 21:00", "일요일", "호텔 출신 쉐프의 정통 중식"},
	},
	"일식": {
		{"스시하루", "02-1234-0021", "15000원", "11:30 ~ 21:30", "월요일", "매일 아침 공수하는 신선한 재료"},
		{"돈카츠공방", "02-1234-0022", "11000원", "11:00 ~ 21:00", "연중무휴", "수제 돈카츠 전문점"},
		{"라멘야", "02-1234-0023", "10000원", "11:00 ~ 22:00", "수요일", "진한 돈코츠 육수"},
	},
	"양식": {
		{"파스타벨라", "02-1234-0031", "13000원", "11:00 ~ 21:00", "월요일", "생면 파스타 전문"},
		{"스테이크하우스", "02-1234-0032", "20000원", "12:00 ~ 22:00", "연중무휴", "드라이에이징 스테이크"},
		{"피자플레이스", "02-1234-0033", "14000원", "11:00 ~ 23:00", "연중무휴", "화덕피자 전문점"},
	},
	"분식": {
		{"떡볶이명가", "02-1234-0041", "6000원", "10:00 ~ 21:00", "연중무휴", "국민학교 앞 그 맛"},
		{"신전분식", "02-1234-0042", "7000원", "10:00 ~ 22:00", "연중무휴", "매콤한 국물떡볶이"},
		{"튀김왕자", "02-1234-0043", "6000원", "11:00 ~ 20:00", "일요일", "바삭한 수제 튀김"},
	},
	"패스트푸드": {
		{"버거스탠드", "02-1234-0051", "7000원", "10:00 ~ 23:00", "연중무휴", "수제버거 전문점"},
		{"치킨플러스", "02-1234-0052", "16000원", "12:00 ~ 24:00", "연중무휴", "바삭한 후라이드"},
		{"샌드위치랩", "02-1234-0053", "6000원", "08:00 ~ 20:00", "일요일", "아침을 여는 샌드위치"},
	},
}

// categoryMenuTemplates 카테고리별 시드 메뉴 (가게마다 동일 적용)
var categoryMenuTemplates = map[string][]menuTemplate{
	"한식":    {{"김치찌개", 8000}, {"된장찌개", 8000}, {"제육볶음", 9000}},
	"중식":    {{"짜장면", 7000}, {"짬뽕", 9000}, {"탕수육", 18000}},
	"일식":    {{"연어초밥", 15000}, {"모둠초밥", 18000}, {"우동", 8000}},
	"양식":    {{"까르보나라", 13000}, {"마르게리타피자", 15000}, {"안심스테이크", 28000}},
	"분식":    {{"떡볶이", 5000}, {"순대", 4000}, {"모둠튀김", 5000}},
	"패스트푸드": {{"치즈버거세트", 8000}, {"후라이드치킨", 16000}, {"감자튀김", 3000}},
}

// seedCouponTemplates 가게마다 발행하는 시드 쿠폰 (할인액/유효기간 일)
var seedCouponTemplates = []struct {
	Discount int
	Period   int
}{
	{1000, 30},
	{2000, 60},
	{3000, 90},
}

// 입력 레코드 (직접 생성 API용)
type CategoryRecord struct {
	Name string `json:"category"`
}

type UserRecord struct {
	LoginID  string `json:"user_id"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Address  string `json:"address"`
}

type StoreRecord struct {
	Name          string `json:"store_name"`
	Category      string `json:"category"`
	Phone         string `json:"phone"`
	MinPrice      string `json:"minprice"`
	OperationTime string `json:"operationTime"`
	ClosedDay     string `json:"closedDay"`
	Information   string `json:"information"`
}

type MenuRecord struct {
	StoreName string `json:"store_name"`
	Name      string `json:"menu"`
	Price     int    `json:"price"`
}

type CouponRecord struct {
	StoreName string `json:"store_name"`
	Discount  int    `json:"discount"`
	Period    *int   `json:"period"`
}

// AdminService 시드/일괄 삭제/초기화. 시드는 자연키 기준으로 멱등이라
// 같은 호출을 반복해도 두 번째부터는 0을 반환한다.
type AdminService interface {
	SeedCategories() (int, error)
	SeedUsers() (int, error)
	SeedStores() (int, error)
	SeedMenus() (int, error)
	SeedCoupons() (int, error)

	CreateCategories(records []CategoryRecord) (int, error)
	CreateUsers(records []UserRecord) (int, error)
	CreateStores(records []StoreRecord) (int, error)
	CreateMenus(records []MenuRecord) (int, error)
	CreateCoupons(records []CouponRecord) (int, error)

	ClearCategories() (int64, error)
	ClearUsers() (int64, error)
	ClearStores() (int64, error)
	ClearMenus() (int64, error)
	ClearCoupons() (int64, error)
	Reset() (int64, error)

	ListCategories() ([]model.Category, error)
	ListStores() ([]model.Store, error)
}

type adminService struct {
	db        *gorm.DB
	purgeRepo repository.PurgeRepository
}

func NewAdminService(db *gorm.DB, purgeRepo repository.PurgeRepository) AdminService {
	return &adminService{
		db:        db,
		purgeRepo: purgeRepo,
	}
}

func (s *adminService) SeedCategories() (int, error) {
	inserted := 0
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, name := range model.DefaultCategoryNames() {
			var count int64
			if err := tx.Model(&model.Category{}).
				Where("name = ?", name).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}
			if err := tx.Create(&model.Category{Name: name}).Error; err != nil {
				return err
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		logger.Error("Failed to seed categories", err, nil)
		return 0, err
	}

	logger.Info("Categories seeded", map[string]interface{}{"inserted": inserted})
	return inserted, nil
}

func (s *adminService) SeedUsers() (int, error) {
	seedUsers := []UserRecord{
		{"testuser1", "test1234", "user1@test.com", "김철수", "서울시 강남구 역삼동 123"},
		{"testuser2", "test1234", "user2@test.com", "이영희", "서울시 마포구 서교동 45"},
		{"testuser3", "test1234", "user3@test.com", "박민수", "서울시 송파구 잠실동 67"},
	}

	inserted := 0
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, record := range seedUsers {
			var count int64
			if err := tx.Model(&model.User{}).
				Where("login_id = ?", record.LoginID).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}

			hash, err := util.HashPassword(record.Password)
			if err != nil {
				return err
			}
			user := model.User{
				LoginID:      record.LoginID,
				PasswordHash: hash,
				Email:        record.Email,
				Name:         record.Name,
				Address:      record.Address,
			}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		logger.Error("Failed to seed users", err, nil)
		return 0, err
	}

	logger.Info("Users seeded", map[string]interface{}{"inserted": inserted})
	return inserted, nil
}

// seedOwner 시드용 기본 사장 계정을 찾거나 만든다
func seedOwner(tx *gorm.DB) (*model.Owner, error) {
	var owner model.Owner
	err := tx.Where("login_id = ?", seedOwnerLoginID).First(&owner).Error
	if err == nil {
		return &owner, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := util.HashPassword(seedOwnerPassword)
	if err != nil {
		return nil, err
	}
	owner = model.Owner{
		LoginID:      seedOwnerLoginID,
		PasswordHash: hash,
		Email:        "owner@test.com",
	}
	if err := tx.Create(&owner).Error; err != nil {
		return nil, err
	}
	return &owner, nil
}

// seedPayment 시드용 기본 지불방식을 찾거나 만든다
func seedPayment(tx *gorm.DB) (*model.Payment, error) {
	var payment model.Payment
	err := tx.Where("name = ?", DefaultPaymentCard).First(&payment).Error
	if err == nil {
		return &payment, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	payment = model.Payment{Name: DefaultPaymentCard}
	if err := tx.Create(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (s *adminService) SeedStores() (int, error) {
	inserted := 0
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var categories []model.Category
		if err := tx.Find(&categories).Error; err != nil {
			return err
		}
		if len(categories) == 0 {
			return ErrNoCategories
		}

		owner, err := seedOwner(tx)
		if err != nil {
			return err
		}
		payment, err := seedPayment(tx)
		if err != nil {
			return err
		}

		for _, category := range categories {
			templates, ok := categoryStoreTemplates[category.Name]
			if !ok {
				continue
			}
			for _, template := range templates {
				var count int64
				if err := tx.Model(&model.Store{}).
					Where("name = ?", template.Name).
					Count(&count).Error; err != nil {
					return err
				}
				if count > 0 {
					continue
				}

				store := model.Store{
					OwnerID:       owner.ID,
					CategoryID:    category.ID,
					PaymentID:     &payment.ID,
					Name:          template.Name,
					CategoryName:  category.Name,
					Phone:         template.Phone,
					MinPrice:      template.MinPrice,
					OperationTime: template.OperationTime,
					ClosedDay:     template.ClosedDay,
					Information:   template.Information,
				}
				if err := tx.Create(&store).Error; err != nil {
					return err
				}
				sp := model.StorePayment{StoreID: store.ID, PaymentID: payment.ID}
				if err := tx.Create(&sp).Error; err != nil {
					return err
				}
				inserted++
			}
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrNoCategories) {
			logger.Error("Failed to seed stores", err, nil)
		}
		return 0, err
	}

	logger.Info("Stores seeded", map[string]interface{}{"inserted": inserted})
	return inserted, nil
}

func (s *adminService) SeedMenus() (int, error) {
	inserted := 0
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var stores []model.Store
		if err := tx.Find(&stores).Error; err != nil {
			return err
		}
		if len(stores) == 0 {
			return ErrNoStores
		}

		for _, store := range stores {
			templates, ok := categoryMenuTemplates[store.CategoryName]
			if !ok {
				continue
			}
			for _, template := range templates {
				var count int64
				if err := tx.Model(&model.Menu{}).
					Where("store_id = ? AND name = ?", store.ID, template.Name).
					Count(&count).Error; err != nil {
					return err
				}
				if count > 0 {
					continue
				}

				menu := model.Menu{
					StoreID: store.ID,
					Name:    template.Name,
					Price:   template.Price,
				}
				if err := tx.Create(&menu).Error; err != nil {
					return err
				}
				inserted++
			}
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrNoStores) {
			logger.Error("Failed to seed menus", err, nil)
		}
		return 0, err
	}

	logger.Info("Menus seeded", map[string]interface{}{"inserted": inserted})
	return inserted, nil
}

func (s *adminService) SeedCoupons() (int, error) {
	inserted := 0
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var stores []model.Store
		if err := tx.Find(&stores).Error; err != nil {
			return err
		}
		if len(stores) == 0 {
			return ErrNoStores
		}

		for _, store := range stores {
			for _, template := range seedCouponTemplates {
				var count int64
				if err := tx.Model(&model.Coupon{}).
					Where("store_id = ? AND discount = ?", store.ID, template.Discount).
					Count(&count).Error; err != nil {
					return err
				}
				if count > 0 {
					continue
				}

				discount := template.Discount
				period := template.Period
				coupon := model.Coupon{
					StoreID:  store.ID,
					Discount: &discount,
					Period:   &period,
				}
				if err := tx.Create(&coupon).Error; err != nil {
					return err
				}
				inserted++
			}
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrNoStores) {
			logger.Error("Failed to seed coupons", err, nil)
		}
		return 0, err
	}

	logger.Info("Coupons seeded", map[string]interface{}{"inserted": inserted})
	return inserted, nil
}

// CreateCategories 이름이 비었거나 이미 있으면 조용히 건너뛴다
func (s *adminService) CreateCategories(records []CategoryRecord) (int, error) {
	inserted := 0
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, record := range records {
			if record.Name == "" {
				continue
			}
			var count int64
			if err := tx.Model(&model.Category{}).
				Where("name = ?", record.Name).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}
			if err := tx.Create(&model.Category{Name: record.Name}).Error; err != nil {
				return err
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

func (s *adminService) CreateUsers(records []UserRecord) (int, error) {
	inserted := 0
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, record := range records {
			if record.LoginID == "" || record.Password == "" {
				continue
			}
			var count int64
			if err := tx.Model(&model.User{}).
				Where("login_id = ?", record.LoginID).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}

			hash, err := util.HashPassword(record.Password)
			if err != nil {
				return err
			}
			user := model.User{
				LoginID:      record.LoginID,
				PasswordHash: hash,
				Email:        record.Email,
				Name:         record.Name,
				Address:      record.Address,
			}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

func (s *adminService) CreateStores(records []StoreRecord) (int, error) {
	inserted := 0
	err := s.db.Transaction(func(tx *gorm.DB) error {
		owner, err := seedOwner(tx)
		if err != nil {
			return err
		}
		payment, err := seedPayment(tx)
		if err != nil {
			return err
		}

		for _, record := range records {
			if record.Name == "" || record.Category == "" {
				continue
			}

			var category model.Category
			if err := tx.Where("name = ?", record.Category).
				First(&category).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					// 모르는 카테고리는 건너뛴다
					continue
				}
				return err
			}

			var count int64
			if err := tx.Model(&model.Store{}).
				Where("name = ?", record.Name).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}

			store := model.Store{
				OwnerID:       owner.ID,
				CategoryID:    category.ID,
				PaymentID:     &payment.ID,
				Name:          record.Name,
				CategoryName:  category.Name,
				Phone:         record.Phone,
				MinPrice:      record.MinPrice,
				OperationTime: record.OperationTime,
				ClosedDay:     record.ClosedDay,
				Information:   record.Information,
			}
			if err := tx.Create(&store).Error; err != nil {
				return err
			}
			sp := model.StorePayment{StoreID: store.ID, PaymentID: payment.ID}
			if err := tx.Create(&sp).Error; err != nil {
				return err
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

func (s *adminService) CreateMenus(records []MenuRecord) (int, error) {
	inserted := 0
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, record := range records {
			if record.StoreName == "" || record.Name == "" {
				continue
			}

			var store model.Store
			if err := tx.Where("name = ?", record.StoreName).
				First(&store).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					continue
				}
				return err
			}

			var count int64
			if err := tx.Model(&model.Menu{}).
				Where("store_id = ? AND name = ?", store.ID, record.Name).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}

			menu := model.Menu{
				StoreID: store.ID,
				Name:    record.Name,
				Price:   record.Price,
			}
			if err := tx.Create(&menu).Error; err != nil {
				return err
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

// CreateCoupons 쿠폰은 자연키가 없어 항상 삽입한다
func (s *adminService) CreateCoupons(records []CouponRecord) (int, error) {
	inserted := 0
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, record := range records {
			if record.StoreName == "" || record.Discount <= 0 {
				continue
			}

			var store model.Store
			if err := tx.Where("name = ?", record.StoreName).
				First(&store).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					continue
				}
				return err
			}

			discount := record.Discount
			coupon := model.Coupon{
				StoreID:  store.ID,
				Discount: &discount,
				Period:   record.Period,
			}
			if err := tx.Create(&coupon).Error; err != nil {
				return err
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

func (s *adminService) ClearCategories() (int64, error) {
	return s.purgeRepo.ClearCategories()
}

func (s *adminService) ClearUsers() (int64, error) {
	return s.purgeRepo.ClearUsers()
}

func (s *adminService) ClearStores() (int64, error) {
	return s.purgeRepo.ClearStores()
}

func (s *adminService) ClearMenus() (int64, error) {
	return s.purgeRepo.ClearMenus()
}

func (s *adminService) ClearCoupons() (int64, error) {
	return s.purgeRepo.ClearCoupons()
}

// Reset 전체 초기화. 지워진 총 행 수를 반환.
func (s *adminService) Reset() (int64, error) {
	deleted, err := s.purgeRepo.ResetAll()
	if err != nil {
		return 0, err
	}

	var total int64
	for _, count := range deleted {
		total += count
	}
	return total, nil
}

func (s *adminService) ListCategories() ([]model.Category, error) {
	var categories []model.Category
	if err := s.db.Order("id ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *adminService) ListStores() ([]model.Store, error) {
	var stores []model.Store
	if err := s.db.Order("id ASC").Find(&stores).Error; err != nil {
		return nil, err
	}
	return stores, nil
}
