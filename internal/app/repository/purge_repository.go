package repository

import (
	"github.com/ikkim/baedal-backend/internal/app/model"
	"github.com/ikkim/baedal-backend/pkg/logger"
	"gorm.io/gorm"
)

// purgeTarget 일괄 삭제 대상 테이블
type purgeTarget struct {
	name  string
	model interface{}
}

// resetOrder 전체 초기화 시 삭제 순서. FK 역순으로 참조하는 쪽을 먼저
// 지운다. store_payments가 가장 먼저인 이유: Store와 Payment를 동시에
// 참조하는 유일한 테이블이라 둘보다 앞서야 한다. stores.payment_id는
// FK 제약이 없으므로 payments를 stores보다 먼저 지워도 된다.
var resetOrder = []purgeTarget{
	{"store_payments", &model.StorePayment{}},
	{"menus", &model.Menu{}},
	{"coupons", &model.Coupon{}},
	{"payments", &model.Payment{}},
	{"reviews", &model.Review{}},
	{"favorite_stores", &model.FavoriteStore{}},
	{"orders", &model.Order{}},
	{"stores", &model.Store{}},
	{"categories", &model.Category{}},
	{"users", &model.User{}},
	{"owners", &model.Owner{}},
	{"riders", &model.Rider{}},
}

// PurgeRepository 일괄 삭제/초기화. 모든 연산은 단일 트랜잭션이며
// 중간 실패 시 전부 롤백된다. 반환값은 기준 테이블에서 지워진 행 수.
type PurgeRepository interface {
	ClearCategories() (int64, error)
	ClearStores() (int64, error)
	ClearUsers() (int64, error)
	ClearMenus() (int64, error)
	ClearCoupons() (int64, error)
	ResetAll() (map[string]int64, error)
}

type purgeRepository struct {
	db *gorm.DB
}

func NewPurgeRepository(db *gorm.DB) PurgeRepository {
	return &purgeRepository{db: db}
}

// purgeIn resetOrder에서 주어진 이름들만 골라 그 순서대로 지운다.
// 순서 정보를 한 곳(resetOrder)에만 두기 위한 장치.
func purgeIn(tx *gorm.DB, names ...string) (map[string]int64, error) {
	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[n] = true
	}

	deleted := make(map[string]int64, len(names))
	for _, target := range resetOrder {
		if !wanted[target.name] {
			continue
		}
		result := tx.Where("1 = 1").Delete(target.model)
		if result.Error != nil {
			logger.Error("Failed to purge table", result.Error, map[string]interface{}{
				"table": target.name,
			})
			return nil, result.Error
		}
		deleted[target.name] = result.RowsAffected
	}
	return deleted, nil
}

// ClearCategories 카테고리와 그에 매달린 모든 하위 데이터 삭제
func (r *purgeRepository) ClearCategories() (int64, error) {
	var count int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		deleted, err := purgeIn(tx,
			"store_payments", "menus", "coupons", "payments",
			"reviews", "favorite_stores", "orders", "stores", "categories")
		if err != nil {
			return err
		}
		count = deleted["categories"]
		return nil
	})
	if err != nil {
		return 0, err
	}

	logger.Info("Categories cleared", map[string]interface{}{"count": count})
	return count, nil
}

// ClearStores 가게와 그에 매달린 모든 하위 데이터 삭제 (카테고리는 유지)
func (r *purgeRepository) ClearStores() (int64, error) {
	var count int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		deleted, err := purgeIn(tx,
			"store_payments", "menus", "coupons", "payments",
			"reviews", "favorite_stores", "orders", "stores")
		if err != nil {
			return err
		}
		count = deleted["stores"]
		return nil
	})
	if err != nil {
		return 0, err
	}

	logger.Info("Stores cleared", map[string]interface{}{"count": count})
	return count, nil
}

// ClearUsers 사용자와 사용자가 만든 데이터 삭제 (가게는 유지)
func (r *purgeRepository) ClearUsers() (int64, error) {
	var count int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		deleted, err := purgeIn(tx,
			"reviews", "favorite_stores", "orders", "users")
		if err != nil {
			return err
		}
		count = deleted["users"]
		return nil
	})
	if err != nil {
		return 0, err
	}

	logger.Info("Users cleared", map[string]interface{}{"count": count})
	return count, nil
}

func (r *purgeRepository) ClearMenus() (int64, error) {
	var count int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		deleted, err := purgeIn(tx, "menus")
		if err != nil {
			return err
		}
		count = deleted["menus"]
		return nil
	})
	if err != nil {
		return 0, err
	}

	logger.Info("Menus cleared", map[string]interface{}{"count": count})
	return count, nil
}

func (r *purgeRepository) ClearCoupons() (int64, error) {
	var count int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		deleted, err := purgeIn(tx, "coupons")
		if err != nil {
			return err
		}
		count = deleted["coupons"]
		return nil
	})
	if err != nil {
		return 0, err
	}

	logger.Info("Coupons cleared", map[string]interface{}{"count": count})
	return count, nil
}

// ResetAll 모든 테이블을 비운다. 테이블별 삭제 행 수를 반환.
func (r *purgeRepository) ResetAll() (map[string]int64, error) {
	var deleted map[string]int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		names := make([]string, 0, len(resetOrder))
		for _, target := range resetOrder {
			names = append(names, target.name)
		}
		var err error
		deleted, err = purgeIn(tx, names...)
		return err
	})
	if err != nil {
		logger.Error("Failed to reset database", err, nil)
		return nil, err
	}

	logger.Info("Database reset", map[string]interface{}{"deleted": deleted})
	return deleted, nil
}
