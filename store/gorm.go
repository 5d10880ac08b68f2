package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MySQL server error numbers the store translates.
const (
	mysqlDuplicateEntry  = 1062
	mysqlRowIsReferenced = 1451
)

// GormStore implements Store on top of GORM and MySQL (InnoDB).
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}

// translate maps driver errors onto the store's sentinels; everything else
// is passed through untouched.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case mysqlDuplicateEntry:
			return fmt.Errorf("%w: %s", ErrDuplicate, myErr.Message)
		case mysqlRowIsReferenced:
			return fmt.Errorf("%w: %s", ErrReferenced, myErr.Message)
		}
	}
	return err
}

func scoped(ctx context.Context, db *gorm.DB, hotelID string) *gorm.DB {
	return db.WithContext(ctx).Where("hotel_id = ?", hotelID)
}

func first[T any](ctx context.Context, db *gorm.DB, hotelID, id string) (*T, error) {
	var out T
	if err := scoped(ctx, db, hotelID).Where("id = ?", id).First(&out).Error; err != nil {
		return nil, translate(err)
	}
	return &out, nil
}

func lockFirst[T any](ctx context.Context, db *gorm.DB, hotelID, id string) (*T, error) {
	var out T
	err := scoped(ctx, db, hotelID).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&out).Error
	if err != nil {
		return nil, translate(err)
	}
	return &out, nil
}

func list[T any](ctx context.Context, db *gorm.DB, hotelID, order string) ([]T, error) {
	out := []T{}
	if err := scoped(ctx, db, hotelID).Order(order).Find(&out).Error; err != nil {
		return nil, translate(err)
	}
	return out, nil
}

func create[T any](ctx context.Context, db *gorm.DB, row *T) error {
	return translate(db.WithContext(ctx).Create(row).Error)
}

// update applies the columns and re-reads the row. MySQL reports zero
// affected rows when the values are unchanged, so existence is decided by
// the re-read rather than by RowsAffected.
func update[T any](ctx context.Context, db *gorm.DB, hotelID, id string, columns map[string]any) (*T, error) {
	if len(columns) > 0 {
		err := scoped(ctx, db, hotelID).Model(new(T)).Where("id = ?", id).Updates(columns).Error
		if err != nil {
			return nil, translate(err)
		}
	}
	return first[T](ctx, db, hotelID, id)
}

func remove[T any](ctx context.Context, db *gorm.DB, hotelID, id string) error {
	res := scoped(ctx, db, hotelID).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
