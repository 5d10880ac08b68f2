package store

import (
	"context"

	"gorm.io/gorm"

	"hotel-saas/models"
)

func (s *GormStore) CreateHotel(ctx context.Context, hotel *models.Hotel) error {
	return create(ctx, s.db, hotel)
}

func (s *GormStore) GetHotel(ctx context.Context, id string) (*models.Hotel, error) {
	var hotel models.Hotel
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&hotel).Error; err != nil {
		return nil, translate(err)
	}
	return &hotel, nil
}

func (s *GormStore) GetHotelByEmail(ctx context.Context, email string) (*models.Hotel, error) {
	var hotel models.Hotel
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&hotel).Error; err != nil {
		return nil, translate(err)
	}
	return &hotel, nil
}

func (s *GormStore) ListHotels(ctx context.Context) ([]models.Hotel, error) {
	hotels := []models.Hotel{}
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&hotels).Error; err != nil {
		return nil, translate(err)
	}
	return hotels, nil
}

func (s *GormStore) UpdateHotel(ctx context.Context, id string, columns map[string]any) (*models.Hotel, error) {
	if len(columns) > 0 {
		err := s.db.WithContext(ctx).Model(&models.Hotel{}).Where("id = ?", id).Updates(columns).Error
		if err != nil {
			return nil, translate(err)
		}
	}
	return s.GetHotel(ctx, id)
}

// tenantTables lists a hotel's tables children first. InnoDB checks the
// RESTRICT keys between sibling tables row by row while cascading, so the
// rows are removed explicitly in this order before the hotel itself.
var tenantTables = []interface{}{
	&models.Sale{},
	&models.Purchase{},
	&models.Invoice{},
	&models.Payment{},
	&models.Reservation{},
	&models.Product{},
	&models.Supplier{},
	&models.Guest{},
	&models.Room{},
	&models.User{},
}

func (s *GormStore) DeleteHotel(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, table := range tenantTables {
			if err := tx.Where("hotel_id = ?", id).Delete(table).Error; err != nil {
				return translate(err)
			}
		}
		res := tx.Where("id = ?", id).Delete(&models.Hotel{})
		if res.Error != nil {
			return translate(res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (s *GormStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *GormStore) CreateUser(ctx context.Context, user *models.User) error {
	return create(ctx, s.db, user)
}

func (s *GormStore) GetUser(ctx context.Context, hotelID, id string) (*models.User, error) {
	return first[models.User](ctx, s.db, hotelID, id)
}

func (s *GormStore) ListUsers(ctx context.Context, hotelID string) ([]models.User, error) {
	return list[models.User](ctx, s.db, hotelID, "created_at ASC")
}

func (s *GormStore) UpdateUser(ctx context.Context, hotelID, id string, patch models.UserPatch) (*models.User, error) {
	return update[models.User](ctx, s.db, hotelID, id, patch.Columns())
}
