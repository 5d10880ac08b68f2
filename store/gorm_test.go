package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockStore(t *testing.T) (sqlmock.Sqlmock, *GormStore) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(gormmysql.New(gormmysql.Config{Conn: db, SkipInitializeWithVersion: true}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return mock, NewGormStore(gdb)
}

var roomColumns = []string{"id", "created_at", "hotel_id", "room_number", "type", "price_per_night", "capacity", "status", "notes"}

func TestGormStore_GetRoom(t *testing.T) {
	mock, s := setupMockStore(t)
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT \\* FROM `rooms` WHERE hotel_id = \\? AND id = \\?").
		WillReturnRows(sqlmock.NewRows(roomColumns).
			AddRow("room-1", created, "hotel-1", "101", "double", "100.00", 2, "available", nil))

	room, err := s.GetRoom(context.Background(), "hotel-1", "room-1")
	require.NoError(t, err)
	assert.Equal(t, "room-1", room.ID)
	assert.Equal(t, "101", room.RoomNumber)
	assert.Equal(t, "100", room.PricePerNight.String())
	assert.Nil(t, room.Notes)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_GetRoomOtherTenant(t *testing.T) {
	mock, s := setupMockStore(t)

	mock.ExpectQuery("SELECT \\* FROM `rooms` WHERE hotel_id = \\? AND id = \\?").
		WillReturnRows(sqlmock.NewRows(roomColumns))

	room, err := s.GetRoom(context.Background(), "hotel-2", "room-1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, room)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_LockRoomSelectsForUpdate(t *testing.T) {
	mock, s := setupMockStore(t)

	mock.ExpectQuery("SELECT \\* FROM `rooms` WHERE hotel_id = \\? AND id = \\? .*FOR UPDATE").
		WillReturnRows(sqlmock.NewRows(roomColumns).
			AddRow("room-1", time.Now(), "hotel-1", "101", "double", "100.00", 2, "available", nil))

	_, err := s.LockRoom(context.Background(), "hotel-1", "room-1")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_ListReservationsForRoom(t *testing.T) {
	mock, s := setupMockStore(t)
	from := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)

	cols := []string{"id", "created_at", "hotel_id", "room_id", "guest_id", "check_in", "check_out", "status", "total_amount", "payment_status", "created_by"}
	mock.ExpectQuery("SELECT \\* FROM `reservations` WHERE hotel_id = \\? AND .*room_id = \\? AND check_out > \\? AND check_in < \\?.* ORDER BY check_in ASC.*FOR SHARE").
		WithArgs("hotel-1", "room-1", from, to).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(
			"res-1", time.Now(), "hotel-1", "room-1", "guest-1",
			time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 18, 0, 0, 0, 0, time.UTC),
			"confirmed", "300.00", "pending", nil,
		))

	out, err := s.ListReservationsForRoom(context.Background(), "hotel-1", "room-1", from, to)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "res-1", out[0].ID)
	assert.Equal(t, "confirmed", string(out[0].Status))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_DeleteRoom(t *testing.T) {
	mock, s := setupMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `rooms` WHERE hotel_id = \\? AND id = \\?").
		WithArgs("hotel-1", "room-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, s.DeleteRoom(context.Background(), "hotel-1", "room-1"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_DeleteRoomMissing(t *testing.T) {
	mock, s := setupMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `rooms`").
		WithArgs("hotel-1", "room-9").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	assert.ErrorIs(t, s.DeleteRoom(context.Background(), "hotel-1", "room-9"), ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_DeleteRoomStillReferenced(t *testing.T) {
	mock, s := setupMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `rooms`").
		WithArgs("hotel-1", "room-1").
		WillReturnError(&mysql.MySQLError{Number: 1451, Message: "Cannot delete or update a parent row"})
	mock.ExpectRollback()

	assert.ErrorIs(t, s.DeleteRoom(context.Background(), "hotel-1", "room-1"), ErrReferenced)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_DeleteHotelRemovesChildrenFirst(t *testing.T) {
	mock, s := setupMockStore(t)

	mock.ExpectBegin()
	for _, table := range []string{"sales", "purchases", "invoices", "payments", "reservations", "products", "suppliers", "guests", "rooms", "users"} {
		mock.ExpectExec("DELETE FROM `" + table + "` WHERE hotel_id = \\?").
			WithArgs("hotel-1").
			WillReturnResult(sqlmock.NewResult(0, 2))
	}
	mock.ExpectExec("DELETE FROM `hotels` WHERE id = \\?").
		WithArgs("hotel-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, s.DeleteHotel(context.Background(), "hotel-1"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_DeleteHotelMissingRollsBack(t *testing.T) {
	mock, s := setupMockStore(t)

	mock.ExpectBegin()
	for range tenantTables {
		mock.ExpectExec("DELETE FROM").WithArgs("hotel-9").WillReturnResult(sqlmock.NewResult(0, 0))
	}
	mock.ExpectExec("DELETE FROM `hotels`").WithArgs("hotel-9").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	assert.ErrorIs(t, s.DeleteHotel(context.Background(), "hotel-9"), ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_TransactionRollsBack(t *testing.T) {
	mock, s := setupMockStore(t)
	boom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := s.Transaction(context.Background(), func(tx Store) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTranslate(t *testing.T) {
	assert.Nil(t, translate(nil))
	assert.ErrorIs(t, translate(gorm.ErrRecordNotFound), ErrNotFound)
	assert.ErrorIs(t, translate(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}), ErrDuplicate)
	assert.ErrorIs(t, translate(&mysql.MySQLError{Number: 1451}), ErrReferenced)

	other := &mysql.MySQLError{Number: 1213, Message: "Deadlock found"}
	assert.Same(t, other, translate(other))
}
