package services

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-saas/models"
	"hotel-saas/store"
)

var (
	sqlRoomColumns        = []string{"id", "created_at", "hotel_id", "room_number", "type", "price_per_night", "capacity", "status", "notes"}
	sqlReservationColumns = []string{"id", "created_at", "hotel_id", "room_id", "guest_id", "check_in", "check_out", "status", "total_amount", "payment_status", "created_by"}
)

const (
	selectReservationByID = "SELECT \\* FROM `reservations` WHERE hotel_id = \\? AND id = \\?"
	selectRoomForUpdate   = "SELECT \\* FROM `rooms` WHERE hotel_id = \\? AND id = \\? .*FOR UPDATE"
	selectOverlapForShare = "SELECT \\* FROM `reservations` WHERE hotel_id = \\? AND \\(?room_id = \\? AND check_out > \\? AND check_in < \\?\\)? ORDER BY check_in ASC FOR SHARE"
)

func setupSQLReservations(t *testing.T) (sqlmock.Sqlmock, *ReservationService) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	mock.MatchExpectationsInOrder(true)

	gdb, err := gorm.Open(gormmysql.New(gormmysql.Config{Conn: db, SkipInitializeWithVersion: true}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return mock, NewReservationService(store.NewGormStore(gdb))
}

func reservationRow(id, roomID string, in, out time.Time, status models.ReservationStatus) *sqlmock.Rows {
	return sqlmock.NewRows(sqlReservationColumns).
		AddRow(id, time.Now(), "hotel-1", roomID, "guest-1", in, out, string(status), "300.00", "pending", nil)
}

func roomRow() *sqlmock.Rows {
	return sqlmock.NewRows(sqlRoomColumns).
		AddRow("room-1", time.Now(), "hotel-1", "101", "double", "100.00", 2, "available", nil)
}

func TestReservationService_UpdateChecksOverlapWithLockingRead(t *testing.T) {
	mock, svc := setupSQLReservations(t)
	in, out := day("2024-01-20"), day("2024-01-23")

	mock.ExpectBegin()
	mock.ExpectQuery(selectReservationByID).
		WillReturnRows(reservationRow("res-1", "room-1", day("2024-01-10"), day("2024-01-12"), models.ReservationConfirmed))
	mock.ExpectQuery(selectRoomForUpdate).
		WillReturnRows(roomRow())
	mock.ExpectQuery(selectOverlapForShare).
		WithArgs("hotel-1", "room-1", in, out).
		WillReturnRows(sqlmock.NewRows(sqlReservationColumns))
	mock.ExpectExec("UPDATE `reservations` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(selectReservationByID).
		WillReturnRows(reservationRow("res-1", "room-1", in, out, models.ReservationConfirmed))
	mock.ExpectCommit()

	updated, err := svc.Update(context.Background(), "hotel-1", "res-1", models.ReservationPatch{CheckIn: &in, CheckOut: &out})
	require.NoError(t, err)
	assert.True(t, updated.CheckIn.Equal(in))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationService_UpdateSeesStayCommittedWhileWaiting(t *testing.T) {
	mock, svc := setupSQLReservations(t)
	in, out := day("2024-01-15"), day("2024-01-18")

	mock.ExpectBegin()
	mock.ExpectQuery(selectReservationByID).
		WillReturnRows(reservationRow("res-1", "room-1", day("2024-01-01"), day("2024-01-03"), models.ReservationPending))
	mock.ExpectQuery(selectRoomForUpdate).
		WillReturnRows(roomRow())
	// Committed by another booking after this transaction's first read.
	mock.ExpectQuery(selectOverlapForShare).
		WithArgs("hotel-1", "room-1", in, out).
		WillReturnRows(reservationRow("res-2", "room-1", day("2024-01-16"), day("2024-01-20"), models.ReservationConfirmed))
	mock.ExpectRollback()

	_, err := svc.Update(context.Background(), "hotel-1", "res-1", models.ReservationPatch{CheckIn: &in, CheckOut: &out})
	assert.ErrorIs(t, err, ErrBookingConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationService_CreateLocksRoomBeforeOverlapRead(t *testing.T) {
	mock, svc := setupSQLReservations(t)
	in, out := day("2024-01-15"), day("2024-01-18")

	mock.ExpectBegin()
	mock.ExpectQuery(selectRoomForUpdate).
		WillReturnRows(roomRow())
	mock.ExpectQuery("SELECT \\* FROM `guests` WHERE hotel_id = \\? AND id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "hotel_id", "name"}).
			AddRow("guest-1", time.Now(), "hotel-1", "Marie"))
	mock.ExpectQuery(selectOverlapForShare).
		WithArgs("hotel-1", "room-1", in, out).
		WillReturnRows(reservationRow("res-2", "room-1", day("2024-01-16"), day("2024-01-20"), models.ReservationConfirmed))
	mock.ExpectRollback()

	_, err := svc.Create(context.Background(), "hotel-1", ReservationInput{
		RoomID: "room-1", GuestID: "guest-1", CheckIn: in, CheckOut: out,
	})
	assert.ErrorIs(t, err, ErrBookingConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}
