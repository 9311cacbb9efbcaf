package riderepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/aldarwish/mishwarpay/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_GetRide(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Returns ride", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, driver_id, price_per_seat, status FROM rides WHERE id = $1`)).
			WithArgs(7).
			WillReturnRows(pgxmock.NewRows([]string{"id", "driver_id", "price_per_seat", "status"}).
				AddRow(7, 3, decimal.NewFromFloat(2.000), "completed"))

		ride, err := repo.GetRide(context.Background(), 7)
		assert.NoError(t, err)
		assert.NotNil(t, ride)
		assert.Equal(t, 3, ride.DriverID)
		assert.True(t, decimal.NewFromFloat(2.000).Equal(ride.PricePerSeat))
	})

	t.Run("Missing ride returns nil", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM rides`)).
			WithArgs(99).
			WillReturnError(pgx.ErrNoRows)

		ride, err := repo.GetRide(context.Background(), 99)
		assert.NoError(t, err)
		assert.Nil(t, ride)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM rides`)).
			WithArgs(7).
			WillReturnError(errors.New("database error"))

		ride, err := repo.GetRide(context.Background(), 7)
		assert.Error(t, err)
		assert.Nil(t, ride)
	})
}

func TestRepository_GetBooking(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Returns booking", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM bookings WHERE id = $1`)).
			WithArgs(31).
			WillReturnRows(pgxmock.NewRows([]string{"id", "ride_id", "passenger_id", "seats", "status"}).
				AddRow(31, 7, 12, 1, domain.BookingConfirmed))

		booking, err := repo.GetBooking(context.Background(), 31)
		assert.NoError(t, err)
		assert.NotNil(t, booking)
		assert.Equal(t, 7, booking.RideID)
		assert.Equal(t, 12, booking.PassengerID)
	})

	t.Run("Missing booking returns nil", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM bookings WHERE id = $1`)).
			WithArgs(99).
			WillReturnError(pgx.ErrNoRows)

		booking, err := repo.GetBooking(context.Background(), 99)
		assert.NoError(t, err)
		assert.Nil(t, booking)
	})
}

func TestRepository_ListQualifyingBookings(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Returns confirmed and completed bookings", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`status IN ('confirmed', 'completed')`)).
			WithArgs(7).
			WillReturnRows(pgxmock.NewRows([]string{"id", "ride_id", "passenger_id", "seats", "status"}).
				AddRow(31, 7, 12, 1, domain.BookingConfirmed).
				AddRow(32, 7, 13, 2, domain.BookingCompleted))

		bookings, err := repo.ListQualifyingBookings(context.Background(), 7)
		assert.NoError(t, err)
		assert.Len(t, bookings, 2)
		assert.Equal(t, 2, bookings[1].Seats)
	})

	t.Run("No qualifying bookings", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`status IN ('confirmed', 'completed')`)).
			WithArgs(8).
			WillReturnRows(pgxmock.NewRows([]string{"id", "ride_id", "passenger_id", "seats", "status"}))

		bookings, err := repo.ListQualifyingBookings(context.Background(), 8)
		assert.NoError(t, err)
		assert.Empty(t, bookings)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`status IN ('confirmed', 'completed')`)).
			WithArgs(7).
			WillReturnError(errors.New("database error"))

		bookings, err := repo.ListQualifyingBookings(context.Background(), 7)
		assert.Error(t, err)
		assert.Nil(t, bookings)
	})
}
