package riderepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/aldarwish/mishwarpay/internal/domain"
	"github.com/aldarwish/mishwarpay/internal/pg"
)

// Repository reads the ride/booking model owned by the ride service. This
// core never writes to those tables.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetRide(ctx context.Context, rideID int) (*domain.Ride, error) {
	var ride domain.Ride
	err := r.db.QueryRow(ctx, "SELECT id, driver_id, price_per_seat, status FROM rides WHERE id = $1", rideID).
		Scan(&ride.ID, &ride.DriverID, &ride.PricePerSeat, &ride.Status)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find ride", zap.Error(err))
		return nil, err
	}
	return &ride, nil
}

func (r *Repository) GetBooking(ctx context.Context, bookingID int) (*domain.Booking, error) {
	var booking domain.Booking
	err := r.db.QueryRow(ctx, "SELECT id, ride_id, passenger_id, seats, status FROM bookings WHERE id = $1", bookingID).
		Scan(&booking.ID, &booking.RideID, &booking.PassengerID, &booking.Seats, &booking.Status)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find booking", zap.Error(err))
		return nil, err
	}
	return &booking, nil
}

// ListQualifyingBookings returns the bookings that participate in the cost
// split: confirmed or completed ones.
func (r *Repository) ListQualifyingBookings(ctx context.Context, rideID int) ([]domain.Booking, error) {
	query := `
        SELECT id, ride_id, passenger_id, seats, status
        FROM bookings
        WHERE ride_id = $1 AND status IN ('confirmed', 'completed')
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, query, rideID)
	if err != nil {
		zap.L().Error("failed to fetch bookings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.RideID, &b.PassengerID, &b.Seats, &b.Status); err != nil {
			zap.L().Error("failed to scan booking row", zap.Error(err))
			return nil, err
		}
		bookings = append(bookings, b)
	}

	return bookings, nil
}
