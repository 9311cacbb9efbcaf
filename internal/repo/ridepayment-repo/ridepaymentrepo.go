package ridepaymentrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/aldarwish/mishwarpay/internal/domain"
	"github.com/aldarwish/mishwarpay/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) GetByRideID(ctx context.Context, rideID int) (*domain.RidePayment, error) {
	query := `
        SELECT id, ride_id, driver_id, total_amount, platform_fee_pct, platform_fee, driver_earnings, status, created_at, updated_at
        FROM ride_payments
        WHERE ride_id = $1
    `
	var rp domain.RidePayment
	err := r.db.QueryRow(ctx, query, rideID).Scan(
		&rp.ID, &rp.RideID, &rp.DriverID, &rp.TotalAmount, &rp.PlatformFeePct,
		&rp.PlatformFee, &rp.DriverEarnings, &rp.Status, &rp.CreatedAt, &rp.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get ride payment", zap.Error(err))
		return nil, err
	}

	passengers, err := r.listPassengers(ctx, rp.ID)
	if err != nil {
		return nil, err
	}
	rp.Passengers = passengers
	return &rp, nil
}

func (r *Repository) listPassengers(ctx context.Context, ridePaymentID int) ([]domain.PassengerPayment, error) {
	query := `
        SELECT id, ride_payment_id, passenger_id, booking_id, seats, amount, status, transaction_id, paid_at, refunded_at
        FROM passenger_payments
        WHERE ride_payment_id = $1
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, query, ridePaymentID)
	if err != nil {
		zap.L().Error("failed to fetch passenger payments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var passengers []domain.PassengerPayment
	for rows.Next() {
		var pp domain.PassengerPayment
		err := rows.Scan(&pp.ID, &pp.RidePaymentID, &pp.PassengerID, &pp.BookingID, &pp.Seats,
			&pp.Amount, &pp.Status, &pp.TransactionID, &pp.PaidAt, &pp.RefundedAt)
		if err != nil {
			zap.L().Error("failed to scan passenger payment row", zap.Error(err))
			return nil, err
		}
		passengers = append(passengers, pp)
	}

	return passengers, nil
}

func (r *Repository) Create(ctx context.Context, rp *domain.RidePayment) (*domain.RidePayment, error) {
	query := `
		INSERT INTO ride_payments (ride_id, driver_id, total_amount, platform_fee_pct, platform_fee, driver_earnings, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		rp.RideID, rp.DriverID, rp.TotalAmount, rp.PlatformFeePct, rp.PlatformFee, rp.DriverEarnings, rp.Status,
	).Scan(&rp.ID, &rp.CreatedAt, &rp.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save ride payment", zap.Error(err))
		return nil, err
	}
	return rp, nil
}

// UpdateTotals rewrites the computed split and status. Only valid while the
// settlement is still pending or collecting; the service enforces that.
func (r *Repository) UpdateTotals(ctx context.Context, rp *domain.RidePayment) error {
	query := `
		UPDATE ride_payments
		SET total_amount = $1, platform_fee = $2, driver_earnings = $3, status = $4, updated_at = NOW()
		WHERE id = $5
	`
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, rp.TotalAmount, rp.PlatformFee, rp.DriverEarnings, rp.Status, rp.ID)
		if err != nil {
			zap.L().Error("failed to update ride payment totals", zap.Error(err))
			return err
		}
		for _, pp := range rp.Passengers {
			if err := r.upsertPassenger(ctx, rp.ID, pp); err != nil {
				return err
			}
		}
		return r.deletePendingNotIn(ctx, rp.ID, rp.Passengers)
	})
}

func (r *Repository) upsertPassenger(ctx context.Context, ridePaymentID int, pp domain.PassengerPayment) error {
	query := `
		INSERT INTO passenger_payments (ride_payment_id, passenger_id, booking_id, seats, amount, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (ride_payment_id, booking_id) DO UPDATE
		SET seats = EXCLUDED.seats, amount = EXCLUDED.amount
		WHERE passenger_payments.status = 'pending' OR passenger_payments.status = 'failed'
	`
	_, err := r.db.Exec(ctx, query, ridePaymentID, pp.PassengerID, pp.BookingID, pp.Seats, pp.Amount, pp.Status)
	if err != nil {
		zap.L().Error("failed to upsert passenger payment", zap.Error(err))
	}
	return err
}

func (r *Repository) deletePendingNotIn(ctx context.Context, ridePaymentID int, keep []domain.PassengerPayment) error {
	bookingIDs := make([]int, 0, len(keep))
	for _, pp := range keep {
		bookingIDs = append(bookingIDs, pp.BookingID)
	}
	query := `
		DELETE FROM passenger_payments
		WHERE ride_payment_id = $1 AND status = 'pending' AND NOT (booking_id = ANY($2))
	`
	_, err := r.db.Exec(ctx, query, ridePaymentID, bookingIDs)
	if err != nil {
		zap.L().Error("failed to prune passenger payments", zap.Error(err))
	}
	return err
}

func (r *Repository) UpdateStatus(ctx context.Context, id int, status domain.RidePaymentStatus) error {
	query := `UPDATE ride_payments SET status = $1, updated_at = NOW() WHERE id = $2`
	_, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		zap.L().Error("failed to update ride payment status", zap.Error(err))
	}
	return err
}

func (r *Repository) MarkPassengerPaid(ctx context.Context, id int, transactionID string, paidAt time.Time) error {
	query := `
		UPDATE passenger_payments
		SET status = 'paid', transaction_id = $1, paid_at = $2
		WHERE id = $3
	`
	_, err := r.db.Exec(ctx, query, transactionID, paidAt, id)
	if err != nil {
		zap.L().Error("failed to mark passenger payment paid", zap.Error(err))
	}
	return err
}

func (r *Repository) MarkPassengerFailed(ctx context.Context, id int) error {
	query := `UPDATE passenger_payments SET status = 'failed' WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("failed to mark passenger payment failed", zap.Error(err))
	}
	return err
}

func (r *Repository) MarkPassengerRefunded(ctx context.Context, id int, transactionID string, refundedAt time.Time) error {
	query := `
		UPDATE passenger_payments
		SET status = 'refunded', transaction_id = $1, refunded_at = $2
		WHERE id = $3
	`
	_, err := r.db.Exec(ctx, query, transactionID, refundedAt, id)
	if err != nil {
		zap.L().Error("failed to mark passenger payment refunded", zap.Error(err))
	}
	return err
}
