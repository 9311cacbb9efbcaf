package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type WalletStatus string

const (
	WalletActive    WalletStatus = "active"
	WalletFrozen    WalletStatus = "frozen"
	WalletSuspended WalletStatus = "suspended"
)

type Wallet struct {
	ID             int             `db:"id"`
	UserID         int             `db:"user_id"`
	Balance        decimal.Decimal `db:"balance"`
	PendingBalance decimal.Decimal `db:"pending_balance"`
	Currency       string          `db:"currency"`
	Status         WalletStatus    `db:"status"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at"`
}

type TransactionType string

const (
	TxTopUp       TransactionType = "top_up"
	TxWithdrawal  TransactionType = "withdrawal"
	TxRidePayment TransactionType = "ride_payment"
	TxRideEarning TransactionType = "ride_earning"
	TxRefund      TransactionType = "refund"
	TxPlatformFee TransactionType = "platform_fee"
	TxBonus       TransactionType = "bonus"
	TxPenalty     TransactionType = "penalty"
)

type TransactionDirection string

const (
	DirectionCredit TransactionDirection = "credit"
	DirectionDebit  TransactionDirection = "debit"
)

type TransactionStatus string

const (
	TxStatusPending   TransactionStatus = "pending"
	TxStatusCompleted TransactionStatus = "completed"
	TxStatusFailed    TransactionStatus = "failed"
	TxStatusCancelled TransactionStatus = "cancelled"
	TxStatusRefunded  TransactionStatus = "refunded"
)

// Transaction is an immutable ledger entry. Once Status is completed the row
// is never updated; corrections are recorded as new refund transactions.
type Transaction struct {
	ID            int                  `db:"id"`
	TransactionID string               `db:"transaction_id"`
	UserID        int                  `db:"user_id"`
	Type          TransactionType      `db:"type"`
	Direction     TransactionDirection `db:"direction"`
	Amount        decimal.Decimal      `db:"amount"`
	RideID        *int                 `db:"ride_id"`
	BookingID     *int                 `db:"booking_id"`
	FromUserID    *int                 `db:"from_user_id"`
	ToUserID      *int                 `db:"to_user_id"`
	Status        TransactionStatus    `db:"status"`
	BalanceAfter  decimal.Decimal      `db:"balance_after"`
	Description   string               `db:"description"`
	MethodMeta    *string              `db:"method_meta"`
	CreatedAt     time.Time            `db:"created_at"`
}

type RidePaymentStatus string

const (
	RidePaymentPending           RidePaymentStatus = "pending"
	RidePaymentCollecting        RidePaymentStatus = "collecting"
	RidePaymentCollected         RidePaymentStatus = "collected"
	RidePaymentPaidToDriver      RidePaymentStatus = "paid_to_driver"
	RidePaymentPartiallyRefunded RidePaymentStatus = "partially_refunded"
	RidePaymentFullyRefunded     RidePaymentStatus = "fully_refunded"
)

type PassengerPaymentStatus string

const (
	PassengerPaymentPending  PassengerPaymentStatus = "pending"
	PassengerPaymentPaid     PassengerPaymentStatus = "paid"
	PassengerPaymentRefunded PassengerPaymentStatus = "refunded"
	PassengerPaymentFailed   PassengerPaymentStatus = "failed"
)

// RidePayment tracks the settlement lifecycle of one ride. Totals are
// recalculated from bookings while still pending/collecting and frozen once
// collection completes.
type RidePayment struct {
	ID             int                `db:"id"`
	RideID         int                `db:"ride_id"`
	DriverID       int                `db:"driver_id"`
	TotalAmount    decimal.Decimal    `db:"total_amount"`
	PlatformFeePct decimal.Decimal    `db:"platform_fee_pct"`
	PlatformFee    decimal.Decimal    `db:"platform_fee"`
	DriverEarnings decimal.Decimal    `db:"driver_earnings"`
	Status         RidePaymentStatus  `db:"status"`
	Passengers     []PassengerPayment `db:"-"`
	CreatedAt      time.Time          `db:"created_at"`
	UpdatedAt      time.Time          `db:"updated_at"`
}

type PassengerPayment struct {
	ID            int                    `db:"id"`
	RidePaymentID int                    `db:"ride_payment_id"`
	PassengerID   int                    `db:"passenger_id"`
	BookingID     int                    `db:"booking_id"`
	Seats         int                    `db:"seats"`
	Amount        decimal.Decimal        `db:"amount"`
	Status        PassengerPaymentStatus `db:"status"`
	TransactionID *string                `db:"transaction_id"`
	PaidAt        *time.Time             `db:"paid_at"`
	RefundedAt    *time.Time             `db:"refunded_at"`
}

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// Ride and Booking form the read model owned by the ride service; this core
// only ever reads them.
type Ride struct {
	ID           int             `db:"id"`
	DriverID     int             `db:"driver_id"`
	PricePerSeat decimal.Decimal `db:"price_per_seat"`
	Status       string          `db:"status"`
}

type Booking struct {
	ID          int           `db:"id"`
	RideID      int           `db:"ride_id"`
	PassengerID int           `db:"passenger_id"`
	Seats       int           `db:"seats"`
	Status      BookingStatus `db:"status"`
}
