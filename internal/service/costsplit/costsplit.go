package costsplit

import (
	"github.com/shopspring/decimal"

	"github.com/aldarwish/mishwarpay/internal/domain"
)

// Precision is the ledger precision: BHD carries three decimal places.
const Precision = 3

type Entry struct {
	PassengerID int
	BookingID   int
	Seats       int
	Amount      decimal.Decimal
}

type Split struct {
	Entries        []Entry
	TotalAmount    decimal.Decimal
	PlatformFee    decimal.Decimal
	DriverEarnings decimal.Decimal
}

// Calculate computes the cost split of a ride over its qualifying bookings.
// Each passenger pays price-per-seat times their own seat count, so the split
// is proportional to seats booked, not an equal division of the total.
// Pure function: same bookings in, same split out, however often it runs.
func Calculate(pricePerSeat decimal.Decimal, feePct decimal.Decimal, bookings []domain.Booking) Split {
	split := Split{
		Entries:        make([]Entry, 0, len(bookings)),
		TotalAmount:    decimal.Zero,
		PlatformFee:    decimal.Zero,
		DriverEarnings: decimal.Zero,
	}

	for _, b := range bookings {
		amount := pricePerSeat.Mul(decimal.NewFromInt(int64(b.Seats))).Round(Precision)
		split.Entries = append(split.Entries, Entry{
			PassengerID: b.PassengerID,
			BookingID:   b.ID,
			Seats:       b.Seats,
			Amount:      amount,
		})
		split.TotalAmount = split.TotalAmount.Add(amount)
	}

	split.PlatformFee = split.TotalAmount.Mul(feePct).Div(decimal.NewFromInt(100)).Round(Precision)
	// Earnings are the remainder, so fee plus earnings always equals total.
	split.DriverEarnings = split.TotalAmount.Sub(split.PlatformFee)

	return split
}
