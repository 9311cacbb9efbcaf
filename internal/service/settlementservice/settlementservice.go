package settlementservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/aldarwish/mishwarpay/internal/config"
	"github.com/aldarwish/mishwarpay/internal/domain"
	"github.com/aldarwish/mishwarpay/internal/live"
	"github.com/aldarwish/mishwarpay/internal/notify"
	"github.com/aldarwish/mishwarpay/internal/pg"
	"github.com/aldarwish/mishwarpay/internal/service/costsplit"
	walletservice "github.com/aldarwish/mishwarpay/internal/service/walletservice"
)

type RideRepo interface {
	GetRide(ctx context.Context, rideID int) (*domain.Ride, error)
	GetBooking(ctx context.Context, bookingID int) (*domain.Booking, error)
	ListQualifyingBookings(ctx context.Context, rideID int) ([]domain.Booking, error)
}

type RidePaymentRepo interface {
	GetByRideID(ctx context.Context, rideID int) (*domain.RidePayment, error)
	Create(ctx context.Context, rp *domain.RidePayment) (*domain.RidePayment, error)
	UpdateTotals(ctx context.Context, rp *domain.RidePayment) error
	UpdateStatus(ctx context.Context, id int, status domain.RidePaymentStatus) error
	MarkPassengerPaid(ctx context.Context, id int, transactionID string, paidAt time.Time) error
	MarkPassengerFailed(ctx context.Context, id int) error
	MarkPassengerRefunded(ctx context.Context, id int, transactionID string, refundedAt time.Time) error
}

type Wallets interface {
	GetOrCreateWallet(ctx context.Context, userID int) (*domain.Wallet, error)
	CanDebit(ctx context.Context, userID int, amount decimal.Decimal) (bool, error)
	Record(ctx context.Context, spec walletservice.RecordSpec) (*domain.Transaction, error)
	RecordStandalone(ctx context.Context, spec walletservice.RecordSpec) (*domain.Transaction, error)
	ClearPending(ctx context.Context, userID int, amount decimal.Decimal) error
}

type Notifier interface {
	Notify(ctx context.Context, e notify.Event)
	NotifyAll(ctx context.Context, events []notify.Event)
}

type Publisher interface {
	Publish(ctx context.Context, channel string, update live.Update) error
}

var (
	ErrRideNotFound         = errors.New("ride not found")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrPaymentsNotCollected = errors.New("ride payments not collected yet")
	ErrPaymentNotCompleted  = errors.New("passenger payment is not completed")
	ErrAlreadyPaid          = errors.New("passenger payment already paid")
	ErrSettlementFrozen     = errors.New("ride settlement is frozen")
	ErrInvalidSeats         = errors.New("invalid seat count")
)

type Service struct {
	rideRepo  RideRepo
	rpRepo    RidePaymentRepo
	wallets   Wallets
	txManager pg.TXManager
	notifier  Notifier
	publisher Publisher
	feePct    decimal.Decimal
}

func New(rideRepo RideRepo, rpRepo RidePaymentRepo, wallets Wallets, txManager pg.TXManager, notifier Notifier, publisher Publisher, cfg *config.Config) *Service {
	return &Service{
		rideRepo:  rideRepo,
		rpRepo:    rpRepo,
		wallets:   wallets,
		txManager: txManager,
		notifier:  notifier,
		publisher: publisher,
		feePct:    decimal.NewFromFloat(cfg.PlatformFeePct),
	}
}

// PassengerResult is one line of a collection or refund report.
type PassengerResult struct {
	PassengerID int
	BookingID   int
	Amount      decimal.Decimal
	Reason      string
}

// Report aggregates per-passenger outcomes. Partial failure is an expected
// result of multi-party collection, not an error.
type Report struct {
	RideID     int
	Successful []PassengerResult
	Failed     []PassengerResult
}

func (s *Service) PreviewBookingCost(ctx context.Context, rideID, seats int) (decimal.Decimal, error) {
	if seats <= 0 {
		return decimal.Zero, ErrInvalidSeats
	}
	ride, err := s.rideRepo.GetRide(ctx, rideID)
	if err != nil {
		return decimal.Zero, err
	}
	if ride == nil {
		return decimal.Zero, ErrRideNotFound
	}
	return ride.PricePerSeat.Mul(decimal.NewFromInt(int64(seats))).Round(costsplit.Precision), nil
}

type Eligibility struct {
	Eligible bool
	Amount   decimal.Decimal
}

// CheckEligibility is advisory: the authoritative check happens inside the
// debit itself at collection time.
func (s *Service) CheckEligibility(ctx context.Context, userID, rideID, seats int) (*Eligibility, error) {
	amount, err := s.PreviewBookingCost(ctx, rideID, seats)
	if err != nil {
		return nil, err
	}
	ok, err := s.wallets.CanDebit(ctx, userID, amount)
	if err != nil {
		return nil, err
	}
	return &Eligibility{Eligible: ok, Amount: amount}, nil
}

func (s *Service) CalculateRideCostSplit(ctx context.Context, rideID int) (*costsplit.Split, error) {
	ride, err := s.rideRepo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if ride == nil {
		return nil, ErrRideNotFound
	}

	feePct := s.feePct
	rp, err := s.rpRepo.GetByRideID(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if rp != nil {
		feePct = rp.PlatformFeePct
	}

	bookings, err := s.rideRepo.ListQualifyingBookings(ctx, rideID)
	if err != nil {
		return nil, err
	}
	split := costsplit.Calculate(ride.PricePerSeat, feePct, bookings)
	return &split, nil
}

// InitializeRidePayment creates the per-ride settlement record if missing
// and recomputes the split while the settlement is still mutable.
func (s *Service) InitializeRidePayment(ctx context.Context, rideID int) (*domain.RidePayment, error) {
	ride, err := s.rideRepo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if ride == nil {
		return nil, ErrRideNotFound
	}

	rp, err := s.rpRepo.GetByRideID(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if rp == nil {
		rp, err = s.rpRepo.Create(ctx, &domain.RidePayment{
			RideID:         rideID,
			DriverID:       ride.DriverID,
			PlatformFeePct: s.feePct,
			Status:         domain.RidePaymentPending,
		})
		if err != nil {
			return nil, err
		}
	}

	if rp.Status == domain.RidePaymentPending || rp.Status == domain.RidePaymentCollecting {
		return s.recompute(ctx, ride, rp)
	}
	return rp, nil
}

// AddOrRecomputeBooking re-runs the cost split after a booking change. The
// settlement must still be mutable; once collection completes the totals are
// frozen.
func (s *Service) AddOrRecomputeBooking(ctx context.Context, rideID, bookingID int) (*domain.RidePayment, error) {
	booking, err := s.rideRepo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil || booking.RideID != rideID {
		return nil, ErrBookingNotFound
	}

	rp, err := s.rpRepo.GetByRideID(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if rp != nil && rp.Status != domain.RidePaymentPending && rp.Status != domain.RidePaymentCollecting {
		return nil, ErrSettlementFrozen
	}
	return s.InitializeRidePayment(ctx, rideID)
}

// recompute replaces the settlement totals and pending entries with a fresh
// cost split. Paid entries are never touched; the repository upsert only
// rewrites pending and failed ones.
func (s *Service) recompute(ctx context.Context, ride *domain.Ride, rp *domain.RidePayment) (*domain.RidePayment, error) {
	bookings, err := s.rideRepo.ListQualifyingBookings(ctx, ride.ID)
	if err != nil {
		return nil, err
	}

	split := costsplit.Calculate(ride.PricePerSeat, rp.PlatformFeePct, bookings)
	rp.TotalAmount = split.TotalAmount
	rp.PlatformFee = split.PlatformFee
	rp.DriverEarnings = split.DriverEarnings

	entries := make([]domain.PassengerPayment, 0, len(split.Entries))
	for _, e := range split.Entries {
		entries = append(entries, domain.PassengerPayment{
			RidePaymentID: rp.ID,
			PassengerID:   e.PassengerID,
			BookingID:     e.BookingID,
			Seats:         e.Seats,
			Amount:        e.Amount,
			Status:        domain.PassengerPaymentPending,
		})
	}
	rp.Passengers = entries

	if err := s.rpRepo.UpdateTotals(ctx, rp); err != nil {
		return nil, err
	}
	return s.rpRepo.GetByRideID(ctx, ride.ID)
}

// CollectRidePayments runs the sequential per-passenger collection scan. Each
// passenger settles in its own transaction scope; a failed passenger never
// rolls back the ones already collected. Re-running retries only entries that
// are not paid yet.
func (s *Service) CollectRidePayments(ctx context.Context, rideID int) (*Report, error) {
	rp, err := s.InitializeRidePayment(ctx, rideID)
	if err != nil {
		return nil, err
	}

	switch rp.Status {
	case domain.RidePaymentPending, domain.RidePaymentCollecting, domain.RidePaymentCollected:
	default:
		return nil, ErrSettlementFrozen
	}

	if rp.Status == domain.RidePaymentPending && len(rp.Passengers) > 0 {
		if err := s.rpRepo.UpdateStatus(ctx, rp.ID, domain.RidePaymentCollecting); err != nil {
			return nil, err
		}
	}

	report := &Report{RideID: rideID}
	var events []notify.Event
	for _, pp := range rp.Passengers {
		pp := pp
		switch pp.Status {
		case domain.PassengerPaymentPaid:
			report.Successful = append(report.Successful, PassengerResult{PassengerID: pp.PassengerID, BookingID: pp.BookingID, Amount: pp.Amount})
			continue
		case domain.PassengerPaymentRefunded:
			continue
		}

		result, err := s.collectOne(ctx, rp, pp)
		if err != nil {
			return nil, err
		}
		if result.Reason == "" {
			report.Successful = append(report.Successful, result)
			events = append(events, notify.Event{Kind: notify.EventPaymentReceived, UserID: pp.PassengerID, RideID: &rp.RideID, Amount: pp.Amount})
		} else {
			report.Failed = append(report.Failed, result)
			events = append(events, notify.Event{Kind: notify.EventPaymentFailed, UserID: pp.PassengerID, RideID: &rp.RideID, Amount: pp.Amount})
		}
	}

	if err := s.verifyCollected(ctx, rideID); err != nil {
		return nil, err
	}
	s.notifier.NotifyAll(ctx, events)
	return report, nil
}

// collectOne debits one passenger. The debit and the entry mark commit in one
// transaction scope so a paid entry always carries its ledger transaction.
// Insufficient funds and inactive wallets are expected outcomes reported per
// entry; anything else aborts the scan.
func (s *Service) collectOne(ctx context.Context, rp *domain.RidePayment, pp domain.PassengerPayment) (PassengerResult, error) {
	result := PassengerResult{PassengerID: pp.PassengerID, BookingID: pp.BookingID, Amount: pp.Amount}

	var tr *domain.Transaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		tr, err = s.wallets.Record(ctx, walletservice.RecordSpec{
			UserID:      pp.PassengerID,
			Type:        domain.TxRidePayment,
			Direction:   domain.DirectionDebit,
			Amount:      pp.Amount,
			RideID:      &rp.RideID,
			BookingID:   &pp.BookingID,
			FromUserID:  &pp.PassengerID,
			ToUserID:    &rp.DriverID,
			Description: fmt.Sprintf("payment for ride %d", rp.RideID),
		})
		if err != nil {
			return err
		}
		return s.rpRepo.MarkPassengerPaid(ctx, pp.ID, tr.TransactionID, time.Now())
	})
	if err != nil {
		if errors.Is(err, walletservice.ErrInsufficientFunds) || errors.Is(err, walletservice.ErrWalletInactive) {
			if mErr := s.rpRepo.MarkPassengerFailed(ctx, pp.ID); mErr != nil {
				return result, mErr
			}
			zap.L().Info("passenger payment failed",
				zap.Int("rideID", rp.RideID), zap.Int("passengerID", pp.PassengerID), zap.Error(err))
			result.Reason = err.Error()
			return result, nil
		}
		return result, err
	}

	s.publisher.Publish(ctx, live.UserChannel(pp.PassengerID), live.Update{
		Type: live.EventBalanceChanged, UserID: pp.PassengerID, Amount: tr.BalanceAfter.StringFixed(costsplit.Precision),
	})
	s.publisher.Publish(ctx, live.RideChannel(rp.RideID), live.Update{
		Type: live.EventPaymentCollected, RideID: rp.RideID, UserID: pp.PassengerID, Amount: pp.Amount.StringFixed(costsplit.Precision),
	})
	return result, nil
}

// verifyCollected advances the aggregate status only after re-reading entry
// data; collected is never assumed from in-memory state.
func (s *Service) verifyCollected(ctx context.Context, rideID int) error {
	fresh, err := s.rpRepo.GetByRideID(ctx, rideID)
	if err != nil {
		return err
	}
	if fresh == nil || len(fresh.Passengers) == 0 {
		return nil
	}
	for _, pp := range fresh.Passengers {
		if pp.Status != domain.PassengerPaymentPaid {
			return nil
		}
	}
	if fresh.Status == domain.RidePaymentPending || fresh.Status == domain.RidePaymentCollecting {
		return s.rpRepo.UpdateStatus(ctx, fresh.ID, domain.RidePaymentCollected)
	}
	return nil
}

// PayForBooking settles a single booking outside the bulk collection scan,
// keeping its settlement entry in sync.
func (s *Service) PayForBooking(ctx context.Context, bookingID int) (*domain.Transaction, error) {
	booking, err := s.rideRepo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	rp, err := s.InitializeRidePayment(ctx, booking.RideID)
	if err != nil {
		return nil, err
	}

	entry := findEntry(rp.Passengers, bookingID)
	if entry == nil {
		return nil, ErrBookingNotFound
	}
	switch entry.Status {
	case domain.PassengerPaymentPaid:
		return nil, ErrAlreadyPaid
	case domain.PassengerPaymentRefunded:
		return nil, ErrSettlementFrozen
	}
	if rp.Status != domain.RidePaymentPending && rp.Status != domain.RidePaymentCollecting {
		return nil, ErrSettlementFrozen
	}

	if rp.Status == domain.RidePaymentPending {
		if err := s.rpRepo.UpdateStatus(ctx, rp.ID, domain.RidePaymentCollecting); err != nil {
			return nil, err
		}
	}

	var tr *domain.Transaction
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		tr, err = s.wallets.Record(ctx, walletservice.RecordSpec{
			UserID:      entry.PassengerID,
			Type:        domain.TxRidePayment,
			Direction:   domain.DirectionDebit,
			Amount:      entry.Amount,
			RideID:      &rp.RideID,
			BookingID:   &entry.BookingID,
			FromUserID:  &entry.PassengerID,
			ToUserID:    &rp.DriverID,
			Description: fmt.Sprintf("payment for ride %d", rp.RideID),
		})
		if err != nil {
			return err
		}
		return s.rpRepo.MarkPassengerPaid(ctx, entry.ID, tr.TransactionID, time.Now())
	})
	if err != nil {
		return nil, err
	}
	if err := s.verifyCollected(ctx, rp.RideID); err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, notify.Event{Kind: notify.EventPaymentReceived, UserID: entry.PassengerID, RideID: &rp.RideID, Amount: entry.Amount})
	s.publisher.Publish(ctx, live.UserChannel(entry.PassengerID), live.Update{
		Type: live.EventBalanceChanged, UserID: entry.PassengerID, Amount: tr.BalanceAfter.StringFixed(costsplit.Precision),
	})
	return tr, nil
}

// PayDriverForRide disburses the driver earnings. It requires every
// passenger entry to be paid; the two-step pending credit and immediate
// clearance is the hook for a future holding period.
func (s *Service) PayDriverForRide(ctx context.Context, rideID int) (*domain.RidePayment, error) {
	ride, err := s.rideRepo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if ride == nil {
		return nil, ErrRideNotFound
	}

	rp, err := s.rpRepo.GetByRideID(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if rp == nil || rp.Status != domain.RidePaymentCollected {
		return nil, ErrPaymentsNotCollected
	}

	// The payout is one atomic unit: the earnings credit, its clearance, the
	// fee record and the status advance commit together or not at all, so a
	// retry can never find a paid-out ledger still marked collected.
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.wallets.Record(ctx, walletservice.RecordSpec{
			UserID:      rp.DriverID,
			Type:        domain.TxRideEarning,
			Direction:   domain.DirectionCredit,
			Amount:      rp.DriverEarnings,
			RideID:      &rp.RideID,
			Description: fmt.Sprintf("earnings for ride %d", rp.RideID),
			ToPending:   true,
		}); err != nil {
			return err
		}
		if err := s.wallets.ClearPending(ctx, rp.DriverID, rp.DriverEarnings); err != nil {
			return err
		}

		if _, err := s.wallets.RecordStandalone(ctx, walletservice.RecordSpec{
			UserID:      rp.DriverID,
			Type:        domain.TxPlatformFee,
			Direction:   domain.DirectionDebit,
			Amount:      rp.PlatformFee,
			RideID:      &rp.RideID,
			Description: fmt.Sprintf("platform fee withheld for ride %d", rp.RideID),
		}); err != nil {
			return err
		}

		return s.rpRepo.UpdateStatus(ctx, rp.ID, domain.RidePaymentPaidToDriver)
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, notify.Event{Kind: notify.EventEarningsReceived, UserID: rp.DriverID, RideID: &rp.RideID, Amount: rp.DriverEarnings})
	s.publisher.Publish(ctx, live.UserChannel(rp.DriverID), live.Update{
		Type: live.EventEarningsReceived, UserID: rp.DriverID, RideID: rp.RideID, Amount: rp.DriverEarnings.StringFixed(costsplit.Precision),
	})

	return s.rpRepo.GetByRideID(ctx, rideID)
}

// RefundBooking credits the passenger back; the original ride_payment entry
// stays untouched, the refund is a new transaction.
func (s *Service) RefundBooking(ctx context.Context, bookingID int, reason string) (*domain.Transaction, error) {
	booking, err := s.rideRepo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	rp, err := s.rpRepo.GetByRideID(ctx, booking.RideID)
	if err != nil {
		return nil, err
	}
	if rp == nil {
		return nil, ErrPaymentNotCompleted
	}
	if err := refundableStatus(rp.Status); err != nil {
		return nil, err
	}

	entry := findEntry(rp.Passengers, bookingID)
	if entry == nil {
		return nil, ErrBookingNotFound
	}

	tr, err := s.refundEntry(ctx, rp, entry, reason)
	if err != nil {
		return nil, err
	}
	if err := s.recomputeRefundStatus(ctx, rp.RideID); err != nil {
		return nil, err
	}
	s.notifier.Notify(ctx, notify.Event{Kind: notify.EventRefundProcessed, UserID: entry.PassengerID, RideID: &rp.RideID, Amount: entry.Amount})
	return tr, nil
}

// refundableStatus gates refunds on the aggregate state: money only flows
// back out of settlements the collection scan has fully closed. Refunding
// during collection would flip the ride into a refund state and strand the
// passengers still pending.
func refundableStatus(status domain.RidePaymentStatus) error {
	switch status {
	case domain.RidePaymentCollected, domain.RidePaymentPaidToDriver, domain.RidePaymentPartiallyRefunded:
		return nil
	case domain.RidePaymentFullyRefunded:
		return ErrSettlementFrozen
	default:
		return ErrPaymentsNotCollected
	}
}

// RefundAllForRide refunds every paid entry, collecting per-passenger
// outcomes the same way collection does.
func (s *Service) RefundAllForRide(ctx context.Context, rideID int, reason string) (*Report, error) {
	ride, err := s.rideRepo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if ride == nil {
		return nil, ErrRideNotFound
	}

	rp, err := s.rpRepo.GetByRideID(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if rp == nil {
		return &Report{RideID: rideID}, nil
	}
	if err := refundableStatus(rp.Status); err != nil {
		return nil, err
	}

	report := &Report{RideID: rideID}
	var events []notify.Event
	for _, pp := range rp.Passengers {
		pp := pp
		if pp.Status != domain.PassengerPaymentPaid {
			continue
		}
		result := PassengerResult{PassengerID: pp.PassengerID, BookingID: pp.BookingID, Amount: pp.Amount}
		if _, err := s.refundEntry(ctx, rp, &pp, reason); err != nil {
			if errors.Is(err, walletservice.ErrWalletInactive) {
				result.Reason = err.Error()
				report.Failed = append(report.Failed, result)
				continue
			}
			return nil, err
		}
		report.Successful = append(report.Successful, result)
		events = append(events, notify.Event{Kind: notify.EventRefundProcessed, UserID: pp.PassengerID, RideID: &rp.RideID, Amount: pp.Amount})
	}

	if err := s.recomputeRefundStatus(ctx, rideID); err != nil {
		return nil, err
	}
	s.notifier.NotifyAll(ctx, events)
	return report, nil
}

func (s *Service) refundEntry(ctx context.Context, rp *domain.RidePayment, entry *domain.PassengerPayment, reason string) (*domain.Transaction, error) {
	if entry.Status != domain.PassengerPaymentPaid {
		return nil, ErrPaymentNotCompleted
	}

	description := fmt.Sprintf("refund for ride %d", rp.RideID)
	if reason != "" {
		description = fmt.Sprintf("refund for ride %d: %s", rp.RideID, reason)
	}

	var tr *domain.Transaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		tr, err = s.wallets.Record(ctx, walletservice.RecordSpec{
			UserID:      entry.PassengerID,
			Type:        domain.TxRefund,
			Direction:   domain.DirectionCredit,
			Amount:      entry.Amount,
			RideID:      &rp.RideID,
			BookingID:   &entry.BookingID,
			FromUserID:  &rp.DriverID,
			ToUserID:    &entry.PassengerID,
			Description: description,
		})
		if err != nil {
			return err
		}
		return s.rpRepo.MarkPassengerRefunded(ctx, entry.ID, tr.TransactionID, time.Now())
	})
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, live.UserChannel(entry.PassengerID), live.Update{
		Type: live.EventRefundIssued, UserID: entry.PassengerID, RideID: rp.RideID, Amount: entry.Amount.StringFixed(costsplit.Precision),
	})
	return tr, nil
}

// recomputeRefundStatus derives the aggregate refund state from fresh entry
// data: every entry refunded means fully refunded, any refunded entry means
// partially refunded.
func (s *Service) recomputeRefundStatus(ctx context.Context, rideID int) error {
	fresh, err := s.rpRepo.GetByRideID(ctx, rideID)
	if err != nil {
		return err
	}
	if fresh == nil || len(fresh.Passengers) == 0 {
		return nil
	}

	refunded := 0
	for _, pp := range fresh.Passengers {
		if pp.Status == domain.PassengerPaymentRefunded {
			refunded++
		}
	}

	var status domain.RidePaymentStatus
	switch {
	case refunded == len(fresh.Passengers):
		status = domain.RidePaymentFullyRefunded
	case refunded > 0:
		status = domain.RidePaymentPartiallyRefunded
	default:
		return nil
	}
	if status == fresh.Status {
		return nil
	}
	return s.rpRepo.UpdateStatus(ctx, fresh.ID, status)
}

func findEntry(entries []domain.PassengerPayment, bookingID int) *domain.PassengerPayment {
	for i := range entries {
		if entries[i].BookingID == bookingID {
			return &entries[i]
		}
	}
	return nil
}
