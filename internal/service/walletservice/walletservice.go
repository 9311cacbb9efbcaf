package walletservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/aldarwish/mishwarpay/internal/config"
	"github.com/aldarwish/mishwarpay/internal/domain"
	"github.com/aldarwish/mishwarpay/internal/notify"
	"github.com/aldarwish/mishwarpay/internal/pg"
	transactionrepo "github.com/aldarwish/mishwarpay/internal/repo/transaction-repo"
)

type WalletRepo interface {
	GetByUserID(ctx context.Context, userID int) (*domain.Wallet, error)
	GetOrCreate(ctx context.Context, userID int, currency string) (*domain.Wallet, error)
	GetForUpdate(ctx context.Context, userID int) (*domain.Wallet, error)
	ApplyDelta(ctx context.Context, walletID int, balanceDelta, pendingDelta decimal.Decimal) (*domain.Wallet, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
	ListByUserID(ctx context.Context, userID int, filter transactionrepo.Filter) ([]domain.Transaction, error)
	SumByType(ctx context.Context, userID int, txType domain.TransactionType, direction domain.TransactionDirection, from, to time.Time) (decimal.Decimal, int, error)
}

type Notifier interface {
	Notify(ctx context.Context, e notify.Event)
}

var (
	ErrInsufficientFunds        = errors.New("insufficient funds")
	ErrInsufficientPendingFunds = errors.New("insufficient pending funds")
	ErrWalletInactive           = errors.New("wallet is not active")
	ErrInvalidAmount            = errors.New("invalid amount")
)

type Service struct {
	walletRepo WalletRepo
	txRepo     TransactionRepo
	txManager  pg.TXManager
	notifier   Notifier
	currency   string
	minTopUp   decimal.Decimal
}

func New(walletRepo WalletRepo, txRepo TransactionRepo, txManager pg.TXManager, notifier Notifier, cfg *config.Config) *Service {
	return &Service{
		walletRepo: walletRepo,
		txRepo:     txRepo,
		txManager:  txManager,
		notifier:   notifier,
		currency:   cfg.Currency,
		minTopUp:   decimal.NewFromFloat(cfg.MinTopUp),
	}
}

// RecordSpec describes one wallet mutation and the ledger entry paired with
// it. ToPending routes a credit into the pending balance instead of the
// available one (the driver-earnings clearance hook).
type RecordSpec struct {
	UserID      int
	Type        domain.TransactionType
	Direction   domain.TransactionDirection
	Amount      decimal.Decimal
	RideID      *int
	BookingID   *int
	FromUserID  *int
	ToUserID    *int
	Description string
	MethodMeta  *string
	ToPending   bool
}

// newTransactionID builds a collision-resistant, human-readable identifier.
func newTransactionID() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("TXN-%s-%s", time.Now().Format("20060102"), suffix)
}

// Record applies the wallet mutation and persists its ledger entry within one
// database transaction: a failure at any step leaves neither effect visible.
func (s *Service) Record(ctx context.Context, spec RecordSpec) (*domain.Transaction, error) {
	if spec.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}

	var tr *domain.Transaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.walletRepo.GetOrCreate(ctx, spec.UserID, s.currency); err != nil {
			return err
		}

		wallet, err := s.walletRepo.GetForUpdate(ctx, spec.UserID)
		if err != nil {
			return err
		}
		if wallet == nil {
			return fmt.Errorf("wallet not found for user %d", spec.UserID)
		}
		if wallet.Status != domain.WalletActive {
			return ErrWalletInactive
		}

		balanceDelta := spec.Amount
		pendingDelta := decimal.Zero
		if spec.Direction == domain.DirectionDebit {
			if wallet.Balance.LessThan(spec.Amount) {
				return ErrInsufficientFunds
			}
			balanceDelta = spec.Amount.Neg()
		} else if spec.ToPending {
			balanceDelta = decimal.Zero
			pendingDelta = spec.Amount
		}

		updated, err := s.walletRepo.ApplyDelta(ctx, wallet.ID, balanceDelta, pendingDelta)
		if err != nil {
			return err
		}
		if updated == nil {
			// The conditional write is the authoritative guard; the checks
			// above only classify the failure for the caller.
			return ErrInsufficientFunds
		}

		tr = &domain.Transaction{
			TransactionID: newTransactionID(),
			UserID:        spec.UserID,
			Type:          spec.Type,
			Direction:     spec.Direction,
			Amount:        spec.Amount,
			RideID:        spec.RideID,
			BookingID:     spec.BookingID,
			FromUserID:    spec.FromUserID,
			ToUserID:      spec.ToUserID,
			Status:        domain.TxStatusCompleted,
			BalanceAfter:  updated.Balance,
			Description:   spec.Description,
			MethodMeta:    spec.MethodMeta,
		}
		tr, err = s.txRepo.Create(ctx, tr)
		return err
	})
	if err != nil {
		return nil, err
	}
	return tr, nil
}

// RecordStandalone persists a completed ledger entry with no wallet effect,
// used for the informational platform-fee bookkeeping record.
func (s *Service) RecordStandalone(ctx context.Context, spec RecordSpec) (*domain.Transaction, error) {
	if spec.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}

	tr := &domain.Transaction{
		TransactionID: newTransactionID(),
		UserID:        spec.UserID,
		Type:          spec.Type,
		Direction:     spec.Direction,
		Amount:        spec.Amount,
		RideID:        spec.RideID,
		BookingID:     spec.BookingID,
		FromUserID:    spec.FromUserID,
		ToUserID:      spec.ToUserID,
		Status:        domain.TxStatusCompleted,
		BalanceAfter:  decimal.Zero,
		Description:   spec.Description,
	}
	return s.txRepo.Create(ctx, tr)
}

func (s *Service) GetOrCreateWallet(ctx context.Context, userID int) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetOrCreate(ctx, userID, s.currency)
	if err != nil {
		zap.L().Error("failed to get or create wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

// CanDebit is an advisory snapshot: a later debit re-checks inside its own
// atomic unit, so callers must treat a positive answer as a hint only.
func (s *Service) CanDebit(ctx context.Context, userID int, amount decimal.Decimal) (bool, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return false, ErrInvalidAmount
	}
	wallet, err := s.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		return false, err
	}
	if wallet == nil {
		return false, nil
	}
	return wallet.Status == domain.WalletActive && wallet.Balance.GreaterThanOrEqual(amount), nil
}

// ClearPending moves funds from the pending balance to the available one.
func (s *Service) ClearPending(ctx context.Context, userID int, amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		wallet, err := s.walletRepo.GetForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if wallet == nil {
			return fmt.Errorf("wallet not found for user %d", userID)
		}
		if wallet.Status != domain.WalletActive {
			return ErrWalletInactive
		}
		if wallet.PendingBalance.LessThan(amount) {
			return ErrInsufficientPendingFunds
		}

		updated, err := s.walletRepo.ApplyDelta(ctx, wallet.ID, amount, amount.Neg())
		if err != nil {
			return err
		}
		if updated == nil {
			return ErrInsufficientPendingFunds
		}
		return nil
	})
}

func (s *Service) TopUp(ctx context.Context, userID int, amount decimal.Decimal, methodMeta *string) (*domain.Transaction, error) {
	if amount.LessThan(s.minTopUp) {
		return nil, ErrInvalidAmount
	}

	tr, err := s.Record(ctx, RecordSpec{
		UserID:      userID,
		Type:        domain.TxTopUp,
		Direction:   domain.DirectionCredit,
		Amount:      amount,
		Description: "wallet top-up",
		MethodMeta:  methodMeta,
	})
	if err != nil {
		zap.L().Error("top-up failed", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}

	s.notifier.Notify(ctx, notify.Event{Kind: notify.EventTopUpCompleted, UserID: userID, Amount: amount})
	return tr, nil
}

// Withdraw debits immediately; the payout itself is handled by an external
// processor, so the ledger entry marks the funds as in processing.
func (s *Service) Withdraw(ctx context.Context, userID int, amount decimal.Decimal, methodMeta *string) (*domain.Transaction, error) {
	tr, err := s.Record(ctx, RecordSpec{
		UserID:      userID,
		Type:        domain.TxWithdrawal,
		Direction:   domain.DirectionDebit,
		Amount:      amount,
		Description: "withdrawal submitted for external processing",
		MethodMeta:  methodMeta,
	})
	if err != nil {
		zap.L().Error("withdrawal failed", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}

	s.notifier.Notify(ctx, notify.Event{Kind: notify.EventWithdrawalSubmitted, UserID: userID, Amount: amount})
	return tr, nil
}

func (s *Service) GetTransactionHistory(ctx context.Context, userID int, filter transactionrepo.Filter) ([]domain.Transaction, error) {
	transactions, err := s.txRepo.ListByUserID(ctx, userID, filter)
	if err != nil {
		zap.L().Error("failed to fetch transaction history", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}

type Summary struct {
	Total decimal.Decimal
	Count int
	From  time.Time
	To    time.Time
}

func (s *Service) GetEarningsSummary(ctx context.Context, driverID int, from, to time.Time) (*Summary, error) {
	total, count, err := s.txRepo.SumByType(ctx, driverID, domain.TxRideEarning, domain.DirectionCredit, from, to)
	if err != nil {
		return nil, err
	}
	return &Summary{Total: total, Count: count, From: from, To: to}, nil
}

func (s *Service) GetSpendingSummary(ctx context.Context, userID int, from, to time.Time) (*Summary, error) {
	total, count, err := s.txRepo.SumByType(ctx, userID, domain.TxRidePayment, domain.DirectionDebit, from, to)
	if err != nil {
		return nil, err
	}
	return &Summary{Total: total, Count: count, From: from, To: to}, nil
}
