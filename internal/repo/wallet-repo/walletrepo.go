package walletrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
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

func scanWallet(row pgx.Row) (*domain.Wallet, error) {
	var w domain.Wallet
	err := row.Scan(&w.ID, &w.UserID, &w.Balance, &w.PendingBalance, &w.Currency, &w.Status, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *Repository) GetByUserID(ctx context.Context, userID int) (*domain.Wallet, error) {
	query := `
        SELECT id, user_id, balance, pending_balance, currency, status, created_at, updated_at
        FROM wallets
        WHERE user_id = $1
    `
	wallet, err := scanWallet(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

// GetOrCreate resolves the wallet for userID, creating it lazily on the first
// financial event. The unique constraint on user_id keeps this idempotent.
func (r *Repository) GetOrCreate(ctx context.Context, userID int, currency string) (*domain.Wallet, error) {
	query := `
        INSERT INTO wallets (user_id, currency)
        VALUES ($1, $2)
        ON CONFLICT (user_id) DO UPDATE SET updated_at = NOW()
        RETURNING id, user_id, balance, pending_balance, currency, status, created_at, updated_at
    `
	wallet, err := scanWallet(r.db.QueryRow(ctx, query, userID, currency))
	if err != nil {
		zap.L().Error("failed to get or create wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

// GetForUpdate row-locks the wallet for the scope of the surrounding
// transaction, serializing concurrent mutations on the same wallet.
func (r *Repository) GetForUpdate(ctx context.Context, userID int) (*domain.Wallet, error) {
	query := `
        SELECT id, user_id, balance, pending_balance, currency, status, created_at, updated_at
        FROM wallets
        WHERE user_id = $1
        FOR UPDATE
    `
	wallet, err := scanWallet(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to lock wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

// ApplyDelta adjusts balance and pending_balance in a single conditional
// statement. The non-negative and active-status guards ride along in the
// WHERE clause, so no wallet can be driven negative even without the row
// lock. Returns nil when the guards reject the update.
func (r *Repository) ApplyDelta(ctx context.Context, walletID int, balanceDelta, pendingDelta decimal.Decimal) (*domain.Wallet, error) {
	query := `
        UPDATE wallets
        SET balance = balance + $1, pending_balance = pending_balance + $2, updated_at = NOW()
        WHERE id = $3
          AND status = 'active'
          AND balance + $1 >= 0
          AND pending_balance + $2 >= 0
        RETURNING id, user_id, balance, pending_balance, currency, status, created_at, updated_at
    `
	wallet, err := scanWallet(r.db.QueryRow(ctx, query, balanceDelta, pendingDelta, walletID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to apply wallet delta", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}
