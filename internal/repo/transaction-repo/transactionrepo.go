package transactionrepo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/aldarwish/mishwarpay/internal/domain"
	"github.com/aldarwish/mishwarpay/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Create persists a ledger entry. Completed transactions are never updated
// afterwards; there is deliberately no Update method on this repository.
func (r *Repository) Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	query := `
		INSERT INTO transactions (transaction_id, user_id, type, direction, amount,
			ride_id, booking_id, from_user_id, to_user_id, status, balance_after, description, method_meta)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		tx.TransactionID, tx.UserID, tx.Type, tx.Direction, tx.Amount,
		tx.RideID, tx.BookingID, tx.FromUserID, tx.ToUserID, tx.Status,
		tx.BalanceAfter, tx.Description, tx.MethodMeta,
	).Scan(&tx.ID, &tx.CreatedAt)
	if err != nil {
		zap.L().Error("can't save transaction", zap.Error(err))
		return nil, err
	}
	return tx, nil
}

type Filter struct {
	Type  *domain.TransactionType
	From  *time.Time
	To    *time.Time
	Limit int
}

func (r *Repository) ListByUserID(ctx context.Context, userID int, filter Filter) ([]domain.Transaction, error) {
	var sb strings.Builder
	sb.WriteString(`
        SELECT id, transaction_id, user_id, type, direction, amount,
               ride_id, booking_id, from_user_id, to_user_id, status, balance_after, description, method_meta, created_at
        FROM transactions
        WHERE user_id = $1`)
	args := []any{userID}

	if filter.Type != nil {
		args = append(args, *filter.Type)
		fmt.Fprintf(&sb, " AND type = $%d", len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		fmt.Fprintf(&sb, " AND created_at >= $%d", len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		fmt.Fprintf(&sb, " AND created_at < $%d", len(args))
	}
	sb.WriteString(" ORDER BY created_at DESC")
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		fmt.Fprintf(&sb, " LIMIT $%d", len(args))
	}

	rows, err := r.db.Query(ctx, sb.String(), args...)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var tx domain.Transaction
		err := rows.Scan(&tx.ID, &tx.TransactionID, &tx.UserID, &tx.Type, &tx.Direction, &tx.Amount,
			&tx.RideID, &tx.BookingID, &tx.FromUserID, &tx.ToUserID, &tx.Status, &tx.BalanceAfter,
			&tx.Description, &tx.MethodMeta, &tx.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, tx)
	}

	return transactions, nil
}

// SumByType aggregates completed transactions of one type and direction over
// a period. Backs the earnings and spending summaries.
func (r *Repository) SumByType(ctx context.Context, userID int, txType domain.TransactionType, direction domain.TransactionDirection, from, to time.Time) (decimal.Decimal, int, error) {
	query := `
        SELECT COALESCE(SUM(amount), 0), COUNT(*)
        FROM transactions
        WHERE user_id = $1 AND type = $2 AND direction = $3 AND status = 'completed'
          AND created_at >= $4 AND created_at < $5
    `
	var total decimal.Decimal
	var count int
	err := r.db.QueryRow(ctx, query, userID, txType, direction, from, to).Scan(&total, &count)
	if err != nil {
		zap.L().Error("failed to aggregate transactions", zap.Error(err))
		return decimal.Zero, 0, err
	}
	return total, count, nil
}
