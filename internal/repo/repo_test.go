package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/aldarwish/mishwarpay/internal/pg"
	riderepo "github.com/aldarwish/mishwarpay/internal/repo/ride-repo"
	ridepaymentrepo "github.com/aldarwish/mishwarpay/internal/repo/ridepayment-repo"
	transactionrepo "github.com/aldarwish/mishwarpay/internal/repo/transaction-repo"
	walletrepo "github.com/aldarwish/mishwarpay/internal/repo/wallet-repo"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	mockTxManager := pg.NewMockTXManager(ctrl)
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.WalletRepo)
	assert.NotNil(t, repo.TransactionRepo)
	assert.NotNil(t, repo.RidePaymentRepo)
	assert.NotNil(t, repo.RideRepo)

	assert.IsType(t, &walletrepo.Repository{}, repo.WalletRepo)
	assert.IsType(t, &transactionrepo.Repository{}, repo.TransactionRepo)
	assert.IsType(t, &ridepaymentrepo.Repository{}, repo.RidePaymentRepo)
	assert.IsType(t, &riderepo.Repository{}, repo.RideRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
