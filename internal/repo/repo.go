package repo

import (
	"github.com/aldarwish/mishwarpay/internal/pg"
	riderepo "github.com/aldarwish/mishwarpay/internal/repo/ride-repo"
	ridepaymentrepo "github.com/aldarwish/mishwarpay/internal/repo/ridepayment-repo"
	transactionrepo "github.com/aldarwish/mishwarpay/internal/repo/transaction-repo"
	walletrepo "github.com/aldarwish/mishwarpay/internal/repo/wallet-repo"
	"github.com/aldarwish/mishwarpay/internal/service/settlementservice"
	"github.com/aldarwish/mishwarpay/internal/service/walletservice"
)

type Repositories struct {
	WalletRepo      walletservice.WalletRepo
	TransactionRepo walletservice.TransactionRepo
	RidePaymentRepo settlementservice.RidePaymentRepo
	RideRepo        settlementservice.RideRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	walletRepo := walletrepo.New(conn, txManager)
	transactionRepo := transactionrepo.New(conn)
	ridePaymentRepo := ridepaymentrepo.New(conn, txManager)
	rideRepo := riderepo.New(conn)

	return &Repositories{
		WalletRepo:      walletRepo,
		TransactionRepo: transactionRepo,
		RidePaymentRepo: ridePaymentRepo,
		RideRepo:        rideRepo,
	}
}
