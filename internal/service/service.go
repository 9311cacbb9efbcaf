package service

import (
	paymentshandlers "github.com/aldarwish/mishwarpay/internal/handlers/payments"
	wallethandlers "github.com/aldarwish/mishwarpay/internal/handlers/wallet"

	"github.com/aldarwish/mishwarpay/internal/config"
	"github.com/aldarwish/mishwarpay/internal/live"
	"github.com/aldarwish/mishwarpay/internal/notify"
	"github.com/aldarwish/mishwarpay/internal/pg"
	"github.com/aldarwish/mishwarpay/internal/repo"
	settlementservice "github.com/aldarwish/mishwarpay/internal/service/settlementservice"
	walletservice "github.com/aldarwish/mishwarpay/internal/service/walletservice"
)

type Services struct {
	WalletService     wallethandlers.Service
	SettlementService paymentshandlers.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, notifier *notify.Service, publisher *live.Broadcaster, cfg *config.Config) *Services {
	walletService := walletservice.New(repo.WalletRepo, repo.TransactionRepo, txManager, notifier, cfg)
	settlementService := settlementservice.New(repo.RideRepo, repo.RidePaymentRepo, walletService, txManager, notifier, publisher, cfg)

	return &Services{
		WalletService:     walletService,
		SettlementService: settlementService,
	}
}
