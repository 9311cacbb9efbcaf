package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/aldarwish/mishwarpay/internal/config"
	"github.com/aldarwish/mishwarpay/internal/live"
	"github.com/aldarwish/mishwarpay/internal/notify"
	"github.com/aldarwish/mishwarpay/internal/pg"
	"github.com/aldarwish/mishwarpay/internal/repo"
	settlementservice "github.com/aldarwish/mishwarpay/internal/service/settlementservice"
	walletservice "github.com/aldarwish/mishwarpay/internal/service/walletservice"
	"github.com/aldarwish/mishwarpay/pkg/clients"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repos := &repo.Repositories{
		WalletRepo:      walletservice.NewMockWalletRepo(ctrl),
		TransactionRepo: walletservice.NewMockTransactionRepo(ctrl),
		RidePaymentRepo: settlementservice.NewMockRidePaymentRepo(ctrl),
		RideRepo:        settlementservice.NewMockRideRepo(ctrl),
	}

	cfg := &config.Config{Currency: "BHD", PlatformFeePct: 10, MinTopUp: 0.100}
	txManager := pg.NewMockTXManager(ctrl)
	notifier := notify.New(cfg, clients.NewHTTPClient())
	defer notifier.Close()
	publisher := live.New("")

	services := New(repos, txManager, notifier, publisher, cfg)

	assert.NotNil(t, services.WalletService)
	assert.NotNil(t, services.SettlementService)
}
