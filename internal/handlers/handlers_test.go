package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	_ "github.com/aldarwish/mishwarpay/docs"
	paymentshandlers "github.com/aldarwish/mishwarpay/internal/handlers/payments"
	wallethandlers "github.com/aldarwish/mishwarpay/internal/handlers/wallet"
	"github.com/aldarwish/mishwarpay/internal/service"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		WalletService:     wallethandlers.NewMockService(ctrl),
		SettlementService: paymentshandlers.NewMockService(ctrl),
	}

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWalletHandler := NewMockWalletHandler(ctrl)
	mockPaymentsHandler := NewMockPaymentsHandler(ctrl)

	mockWalletHandler.EXPECT().GetBalance(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().TopUp(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().Withdraw(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().GetTransactions(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().GetEarningsSummary(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().GetSpendingSummary(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentsHandler.EXPECT().Initialize(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentsHandler.EXPECT().Preview(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentsHandler.EXPECT().Eligibility(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentsHandler.EXPECT().GetCostSplit(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentsHandler.EXPECT().RecomputeBooking(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentsHandler.EXPECT().Collect(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentsHandler.EXPECT().PayDriver(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentsHandler.EXPECT().RefundRide(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentsHandler.EXPECT().PayBooking(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentsHandler.EXPECT().RefundBooking(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		WalletHandler:   mockWalletHandler,
		PaymentsHandler: mockPaymentsHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"GET", "/api/wallet", http.StatusUnauthorized},
		{"POST", "/api/wallet/topup", http.StatusUnauthorized},
		{"POST", "/api/wallet/withdraw", http.StatusUnauthorized},
		{"GET", "/api/wallet/transactions", http.StatusUnauthorized},
		{"GET", "/api/wallet/earnings", http.StatusUnauthorized},
		{"GET", "/api/wallet/spending", http.StatusUnauthorized},
		{"POST", "/api/rides/7/payments", http.StatusUnauthorized},
		{"GET", "/api/rides/7/payments/preview", http.StatusUnauthorized},
		{"GET", "/api/rides/7/payments/eligibility", http.StatusUnauthorized},
		{"GET", "/api/rides/7/payments/split", http.StatusUnauthorized},
		{"POST", "/api/rides/7/payments/collect", http.StatusUnauthorized},
		{"POST", "/api/rides/7/payments/payout", http.StatusUnauthorized},
		{"POST", "/api/rides/7/payments/refund", http.StatusUnauthorized},
		{"POST", "/api/bookings/31/pay", http.StatusUnauthorized},
		{"POST", "/api/bookings/31/refund", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
