package handlers

import (
	"net/http"

	_ "github.com/aldarwish/mishwarpay/docs"
	paymentshandlers "github.com/aldarwish/mishwarpay/internal/handlers/payments"
	wallethandlers "github.com/aldarwish/mishwarpay/internal/handlers/wallet"
	"github.com/aldarwish/mishwarpay/internal/service"
	"github.com/aldarwish/mishwarpay/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type WalletHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	TopUp(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
	GetEarningsSummary(w http.ResponseWriter, r *http.Request)
	GetSpendingSummary(w http.ResponseWriter, r *http.Request)
}

type PaymentsHandler interface {
	Preview(w http.ResponseWriter, r *http.Request)
	Eligibility(w http.ResponseWriter, r *http.Request)
	GetCostSplit(w http.ResponseWriter, r *http.Request)
	Initialize(w http.ResponseWriter, r *http.Request)
	RecomputeBooking(w http.ResponseWriter, r *http.Request)
	Collect(w http.ResponseWriter, r *http.Request)
	PayDriver(w http.ResponseWriter, r *http.Request)
	RefundRide(w http.ResponseWriter, r *http.Request)
	PayBooking(w http.ResponseWriter, r *http.Request)
	RefundBooking(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	WalletHandler   WalletHandler
	PaymentsHandler PaymentsHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		WalletHandler:   wallethandlers.New(s.WalletService),
		PaymentsHandler: paymentshandlers.New(s.SettlementService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/wallet", func(r chi.Router) {
				r.Get("/", h.WalletHandler.GetBalance)
				r.Post("/topup", h.WalletHandler.TopUp)
				r.Post("/withdraw", h.WalletHandler.Withdraw)
				r.Get("/transactions", h.WalletHandler.GetTransactions)
				r.Get("/earnings", h.WalletHandler.GetEarningsSummary)
				r.Get("/spending", h.WalletHandler.GetSpendingSummary)
			})
			r.Route("/rides/{rideID}/payments", func(r chi.Router) {
				r.Post("/", h.PaymentsHandler.Initialize)
				r.Get("/preview", h.PaymentsHandler.Preview)
				r.Get("/eligibility", h.PaymentsHandler.Eligibility)
				r.Get("/split", h.PaymentsHandler.GetCostSplit)
				r.Post("/bookings/{bookingID}", h.PaymentsHandler.RecomputeBooking)
				r.Post("/collect", h.PaymentsHandler.Collect)
				r.Post("/payout", h.PaymentsHandler.PayDriver)
				r.Post("/refund", h.PaymentsHandler.RefundRide)
			})
			r.Route("/bookings/{bookingID}", func(r chi.Router) {
				r.Post("/pay", h.PaymentsHandler.PayBooking)
				r.Post("/refund", h.PaymentsHandler.RefundBooking)
			})
		})
	})

	return r
}
