package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/aldarwish/mishwarpay/internal/domain"
	"github.com/aldarwish/mishwarpay/internal/dto"
	"github.com/aldarwish/mishwarpay/internal/service/costsplit"
	settlementservice "github.com/aldarwish/mishwarpay/internal/service/settlementservice"
	walletservice "github.com/aldarwish/mishwarpay/internal/service/walletservice"
	"github.com/aldarwish/mishwarpay/pkg/auth"
)

func NewMock(t *testing.T) (*PaymentsHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func newRequest(t *testing.T, method, target, body string, params map[string]string) *http.Request {
	t.Helper()
	var r *http.Request
	if body != "" {
		r = httptest.NewRequest(method, target, bytes.NewBufferString(body))
	} else {
		r = httptest.NewRequest(method, target, nil)
	}

	routeCtx := chi.NewRouteContext()
	for k, v := range params {
		routeCtx.URLParams.Add(k, v)
	}
	ctx := context.WithValue(context.Background(), auth.UserIDKey, 1)
	ctx = context.WithValue(ctx, chi.RouteCtxKey, routeCtx)
	return r.WithContext(ctx)
}

func TestPreviewHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		target       string
		params       map[string]string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:   "Successful preview",
			target: "/api/rides/7/payments/preview?seats=2",
			params: map[string]string{"rideID": "7"},
			prepareMock: func() {
				service.EXPECT().PreviewBookingCost(gomock.Any(), 7, 2).Return(decimal.NewFromFloat(4.000), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Unknown ride",
			target: "/api/rides/99/payments/preview?seats=1",
			params: map[string]string{"rideID": "99"},
			prepareMock: func() {
				service.EXPECT().PreviewBookingCost(gomock.Any(), 99, 1).Return(decimal.Zero, settlementservice.ErrRideNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:   "Invalid seats",
			target: "/api/rides/7/payments/preview?seats=0",
			params: map[string]string{"rideID": "7"},
			prepareMock: func() {
				service.EXPECT().PreviewBookingCost(gomock.Any(), 7, 0).Return(decimal.Zero, settlementservice.ErrInvalidSeats)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Missing seats parameter",
			target:       "/api/rides/7/payments/preview",
			params:       map[string]string{"rideID": "7"},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Malformed ride id",
			target:       "/api/rides/abc/payments/preview?seats=1",
			params:       map[string]string{"rideID": "abc"},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			r := newRequest(t, http.MethodGet, tt.target, "", tt.params)
			w := httptest.NewRecorder()
			handler.Preview(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestEligibilityHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().CheckEligibility(gomock.Any(), 1, 7, 2).
		Return(&settlementservice.Eligibility{Eligible: true, Amount: decimal.NewFromFloat(4.000)}, nil)

	r := newRequest(t, http.MethodGet, "/api/rides/7/payments/eligibility?seats=2", "", map[string]string{"rideID": "7"})
	w := httptest.NewRecorder()
	handler.Eligibility(w, r)
	assert.Equal(t, http.StatusOK, w.Code)

	var body dto.EligibilityResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.True(t, body.Eligible)
	assert.Equal(t, 4.0, body.Amount)
}

func TestGetCostSplitHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Returns split", func(t *testing.T) {
		service.EXPECT().CalculateRideCostSplit(gomock.Any(), 7).Return(&costsplit.Split{
			TotalAmount:    decimal.NewFromFloat(6.000),
			PlatformFee:    decimal.NewFromFloat(0.600),
			DriverEarnings: decimal.NewFromFloat(5.400),
			Entries: []costsplit.Entry{
				{PassengerID: 12, BookingID: 31, Seats: 1, Amount: decimal.NewFromFloat(2.000)},
				{PassengerID: 13, BookingID: 32, Seats: 2, Amount: decimal.NewFromFloat(4.000)},
			},
		}, nil)

		r := newRequest(t, http.MethodGet, "/api/rides/7/payments/split", "", map[string]string{"rideID": "7"})
		w := httptest.NewRecorder()
		handler.GetCostSplit(w, r)
		assert.Equal(t, http.StatusOK, w.Code)

		var body dto.SplitResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.Equal(t, 6.0, body.TotalAmount)
		assert.Len(t, body.Entries, 2)
	})

	t.Run("Unknown ride", func(t *testing.T) {
		service.EXPECT().CalculateRideCostSplit(gomock.Any(), 99).Return(nil, settlementservice.ErrRideNotFound)

		r := newRequest(t, http.MethodGet, "/api/rides/99/payments/split", "", map[string]string{"rideID": "99"})
		w := httptest.NewRecorder()
		handler.GetCostSplit(w, r)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCollectHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Partial failure still returns the report", func(t *testing.T) {
		service.EXPECT().CollectRidePayments(gomock.Any(), 7).Return(&settlementservice.Report{
			RideID: 7,
			Successful: []settlementservice.PassengerResult{
				{PassengerID: 12, BookingID: 31, Amount: decimal.NewFromFloat(2.000)},
			},
			Failed: []settlementservice.PassengerResult{
				{PassengerID: 13, BookingID: 32, Amount: decimal.NewFromFloat(4.000), Reason: "insufficient funds"},
			},
		}, nil)

		r := newRequest(t, http.MethodPost, "/api/rides/7/payments/collect", "", map[string]string{"rideID": "7"})
		w := httptest.NewRecorder()
		handler.Collect(w, r)
		assert.Equal(t, http.StatusOK, w.Code)

		var body dto.ReportResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.Len(t, body.Successful, 1)
		assert.Len(t, body.Failed, 1)
		assert.Equal(t, "insufficient funds", body.Failed[0].Reason)
	})

	t.Run("Frozen settlement", func(t *testing.T) {
		service.EXPECT().CollectRidePayments(gomock.Any(), 7).Return(nil, settlementservice.ErrSettlementFrozen)

		r := newRequest(t, http.MethodPost, "/api/rides/7/payments/collect", "", map[string]string{"rideID": "7"})
		w := httptest.NewRecorder()
		handler.Collect(w, r)
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestPayDriverHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Successful payout", func(t *testing.T) {
		service.EXPECT().PayDriverForRide(gomock.Any(), 7).Return(&domain.RidePayment{
			RideID:         7,
			DriverID:       3,
			TotalAmount:    decimal.NewFromFloat(6.000),
			PlatformFee:    decimal.NewFromFloat(0.600),
			DriverEarnings: decimal.NewFromFloat(5.400),
			Status:         domain.RidePaymentPaidToDriver,
		}, nil)

		r := newRequest(t, http.MethodPost, "/api/rides/7/payments/payout", "", map[string]string{"rideID": "7"})
		w := httptest.NewRecorder()
		handler.PayDriver(w, r)
		assert.Equal(t, http.StatusOK, w.Code)

		var body dto.RidePaymentResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.Equal(t, "paid_to_driver", body.Status)
		assert.Equal(t, 5.4, body.DriverEarnings)
	})

	t.Run("Payments not collected", func(t *testing.T) {
		service.EXPECT().PayDriverForRide(gomock.Any(), 7).Return(nil, settlementservice.ErrPaymentsNotCollected)

		r := newRequest(t, http.MethodPost, "/api/rides/7/payments/payout", "", map[string]string{"rideID": "7"})
		w := httptest.NewRecorder()
		handler.PayDriver(w, r)
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestPayBookingHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful payment",
			prepareMock: func() {
				service.EXPECT().PayForBooking(gomock.Any(), 31).Return(&domain.Transaction{
					TransactionID: "TXN-20250114-9F2C41AB",
					Type:          domain.TxRidePayment,
					Direction:     domain.DirectionDebit,
					Amount:        decimal.NewFromFloat(2.000),
					Status:        domain.TxStatusCompleted,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Already paid",
			prepareMock: func() {
				service.EXPECT().PayForBooking(gomock.Any(), 31).Return(nil, settlementservice.ErrAlreadyPaid)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Insufficient funds",
			prepareMock: func() {
				service.EXPECT().PayForBooking(gomock.Any(), 31).Return(nil, walletservice.ErrInsufficientFunds)
			},
			expectedCode: http.StatusPaymentRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := newRequest(t, http.MethodPost, "/api/bookings/31/pay", "", map[string]string{"bookingID": "31"})
			w := httptest.NewRecorder()
			handler.PayBooking(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestRefundBookingHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Refund with reason", func(t *testing.T) {
		service.EXPECT().RefundBooking(gomock.Any(), 31, "ride cancelled").Return(&domain.Transaction{
			TransactionID: "TXN-20250117-EF56AB78",
			Type:          domain.TxRefund,
			Direction:     domain.DirectionCredit,
			Amount:        decimal.NewFromFloat(2.000),
			Status:        domain.TxStatusCompleted,
		}, nil)

		r := newRequest(t, http.MethodPost, "/api/bookings/31/refund", `{"reason": "ride cancelled"}`, map[string]string{"bookingID": "31"})
		w := httptest.NewRecorder()
		handler.RefundBooking(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Unpaid entry", func(t *testing.T) {
		service.EXPECT().RefundBooking(gomock.Any(), 31, "").Return(nil, settlementservice.ErrPaymentNotCompleted)

		r := newRequest(t, http.MethodPost, "/api/bookings/31/refund", "", map[string]string{"bookingID": "31"})
		w := httptest.NewRecorder()
		handler.RefundBooking(w, r)
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestRefundRideHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().RefundAllForRide(gomock.Any(), 7, "ride cancelled").Return(&settlementservice.Report{
		RideID: 7,
		Successful: []settlementservice.PassengerResult{
			{PassengerID: 12, BookingID: 31, Amount: decimal.NewFromFloat(2.000)},
			{PassengerID: 13, BookingID: 32, Amount: decimal.NewFromFloat(4.000)},
		},
	}, nil)

	r := newRequest(t, http.MethodPost, "/api/rides/7/payments/refund", `{"reason": "ride cancelled"}`, map[string]string{"rideID": "7"})
	w := httptest.NewRecorder()
	handler.RefundRide(w, r)
	assert.Equal(t, http.StatusOK, w.Code)

	var body dto.ReportResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Len(t, body.Successful, 2)
}

func TestRecomputeBookingHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Frozen settlement", func(t *testing.T) {
		service.EXPECT().AddOrRecomputeBooking(gomock.Any(), 7, 31).Return(nil, settlementservice.ErrSettlementFrozen)

		r := newRequest(t, http.MethodPost, "/api/rides/7/payments/bookings/31", "", map[string]string{"rideID": "7", "bookingID": "31"})
		w := httptest.NewRecorder()
		handler.RecomputeBooking(w, r)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Recomputed successfully", func(t *testing.T) {
		service.EXPECT().AddOrRecomputeBooking(gomock.Any(), 7, 31).Return(&domain.RidePayment{
			RideID:   7,
			DriverID: 3,
			Status:   domain.RidePaymentPending,
		}, nil)

		r := newRequest(t, http.MethodPost, "/api/rides/7/payments/bookings/31", "", map[string]string{"rideID": "7", "bookingID": "31"})
		w := httptest.NewRecorder()
		handler.RecomputeBooking(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestInitializeHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().InitializeRidePayment(gomock.Any(), 7).Return(&domain.RidePayment{
		RideID:   7,
		DriverID: 3,
		Status:   domain.RidePaymentPending,
	}, nil)

	r := newRequest(t, http.MethodPost, "/api/rides/7/payments", "", map[string]string{"rideID": "7"})
	w := httptest.NewRecorder()
	handler.Initialize(w, r)
	assert.Equal(t, http.StatusOK, w.Code)
}
