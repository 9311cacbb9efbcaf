package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/aldarwish/mishwarpay/internal/domain"
	"github.com/aldarwish/mishwarpay/internal/dto"
	"github.com/aldarwish/mishwarpay/internal/service/costsplit"
	settlementservice "github.com/aldarwish/mishwarpay/internal/service/settlementservice"
	walletservice "github.com/aldarwish/mishwarpay/internal/service/walletservice"
	"github.com/aldarwish/mishwarpay/pkg/auth"
	"github.com/aldarwish/mishwarpay/pkg/utils"
	"github.com/shopspring/decimal"
)

type Service interface {
	PreviewBookingCost(ctx context.Context, rideID, seats int) (decimal.Decimal, error)
	CheckEligibility(ctx context.Context, userID, rideID, seats int) (*settlementservice.Eligibility, error)
	CalculateRideCostSplit(ctx context.Context, rideID int) (*costsplit.Split, error)
	InitializeRidePayment(ctx context.Context, rideID int) (*domain.RidePayment, error)
	AddOrRecomputeBooking(ctx context.Context, rideID, bookingID int) (*domain.RidePayment, error)
	CollectRidePayments(ctx context.Context, rideID int) (*settlementservice.Report, error)
	PayForBooking(ctx context.Context, bookingID int) (*domain.Transaction, error)
	PayDriverForRide(ctx context.Context, rideID int) (*domain.RidePayment, error)
	RefundBooking(ctx context.Context, bookingID int, reason string) (*domain.Transaction, error)
	RefundAllForRide(ctx context.Context, rideID int, reason string) (*settlementservice.Report, error)
}

type PaymentsHandler struct {
	settlementService Service
}

func New(settlementService Service) *PaymentsHandler {
	return &PaymentsHandler{
		settlementService: settlementService,
	}
}

// Preview godoc
//
//	@Summary		Preview booking cost
//	@Description	Compute the cost of booking the given number of seats without persisting anything.
//	@Tags			Payments
//	@Security		BearerAuth
//	@Produce		json
//	@Param			rideID	path		int						true	"Ride id"
//	@Param			seats	query		int						true	"Seats to book"
//	@Success		200		{object}	dto.PreviewResponseDTO	"Booking cost"
//	@Failure		400		{object}	utils.Response			"Invalid seats"
//	@Failure		404		{object}	utils.Response			"Ride not found"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/rides/{rideID}/payments/preview [get]
func (h *PaymentsHandler) Preview(w http.ResponseWriter, r *http.Request) {
	rideID, seats, ok := rideAndSeats(w, r)
	if !ok {
		return
	}

	amount, err := h.settlementService.PreviewBookingCost(r.Context(), rideID, seats)
	if err != nil {
		respondSettlementError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PreviewResponseDTO{
		RideID: rideID,
		Seats:  seats,
		Amount: amount.InexactFloat64(),
	})
}

// Eligibility godoc
//
//	@Summary		Check booking eligibility
//	@Description	Advisory check whether the authenticated user can currently pay for the given seats.
//	@Tags			Payments
//	@Security		BearerAuth
//	@Produce		json
//	@Param			rideID	path		int							true	"Ride id"
//	@Param			seats	query		int							true	"Seats to book"
//	@Success		200		{object}	dto.EligibilityResponseDTO	"Eligibility result"
//	@Failure		400		{object}	utils.Response				"Invalid seats"
//	@Failure		404		{object}	utils.Response				"Ride not found"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/rides/{rideID}/payments/eligibility [get]
func (h *PaymentsHandler) Eligibility(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	rideID, seats, ok := rideAndSeats(w, r)
	if !ok {
		return
	}

	eligibility, err := h.settlementService.CheckEligibility(r.Context(), userID, rideID, seats)
	if err != nil {
		respondSettlementError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.EligibilityResponseDTO{
		Eligible: eligibility.Eligible,
		Amount:   eligibility.Amount.InexactFloat64(),
	})
}

// GetCostSplit godoc
//
//	@Summary		Get ride cost split
//	@Description	Per-passenger amounts, platform fee and driver earnings over the ride's qualifying bookings.
//	@Tags			Payments
//	@Security		BearerAuth
//	@Produce		json
//	@Param			rideID	path		int						true	"Ride id"
//	@Success		200		{object}	dto.SplitResponseDTO	"Cost split"
//	@Failure		404		{object}	utils.Response			"Ride not found"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/rides/{rideID}/payments/split [get]
func (h *PaymentsHandler) GetCostSplit(w http.ResponseWriter, r *http.Request) {
	rideID, ok := rideParam(w, r)
	if !ok {
		return
	}

	split, err := h.settlementService.CalculateRideCostSplit(r.Context(), rideID)
	if err != nil {
		respondSettlementError(w, err)
		return
	}

	entries := make([]dto.SplitEntryDTO, len(split.Entries))
	for i, e := range split.Entries {
		entries[i] = dto.SplitEntryDTO{
			PassengerID: e.PassengerID,
			BookingID:   e.BookingID,
			Seats:       e.Seats,
			Amount:      e.Amount.InexactFloat64(),
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SplitResponseDTO{
		TotalAmount:    split.TotalAmount.InexactFloat64(),
		PlatformFee:    split.PlatformFee.InexactFloat64(),
		DriverEarnings: split.DriverEarnings.InexactFloat64(),
		Entries:        entries,
	})
}

// Initialize godoc
//
//	@Summary		Initialize ride payment
//	@Description	Create or recompute the settlement record for a ride.
//	@Tags			Payments
//	@Security		BearerAuth
//	@Produce		json
//	@Param			rideID	path		int							true	"Ride id"
//	@Success		200		{object}	dto.RidePaymentResponseDTO	"Settlement record"
//	@Failure		404		{object}	utils.Response				"Ride not found"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/rides/{rideID}/payments [post]
func (h *PaymentsHandler) Initialize(w http.ResponseWriter, r *http.Request) {
	rideID, ok := rideParam(w, r)
	if !ok {
		return
	}

	rp, err := h.settlementService.InitializeRidePayment(r.Context(), rideID)
	if err != nil {
		respondSettlementError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toRidePaymentDTO(rp))
}

// RecomputeBooking godoc
//
//	@Summary		Recompute settlement after a booking change
//	@Description	Re-run the cost split for the ride after the given booking was added or changed.
//	@Tags			Payments
//	@Security		BearerAuth
//	@Produce		json
//	@Param			rideID		path		int							true	"Ride id"
//	@Param			bookingID	path		int							true	"Booking id"
//	@Success		200			{object}	dto.RidePaymentResponseDTO	"Settlement record"
//	@Failure		404			{object}	utils.Response				"Ride or booking not found"
//	@Failure		409			{object}	utils.Response				"Settlement frozen"
//	@Failure		500			{object}	utils.Response				"Internal server error"
//	@Router			/api/rides/{rideID}/payments/bookings/{bookingID} [post]
func (h *PaymentsHandler) RecomputeBooking(w http.ResponseWriter, r *http.Request) {
	rideID, ok := rideParam(w, r)
	if !ok {
		return
	}
	bookingID, ok := bookingParam(w, r)
	if !ok {
		return
	}

	rp, err := h.settlementService.AddOrRecomputeBooking(r.Context(), rideID, bookingID)
	if err != nil {
		respondSettlementError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toRidePaymentDTO(rp))
}

// Collect godoc
//
//	@Summary		Collect ride payments
//	@Description	Debit each pending passenger; partial failure is reported per passenger, not raised as an error.
//	@Tags			Payments
//	@Security		BearerAuth
//	@Produce		json
//	@Param			rideID	path		int						true	"Ride id"
//	@Success		200		{object}	dto.ReportResponseDTO	"Collection report"
//	@Failure		404		{object}	utils.Response			"Ride not found"
//	@Failure		409		{object}	utils.Response			"Settlement frozen"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/rides/{rideID}/payments/collect [post]
func (h *PaymentsHandler) Collect(w http.ResponseWriter, r *http.Request) {
	rideID, ok := rideParam(w, r)
	if !ok {
		return
	}

	report, err := h.settlementService.CollectRidePayments(r.Context(), rideID)
	if err != nil {
		respondSettlementError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toReportDTO(report))
}

// PayDriver godoc
//
//	@Summary		Pay the driver
//	@Description	Disburse driver earnings once every passenger entry is paid.
//	@Tags			Payments
//	@Security		BearerAuth
//	@Produce		json
//	@Param			rideID	path		int							true	"Ride id"
//	@Success		200		{object}	dto.RidePaymentResponseDTO	"Settlement record"
//	@Failure		404		{object}	utils.Response				"Ride not found"
//	@Failure		409		{object}	utils.Response				"Payments not collected"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/rides/{rideID}/payments/payout [post]
func (h *PaymentsHandler) PayDriver(w http.ResponseWriter, r *http.Request) {
	rideID, ok := rideParam(w, r)
	if !ok {
		return
	}

	rp, err := h.settlementService.PayDriverForRide(r.Context(), rideID)
	if err != nil {
		respondSettlementError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toRidePaymentDTO(rp))
}

// RefundRide godoc
//
//	@Summary		Refund all passengers of a ride
//	@Description	Refund every paid passenger entry, reporting per-passenger outcomes.
//	@Tags			Payments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			rideID	path		int						true	"Ride id"
//	@Param			request	body		dto.RefundRequestDTO	false	"Refund reason"
//	@Success		200		{object}	dto.ReportResponseDTO	"Refund report"
//	@Failure		404		{object}	utils.Response			"Ride not found"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/rides/{rideID}/payments/refund [post]
func (h *PaymentsHandler) RefundRide(w http.ResponseWriter, r *http.Request) {
	rideID, ok := rideParam(w, r)
	if !ok {
		return
	}

	var req dto.RefundRequestDTO
	if r.Body != nil {
		json.NewDecoder(r.Body).Decode(&req)
	}

	report, err := h.settlementService.RefundAllForRide(r.Context(), rideID, req.Reason)
	if err != nil {
		respondSettlementError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toReportDTO(report))
}

// PayBooking godoc
//
//	@Summary		Pay for a single booking
//	@Description	Settle one booking outside the bulk collection scan.
//	@Tags			Payments
//	@Security		BearerAuth
//	@Produce		json
//	@Param			bookingID	path		int							true	"Booking id"
//	@Success		200			{object}	dto.TransactionResponseDTO	"Recorded transaction"
//	@Failure		402			{object}	utils.Response				"Insufficient funds"
//	@Failure		404			{object}	utils.Response				"Booking not found"
//	@Failure		409			{object}	utils.Response				"Already paid"
//	@Failure		500			{object}	utils.Response				"Internal server error"
//	@Router			/api/bookings/{bookingID}/pay [post]
func (h *PaymentsHandler) PayBooking(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := bookingParam(w, r)
	if !ok {
		return
	}

	tr, err := h.settlementService.PayForBooking(r.Context(), bookingID)
	if err != nil {
		respondSettlementError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TransactionResponseDTO{
		TransactionID: tr.TransactionID,
		Type:          string(tr.Type),
		Direction:     string(tr.Direction),
		Amount:        tr.Amount.InexactFloat64(),
		RideID:        tr.RideID,
		BookingID:     tr.BookingID,
		Status:        string(tr.Status),
		BalanceAfter:  tr.BalanceAfter.InexactFloat64(),
		Description:   tr.Description,
		CreatedAt:     tr.CreatedAt,
	})
}

// RefundBooking godoc
//
//	@Summary		Refund a single booking
//	@Description	Credit a paid passenger entry back to the passenger's wallet.
//	@Tags			Payments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			bookingID	path		int							true	"Booking id"
//	@Param			request		body		dto.RefundRequestDTO		false	"Refund reason"
//	@Success		200			{object}	dto.TransactionResponseDTO	"Recorded transaction"
//	@Failure		404			{object}	utils.Response				"Booking not found"
//	@Failure		409			{object}	utils.Response				"Payment not completed"
//	@Failure		500			{object}	utils.Response				"Internal server error"
//	@Router			/api/bookings/{bookingID}/refund [post]
func (h *PaymentsHandler) RefundBooking(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := bookingParam(w, r)
	if !ok {
		return
	}

	var req dto.RefundRequestDTO
	if r.Body != nil {
		json.NewDecoder(r.Body).Decode(&req)
	}

	tr, err := h.settlementService.RefundBooking(r.Context(), bookingID, req.Reason)
	if err != nil {
		respondSettlementError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TransactionResponseDTO{
		TransactionID: tr.TransactionID,
		Type:          string(tr.Type),
		Direction:     string(tr.Direction),
		Amount:        tr.Amount.InexactFloat64(),
		RideID:        tr.RideID,
		BookingID:     tr.BookingID,
		Status:        string(tr.Status),
		BalanceAfter:  tr.BalanceAfter.InexactFloat64(),
		Description:   tr.Description,
		CreatedAt:     tr.CreatedAt,
	})
}

func respondSettlementError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, settlementservice.ErrRideNotFound),
		errors.Is(err, settlementservice.ErrBookingNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, settlementservice.ErrInvalidSeats),
		errors.Is(err, walletservice.ErrInvalidAmount):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, settlementservice.ErrPaymentsNotCollected),
		errors.Is(err, settlementservice.ErrPaymentNotCompleted),
		errors.Is(err, settlementservice.ErrAlreadyPaid),
		errors.Is(err, settlementservice.ErrSettlementFrozen):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, walletservice.ErrInsufficientFunds):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, walletservice.ErrWalletInactive):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func rideParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	rideID, err := strconv.Atoi(chi.URLParam(r, "rideID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid ride id")
		return 0, false
	}
	return rideID, true
}

func bookingParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	bookingID, err := strconv.Atoi(chi.URLParam(r, "bookingID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid booking id")
		return 0, false
	}
	return bookingID, true
}

func rideAndSeats(w http.ResponseWriter, r *http.Request) (rideID, seats int, ok bool) {
	rideID, ok = rideParam(w, r)
	if !ok {
		return 0, 0, false
	}
	seats, err := strconv.Atoi(r.URL.Query().Get("seats"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid seats parameter")
		return 0, 0, false
	}
	return rideID, seats, true
}

func toRidePaymentDTO(rp *domain.RidePayment) dto.RidePaymentResponseDTO {
	passengers := make([]dto.PassengerPaymentDTO, len(rp.Passengers))
	for i, pp := range rp.Passengers {
		passengers[i] = dto.PassengerPaymentDTO{
			PassengerID: pp.PassengerID,
			BookingID:   pp.BookingID,
			Seats:       pp.Seats,
			Amount:      pp.Amount.InexactFloat64(),
			Status:      string(pp.Status),
		}
	}
	return dto.RidePaymentResponseDTO{
		RideID:         rp.RideID,
		DriverID:       rp.DriverID,
		TotalAmount:    rp.TotalAmount.InexactFloat64(),
		PlatformFee:    rp.PlatformFee.InexactFloat64(),
		DriverEarnings: rp.DriverEarnings.InexactFloat64(),
		Status:         string(rp.Status),
		Passengers:     passengers,
	}
}

func toReportDTO(report *settlementservice.Report) dto.ReportResponseDTO {
	out := dto.ReportResponseDTO{
		RideID:     report.RideID,
		Successful: make([]dto.ReportEntryDTO, len(report.Successful)),
		Failed:     make([]dto.ReportEntryDTO, len(report.Failed)),
	}
	for i, e := range report.Successful {
		out.Successful[i] = dto.ReportEntryDTO{PassengerID: e.PassengerID, BookingID: e.BookingID, Amount: e.Amount.InexactFloat64()}
	}
	for i, e := range report.Failed {
		out.Failed[i] = dto.ReportEntryDTO{PassengerID: e.PassengerID, BookingID: e.BookingID, Amount: e.Amount.InexactFloat64(), Reason: e.Reason}
	}
	return out
}
