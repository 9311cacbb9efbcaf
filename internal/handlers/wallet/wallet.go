package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aldarwish/mishwarpay/internal/domain"
	"github.com/aldarwish/mishwarpay/internal/dto"
	transactionrepo "github.com/aldarwish/mishwarpay/internal/repo/transaction-repo"
	walletservice "github.com/aldarwish/mishwarpay/internal/service/walletservice"
	"github.com/aldarwish/mishwarpay/pkg/auth"
	"github.com/aldarwish/mishwarpay/pkg/utils"
	"github.com/aldarwish/mishwarpay/pkg/validate"
)

type Service interface {
	GetOrCreateWallet(ctx context.Context, userID int) (*domain.Wallet, error)
	TopUp(ctx context.Context, userID int, amount decimal.Decimal, methodMeta *string) (*domain.Transaction, error)
	Withdraw(ctx context.Context, userID int, amount decimal.Decimal, methodMeta *string) (*domain.Transaction, error)
	GetTransactionHistory(ctx context.Context, userID int, filter transactionrepo.Filter) ([]domain.Transaction, error)
	GetEarningsSummary(ctx context.Context, driverID int, from, to time.Time) (*walletservice.Summary, error)
	GetSpendingSummary(ctx context.Context, userID int, from, to time.Time) (*walletservice.Summary, error)
}

type WalletHandler struct {
	walletService Service
}

func New(walletService Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

// GetBalance godoc
//
//	@Summary		Get current wallet balance
//	@Description	Retrieve the available and pending balance for the authenticated user, creating the wallet lazily.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO	"Current wallet state"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/wallet [get]
func (h *WalletHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	wallet, err := h.walletService.GetOrCreateWallet(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Balance:  wallet.Balance.InexactFloat64(),
		Pending:  wallet.PendingBalance.InexactFloat64(),
		Currency: wallet.Currency,
		Status:   string(wallet.Status),
	})
}

// TopUp godoc
//
//	@Summary		Top up the wallet
//	@Description	Credit an already-authorized external top-up to the wallet.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TopUpRequestDTO			true	"Top-up payload"
//	@Success		200		{object}	dto.TransactionResponseDTO	"Recorded transaction"
//	@Failure		400		{object}	utils.Response				"Invalid amount or card number"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		403		{object}	utils.Response				"Wallet not active"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/wallet/topup [post]
func (h *WalletHandler) TopUp(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.TopUpRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	methodMeta, ok := methodMetaFrom(req.Method, req.CardNumber)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid card number")
		return
	}

	tr, err := h.walletService.TopUp(r.Context(), userID, decimal.NewFromFloat(req.Amount), methodMeta)
	if err != nil {
		respondWalletError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toTransactionDTO(tr))
}

// Withdraw godoc
//
//	@Summary		Request funds withdrawal
//	@Description	Debit the wallet immediately and hand the payout to external processing.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawRequestDTO		true	"Withdrawal payload"
//	@Success		200		{object}	dto.TransactionResponseDTO	"Recorded transaction"
//	@Failure		400		{object}	utils.Response				"Invalid amount or card number"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		402		{object}	utils.Response				"Insufficient funds"
//	@Failure		403		{object}	utils.Response				"Wallet not active"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/wallet/withdraw [post]
func (h *WalletHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.WithdrawRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	methodMeta, ok := methodMetaFrom(req.Method, req.CardNumber)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid card number")
		return
	}

	tr, err := h.walletService.Withdraw(r.Context(), userID, decimal.NewFromFloat(req.Amount), methodMeta)
	if err != nil {
		respondWalletError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toTransactionDTO(tr))
}

// GetTransactions godoc
//
//	@Summary		Get transaction history
//	@Description	Ledger entries for the authenticated user, newest first. Optional type, from, to and limit query filters.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TransactionResponseDTO	"Transaction history"
//	@Success		204	{object}	utils.Response				"No transactions"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/wallet/transactions [get]
func (h *WalletHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	filter, err := filterFromQuery(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	transactions, err := h.walletService.GetTransactionHistory(r.Context(), userID, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}

	if len(transactions) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Transactions not found")
		return
	}

	response := make([]dto.TransactionResponseDTO, len(transactions))
	for i, tr := range transactions {
		tr := tr
		response[i] = toTransactionDTO(&tr)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetEarningsSummary godoc
//
//	@Summary		Get driver earnings summary
//	@Description	Aggregate of ride earnings credited over the requested period (default: last 30 days).
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.SummaryResponseDTO	"Earnings summary"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/wallet/earnings [get]
func (h *WalletHandler) GetEarningsSummary(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	from, to, err := periodFromQuery(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	summary, err := h.walletService.GetEarningsSummary(r.Context(), userID, from, to)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch earnings summary")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toSummaryDTO(summary))
}

// GetSpendingSummary godoc
//
//	@Summary		Get passenger spending summary
//	@Description	Aggregate of ride payments debited over the requested period (default: last 30 days).
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.SummaryResponseDTO	"Spending summary"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/wallet/spending [get]
func (h *WalletHandler) GetSpendingSummary(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	from, to, err := periodFromQuery(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	summary, err := h.walletService.GetSpendingSummary(r.Context(), userID, from, to)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch spending summary")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toSummaryDTO(summary))
}

func respondWalletError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, walletservice.ErrInvalidAmount):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, walletservice.ErrInsufficientFunds),
		errors.Is(err, walletservice.ErrInsufficientPendingFunds):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, walletservice.ErrWalletInactive):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func methodMetaFrom(method, cardNumber string) (*string, bool) {
	if cardNumber != "" && !validate.IsLuhn(cardNumber) {
		return nil, false
	}
	if method == "" && cardNumber == "" {
		return nil, true
	}
	meta := method
	if cardNumber != "" {
		// Only the last four digits are kept in the ledger.
		meta = method + ":" + cardNumber[len(cardNumber)-4:]
	}
	return &meta, true
}

func filterFromQuery(r *http.Request) (transactionrepo.Filter, error) {
	var filter transactionrepo.Filter

	if v := r.URL.Query().Get("type"); v != "" {
		txType := domain.TransactionType(v)
		filter.Type = &txType
	}
	if v := r.URL.Query().Get("from"); v != "" {
		from, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, errors.New("invalid from parameter")
		}
		filter.From = &from
	}
	if v := r.URL.Query().Get("to"); v != "" {
		to, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, errors.New("invalid to parameter")
		}
		filter.To = &to
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			return filter, errors.New("invalid limit parameter")
		}
		filter.Limit = limit
	}

	return filter, nil
}

func periodFromQuery(r *http.Request) (from, to time.Time, err error) {
	to = time.Now()
	from = to.AddDate(0, 0, -30)

	if v := r.URL.Query().Get("from"); v != "" {
		from, err = time.Parse(time.RFC3339, v)
		if err != nil {
			return from, to, errors.New("invalid from parameter")
		}
	}
	if v := r.URL.Query().Get("to"); v != "" {
		to, err = time.Parse(time.RFC3339, v)
		if err != nil {
			return from, to, errors.New("invalid to parameter")
		}
	}
	return from, to, nil
}

func toTransactionDTO(tr *domain.Transaction) dto.TransactionResponseDTO {
	return dto.TransactionResponseDTO{
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
	}
}

func toSummaryDTO(s *walletservice.Summary) dto.SummaryResponseDTO {
	return dto.SummaryResponseDTO{
		Total: s.Total.InexactFloat64(),
		Count: s.Count,
		From:  s.From,
		To:    s.To,
	}
}
