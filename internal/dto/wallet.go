package dto

import "time"

type BalanceResponseDTO struct {
	Balance  float64 `json:"balance" example:"12.500"`
	Pending  float64 `json:"pending" example:"0.000"`
	Currency string  `json:"currency" example:"BHD"`
	Status   string  `json:"status" example:"active"`
}

type TopUpRequestDTO struct {
	Amount     float64 `json:"amount" example:"50.000"`
	Method     string  `json:"method,omitempty" example:"card"`
	CardNumber string  `json:"card_number,omitempty" example:"4561261212345467"`
}

type WithdrawRequestDTO struct {
	Amount     float64 `json:"amount" example:"25.000"`
	Method     string  `json:"method,omitempty" example:"bank_transfer"`
	CardNumber string  `json:"card_number,omitempty" example:"4561261212345467"`
}

type TransactionResponseDTO struct {
	TransactionID string    `json:"transaction_id" example:"TXN-20250114-9F2C41AB"`
	Type          string    `json:"type" example:"top_up"`
	Direction     string    `json:"direction" example:"credit"`
	Amount        float64   `json:"amount" example:"50.000"`
	RideID        *int      `json:"ride_id,omitempty"`
	BookingID     *int      `json:"booking_id,omitempty"`
	Status        string    `json:"status" example:"completed"`
	BalanceAfter  float64   `json:"balance_after" example:"62.500"`
	Description   string    `json:"description" example:"wallet top-up"`
	CreatedAt     time.Time `json:"created_at"`
}

type SummaryResponseDTO struct {
	Total float64   `json:"total" example:"120.400"`
	Count int       `json:"count" example:"14"`
	From  time.Time `json:"from"`
	To    time.Time `json:"to"`
}
