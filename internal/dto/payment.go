package dto

type PreviewResponseDTO struct {
	RideID int     `json:"ride_id" example:"7"`
	Seats  int     `json:"seats" example:"2"`
	Amount float64 `json:"amount" example:"4.000"`
}

type EligibilityResponseDTO struct {
	Eligible bool    `json:"eligible" example:"true"`
	Amount   float64 `json:"amount" example:"4.000"`
}

type SplitEntryDTO struct {
	PassengerID int     `json:"passenger_id" example:"12"`
	BookingID   int     `json:"booking_id" example:"31"`
	Seats       int     `json:"seats" example:"2"`
	Amount      float64 `json:"amount" example:"4.000"`
}

type SplitResponseDTO struct {
	TotalAmount    float64         `json:"total_amount" example:"6.000"`
	PlatformFee    float64         `json:"platform_fee" example:"0.600"`
	DriverEarnings float64         `json:"driver_earnings" example:"5.400"`
	Entries        []SplitEntryDTO `json:"entries"`
}

type PassengerPaymentDTO struct {
	PassengerID int     `json:"passenger_id" example:"12"`
	BookingID   int     `json:"booking_id" example:"31"`
	Seats       int     `json:"seats" example:"2"`
	Amount      float64 `json:"amount" example:"4.000"`
	Status      string  `json:"status" example:"paid"`
}

type RidePaymentResponseDTO struct {
	RideID         int                   `json:"ride_id" example:"7"`
	DriverID       int                   `json:"driver_id" example:"3"`
	TotalAmount    float64               `json:"total_amount" example:"6.000"`
	PlatformFee    float64               `json:"platform_fee" example:"0.600"`
	DriverEarnings float64               `json:"driver_earnings" example:"5.400"`
	Status         string                `json:"status" example:"collecting"`
	Passengers     []PassengerPaymentDTO `json:"passengers"`
}

type ReportEntryDTO struct {
	PassengerID int     `json:"passenger_id" example:"12"`
	BookingID   int     `json:"booking_id" example:"31"`
	Amount      float64 `json:"amount" example:"4.000"`
	Reason      string  `json:"reason,omitempty" example:"insufficient funds"`
}

type ReportResponseDTO struct {
	RideID     int              `json:"ride_id" example:"7"`
	Successful []ReportEntryDTO `json:"successful"`
	Failed     []ReportEntryDTO `json:"failed"`
}

type RefundRequestDTO struct {
	Reason string `json:"reason,omitempty" example:"ride cancelled"`
}
