package dto

import "github.com/shopspring/decimal"

// SettingsDTO parámetros comerciales efectivos (con defaults aplicados).
type SettingsDTO struct {
	InterestRate    decimal.Decimal `json:"interest_rate"`
	MaxDiscountRate decimal.Decimal `json:"max_discount_rate"`
}

// RateRequest body para PUT /api/settings/interest-rate y /max-discount-rate.
type RateRequest struct {
	Rate decimal.Decimal `json:"rate"`
}
