package dto

import "github.com/shopspring/decimal"

// RegisterMovementRequest body para POST /api/inventory/movements.
type RegisterMovementRequest struct {
	ItemID   string           `json:"item_id" validate:"required"`
	Type     string           `json:"type" validate:"required,oneof=ENTRADA SAIDA AJUSTE"`
	Quantity decimal.Decimal  `json:"quantity"`
	Notes    string           `json:"notes,omitempty" validate:"max=500"`
	UnitCost *decimal.Decimal `json:"unit_cost,omitempty"` // solo ENTRADA
}

// AuditRequest body para POST /api/inventory/audit.
type AuditRequest struct {
	Category string                     `json:"category"`
	Counts   map[string]decimal.Decimal `json:"counts"`
}

// ReplenishmentSuggestionDTO sugerencia de reposición para un item bajo el mínimo.
type ReplenishmentSuggestionDTO struct {
	ItemID             string          `json:"item_id"`
	SKU                string          `json:"sku"`
	ItemName           string          `json:"item_name"`
	Category           string          `json:"category"`
	CurrentQuantity    decimal.Decimal `json:"current_quantity"`
	MinQuantity        decimal.Decimal `json:"min_quantity"`
	Deficit            decimal.Decimal `json:"deficit"`              // MinQuantity - CurrentQuantity
	IdealStock         decimal.Decimal `json:"ideal_stock"`          // MinQuantity * 1.5
	SuggestedOrderQty  decimal.Decimal `json:"suggested_order_qty"`  // IdealStock - CurrentQuantity
	UnitCost           decimal.Decimal `json:"unit_cost"`            // costo (promedio ponderado)
	EstimatedOrderCost decimal.Decimal `json:"estimated_order_cost"` // SuggestedOrderQty * UnitCost
	RuptureValue       decimal.Decimal `json:"rupture_value"`        // Deficit * UnitCost
	Priority           int             `json:"priority"`             // 1 = más urgente
}

// RequestAdjustmentRequest body para POST /api/adjustments.
type RequestAdjustmentRequest struct {
	ItemID         string          `json:"item_id" validate:"required"`
	AdjustmentType string          `json:"adjustment_type" validate:"required,oneof=ENTRADA SAIDA"`
	DeltaQuantity  decimal.Decimal `json:"delta_quantity"`
	Reason         string          `json:"reason" validate:"required,max=500"`
}

// ProcessAdjustmentRequest body para POST /api/adjustments/:id/review.
type ProcessAdjustmentRequest struct {
	Decision string `json:"decision" validate:"required,oneof=APROVADO REJEITADO"`
}
