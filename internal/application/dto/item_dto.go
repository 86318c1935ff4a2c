package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/logos-estoque/internal/domain/entity"
)

// CreateItemRequest body para POST /api/items. El saldo inicial siempre es 0.
type CreateItemRequest struct {
	EAN         string          `json:"ean" validate:"omitempty,numeric,max=14"`
	Name        string          `json:"name" validate:"required,max=200"`
	Category    string          `json:"category" validate:"required,max=100"`
	Location    entity.Location `json:"location"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	SalePrice   decimal.Decimal `json:"sale_price"`
	MinQuantity decimal.Decimal `json:"min_quantity"`
	PhotoURL    string          `json:"photo_url,omitempty" validate:"omitempty,url"`
}

// UpdateItemRequest body para PUT /api/items/:id (campos opcionales; no toca el saldo).
type UpdateItemRequest struct {
	EAN         *string          `json:"ean,omitempty" validate:"omitempty,numeric,max=14"`
	Name        *string          `json:"name,omitempty" validate:"omitempty,max=200"`
	Category    *string          `json:"category,omitempty" validate:"omitempty,max=100"`
	Location    *entity.Location `json:"location,omitempty"`
	UnitPrice   *decimal.Decimal `json:"unit_price,omitempty"`
	SalePrice   *decimal.Decimal `json:"sale_price,omitempty"`
	MinQuantity *decimal.Decimal `json:"min_quantity,omitempty"`
	PhotoURL    *string          `json:"photo_url,omitempty"`
}

// AddressDTO dirección ocupada y el item que la ocupa.
type AddressDTO struct {
	Corridor string `json:"corridor"`
	Shelf    string `json:"shelf"`
	Floor    string `json:"floor"`
	ItemID   string `json:"item_id"`
	SKU      string `json:"sku"`
	ItemName string `json:"item_name"`
}
