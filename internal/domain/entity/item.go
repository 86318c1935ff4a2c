package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Location dirección física del item en el depósito.
type Location struct {
	Corridor string `json:"corridor"`
	Shelf    string `json:"shelf"`
	Floor    string `json:"floor"`
}

// Item representa un SKU del catálogo.
// CurrentQuantity es el saldo autoritativo y solo lo modifica el motor de stock.
// UnitPrice es el costo (promedio ponderado cuando las entradas traen costo); SalePrice es el precio de venta.
type Item struct {
	ID              string          `json:"id"`
	SKU             string          `json:"sku"`
	EAN             string          `json:"ean"`
	Name            string          `json:"name"`
	Category        string          `json:"category"`
	Location        Location        `json:"location"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	SalePrice       decimal.Decimal `json:"salePrice"`
	MinQuantity     decimal.Decimal `json:"minQuantity"`
	CurrentQuantity decimal.Decimal `json:"currentQuantity"`
	PhotoURL        string          `json:"photoUrl,omitempty"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// BelowMinimum indica si el saldo está por debajo del mínimo.
func (i *Item) BelowMinimum() bool {
	return i.CurrentQuantity.LessThan(i.MinQuantity)
}

// StockValue saldo valorizado al costo.
func (i *Item) StockValue() decimal.Decimal {
	return i.CurrentQuantity.Mul(i.UnitPrice)
}
