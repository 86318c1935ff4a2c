package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MovementTypeEntrada = "ENTRADA" // suma al saldo
	MovementTypeSaida   = "SAIDA"   // resta del saldo
	MovementTypeAjuste  = "AJUSTE"  // fija el saldo absoluto
)

// Movement es un registro inmutable del ledger.
// Quantity es magnitud para ENTRADA/SAIDA y saldo objetivo para AJUSTE.
// SKU e ItemName son snapshots al momento del registro.
type Movement struct {
	ID        string          `json:"id"`
	ItemID    string          `json:"itemId"`
	SKU       string          `json:"sku"`
	ItemName  string          `json:"itemName"`
	Type      string          `json:"type"`
	Quantity  decimal.Decimal `json:"quantity"`
	UserID    string          `json:"userId"`
	Username  string          `json:"username"`
	Timestamp time.Time       `json:"timestamp"`
	Notes     string          `json:"notes,omitempty"`
}

// ValidMovementType indica si t es uno de los tipos conocidos.
func ValidMovementType(t string) bool {
	switch t {
	case MovementTypeEntrada, MovementTypeSaida, MovementTypeAjuste:
		return true
	}
	return false
}
