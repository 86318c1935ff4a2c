package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una solicitud de ajuste.
const (
	AdjustmentPendente  = "PENDENTE"
	AdjustmentAprovado  = "APROVADO"
	AdjustmentRejeitado = "REJEITADO"
)

// StockAdjustment solicitud de corrección de saldo que requiere revisión de GERENCIA.
// OldQuantity y NewQuantity son snapshots de exhibición; al aprobar se aplica
// AdjustmentType con DeltaQuantity sobre el saldo vigente en ese momento.
type StockAdjustment struct {
	ID             string          `json:"id"`
	ItemID         string          `json:"itemId"`
	RequestedBy    string          `json:"requestedBy"`
	RequestedAt    time.Time       `json:"requestedAt"`
	OldQuantity    decimal.Decimal `json:"oldQuantity"`
	NewQuantity    decimal.Decimal `json:"newQuantity"`
	AdjustmentType string          `json:"adjustmentType"` // ENTRADA | SAIDA
	DeltaQuantity  decimal.Decimal `json:"deltaQuantity"`
	Reason         string          `json:"reason"`
	Status         string          `json:"status"`
	ReviewedBy     string          `json:"reviewedBy,omitempty"`
	ReviewedAt     *time.Time      `json:"reviewedAt,omitempty"`
}

// IsPending true mientras no fue aprobado ni rechazado.
func (a *StockAdjustment) IsPending() bool {
	return a.Status == AdjustmentPendente
}
