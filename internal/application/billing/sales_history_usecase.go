package billing

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/logos-estoque/internal/application/dto"
	"github.com/jhoicas/logos-estoque/internal/domain/entity"
	"github.com/jhoicas/logos-estoque/internal/domain/repository"
	"github.com/jhoicas/logos-estoque/pkg/textsearch"
)

// SalesFilter filtros del histórico. From/To cero = sin límite; To incluye el día completo.
type SalesFilter struct {
	Query string // nombre, documento del cliente o ID de la venta
	From  time.Time
	To    time.Time
}

// SalesHistoryUseCase histórico de ventas (CRM).
type SalesHistoryUseCase struct {
	saleRepo repository.SaleRepository
}

// NewSalesHistoryUseCase construye el caso de uso.
func NewSalesHistoryUseCase(saleRepo repository.SaleRepository) *SalesHistoryUseCase {
	return &SalesHistoryUseCase{saleRepo: saleRepo}
}

// List devuelve las ventas filtradas (más recientes primero) y sus métricas.
func (uc *SalesHistoryUseCase) List(ctx context.Context, f SalesFilter) ([]*entity.Sale, dto.SalesMetricsDTO, error) {
	all, err := uc.saleRepo.List(ctx)
	if err != nil {
		return nil, dto.SalesMetricsDTO{}, err
	}
	var to time.Time
	if !f.To.IsZero() {
		to = time.Date(f.To.Year(), f.To.Month(), f.To.Day(), 0, 0, 0, 0, f.To.Location()).AddDate(0, 0, 1)
	}

	out := make([]*entity.Sale, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		s := all[i]
		if !f.From.IsZero() && s.Timestamp.Before(f.From) {
			continue
		}
		if !to.IsZero() && !s.Timestamp.Before(to) {
			continue
		}
		if !textsearch.Contains(f.Query, s.CustomerName, s.CustomerDoc, s.ID) {
			continue
		}
		out = append(out, s)
	}
	return out, Metrics(out), nil
}

// Metrics total, descuentos, intereses, cantidad y ticket medio.
func Metrics(list []*entity.Sale) dto.SalesMetricsDTO {
	m := dto.SalesMetricsDTO{Count: len(list)}
	for _, s := range list {
		m.Total = m.Total.Add(s.TotalPrice)
		m.TotalDiscount = m.TotalDiscount.Add(s.Discount)
		m.TotalInterest = m.TotalInterest.Add(s.InterestValue)
	}
	if m.Count > 0 {
		m.AverageTicket = m.Total.Div(decimal.NewFromInt(int64(m.Count))).Round(2)
	}
	return m
}
