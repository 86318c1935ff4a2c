package billing_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/logos-estoque/internal/application/billing"
	"github.com/jhoicas/logos-estoque/internal/application/dto"
	"github.com/jhoicas/logos-estoque/internal/application/inventory"
	"github.com/jhoicas/logos-estoque/internal/domain"
	"github.com/jhoicas/logos-estoque/internal/domain/entity"
	"github.com/jhoicas/logos-estoque/internal/infrastructure/kv"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	ctx       context.Context
	sales     *billing.SaleUseCase
	history   *billing.SalesHistoryUseCase
	customers *billing.CustomerUseCase
	items     *kv.ItemRepo
	movs      *kv.MovementRepo
	saleRepo  *kv.SaleRepo
	customer  *entity.Customer
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	store := kv.NewMemoryStore()
	tx := kv.NewTxRunner(store)
	items := kv.NewItemRepository(store)
	customerRepo := kv.NewCustomerRepository(store)
	saleRepo := kv.NewSaleRepository(store)

	f := &fixture{
		ctx: ctx,
		sales: billing.NewSaleUseCase(tx, inventory.NewRegisterMovementUseCase(tx, nil),
			items, customerRepo, kv.NewSettingsRepository(store), nil, nil),
		history:   billing.NewSalesHistoryUseCase(saleRepo),
		customers: billing.NewCustomerUseCase(customerRepo, "BR"),
		items:     items,
		movs:      kv.NewMovementRepository(store),
		saleRepo:  saleRepo,
	}
	c, err := f.customers.Create(ctx, dto.CreateCustomerRequest{Name: "Joana Lima", Doc: "529.982.247-25"})
	require.NoError(t, err)
	f.customer = c
	return f
}

func (f *fixture) seed(t *testing.T, id, cost, price string, qty int64) {
	t.Helper()
	require.NoError(t, f.items.Create(f.ctx, &entity.Item{
		ID: id, SKU: "LGS-2026-0001-" + id, EAN: "789" + id, Name: "Item " + id, Category: "Geral",
		UnitPrice: dec(cost), SalePrice: dec(price), CurrentQuantity: decimal.NewFromInt(qty),
	}))
}

func (f *fixture) stock(t *testing.T, id string) decimal.Decimal {
	t.Helper()
	it, err := f.items.GetByID(f.ctx, id)
	require.NoError(t, err)
	return it.CurrentQuantity
}

func line(id string, qty int64) dto.SaleLineRequest {
	return dto.SaleLineRequest{ItemID: id, Quantity: decimal.NewFromInt(qty)}
}

// ──────────────────────────────────────────────────────────────────────────────
// ProcessSale
// ──────────────────────────────────────────────────────────────────────────────

func TestProcessSale_DescontoLimitadoPeloTeto(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "a", "10", "20", 10)

	sale, err := f.sales.ProcessSale(f.ctx, "u-1", "caixa", dto.SaleRequest{
		CustomerID:        f.customer.UUID,
		Lines:             []dto.SaleLineRequest{line("a", 2)},
		RequestedDiscount: dec("50"),
		PaymentMethod:     entity.PaymentPix,
	})
	require.NoError(t, err)
	assert.True(t, sale.Subtotal.Equal(dec("40")))
	assert.True(t, sale.Discount.Equal(dec("4")))
	assert.True(t, sale.TotalPrice.Equal(dec("36")))
	assert.True(t, sale.InterestValue.IsZero())
	assert.Equal(t, 1, sale.Installments)
	assert.Equal(t, "Joana Lima", sale.CustomerName)
	assert.Equal(t, "C-1001", f.customer.ID)

	assert.True(t, f.stock(t, "a").Equal(decimal.NewFromInt(8)))
	movs, err := f.movs.List(f.ctx)
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, entity.MovementTypeSaida, movs[0].Type)
	assert.True(t, movs[0].Quantity.Equal(decimal.NewFromInt(2)))
	assert.Equal(t, "Venda PDV para: Joana Lima", movs[0].Notes)

	stored, err := f.saleRepo.List(f.ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, sale.ID, stored[0].ID)
}

func TestProcessSale_CreditoParceladoComJurosLineares(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "a", "30", "50", 10)

	sale, err := f.sales.ProcessSale(f.ctx, "u-1", "caixa", dto.SaleRequest{
		CustomerID:        f.customer.UUID,
		Lines:             []dto.SaleLineRequest{line("a", 2)},
		RequestedDiscount: dec("10"),
		PaymentMethod:     entity.PaymentCredito,
		Installments:      3,
	})
	require.NoError(t, err)
	assert.True(t, sale.Subtotal.Equal(dec("100")))
	assert.True(t, sale.Discount.IsZero(), "crédito não tem desconto")
	assert.True(t, sale.InterestValue.Equal(dec("7.5")))
	assert.True(t, sale.TotalPrice.Equal(dec("107.5")))
}

func TestProcessSale_FaltaEmUmaLinhaNaoGravaNada(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "a", "1", "2", 10)
	f.seed(t, "b", "1", "2", 1)

	_, err := f.sales.ProcessSale(f.ctx, "u-1", "caixa", dto.SaleRequest{
		CustomerID:    f.customer.UUID,
		Lines:         []dto.SaleLineRequest{line("a", 3), line("b", 2)},
		PaymentMethod: entity.PaymentDinheiro,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.True(t, f.stock(t, "a").Equal(decimal.NewFromInt(10)))
	assert.True(t, f.stock(t, "b").Equal(decimal.NewFromInt(1)))
	movs, err := f.movs.List(f.ctx)
	require.NoError(t, err)
	assert.Empty(t, movs)
	stored, err := f.saleRepo.List(f.ctx)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestProcessSale_DemandaSomadaDoMesmoItem(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "a", "1", "2", 5)

	_, err := f.sales.ProcessSale(f.ctx, "u-1", "caixa", dto.SaleRequest{
		CustomerID:    f.customer.UUID,
		Lines:         []dto.SaleLineRequest{line("a", 3), line("a", 3)},
		PaymentMethod: entity.PaymentDebito,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.True(t, f.stock(t, "a").Equal(decimal.NewFromInt(5)))
}

func TestProcessSale_ValidacoesDeEntrada(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "a", "1", "2", 5)
	ok := []dto.SaleLineRequest{line("a", 1)}

	cases := map[string]dto.SaleRequest{
		"sem cliente":              {Lines: ok, PaymentMethod: entity.PaymentPix},
		"sem linhas":               {CustomerID: f.customer.UUID, PaymentMethod: entity.PaymentPix},
		"pagamento invalido":       {CustomerID: f.customer.UUID, Lines: ok, PaymentMethod: "CHEQUE"},
		"parcelas fora do credito": {CustomerID: f.customer.UUID, Lines: ok, PaymentMethod: entity.PaymentPix, Installments: 2},
		"quantidade zero":          {CustomerID: f.customer.UUID, Lines: []dto.SaleLineRequest{line("a", 0)}, PaymentMethod: entity.PaymentPix},
		"desconto negativo":        {CustomerID: f.customer.UUID, Lines: ok, PaymentMethod: entity.PaymentPix, RequestedDiscount: dec("-1")},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := f.sales.ProcessSale(f.ctx, "u-1", "caixa", in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	_, err := f.sales.ProcessSale(f.ctx, "u-1", "caixa", dto.SaleRequest{
		CustomerID: "nao-existe", Lines: ok, PaymentMethod: entity.PaymentPix,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.True(t, f.stock(t, "a").Equal(decimal.NewFromInt(5)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Quote
// ──────────────────────────────────────────────────────────────────────────────

func TestQuote_NaoExigeClienteNemEscreve(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "a", "30", "50", 1)

	q, err := f.sales.Quote(f.ctx, dto.SaleRequest{
		Lines:         []dto.SaleLineRequest{line("a", 2)},
		PaymentMethod: entity.PaymentCredito,
		Installments:  3,
	})
	require.NoError(t, err)
	assert.True(t, q.Total.Equal(dec("107.5")))
	assert.True(t, q.Installment.Equal(dec("35.83")))
	assert.True(t, f.stock(t, "a").Equal(decimal.NewFromInt(1)), "cotação não baixa estoque")
}

// ──────────────────────────────────────────────────────────────────────────────
// Histórico
// ──────────────────────────────────────────────────────────────────────────────

func TestSalesHistory_FiltroEMetricas(t *testing.T) {
	f := newFixture(t)
	now := time.Now()
	mk := func(id, name string, total string, at time.Time) {
		require.NoError(t, f.saleRepo.Create(f.ctx, &entity.Sale{
			ID: id, CustomerName: name, TotalPrice: dec(total), Discount: dec("1"), Timestamp: at,
		}))
	}
	mk("s1", "Joana", "10", now.AddDate(0, 0, -10))
	mk("s2", "Joana", "20", now.AddDate(0, 0, -1))
	mk("s3", "Pedro", "40", now)

	list, m, err := f.history.List(f.ctx, billing.SalesFilter{From: now.AddDate(0, 0, -2), To: now})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "s3", list[0].ID)
	assert.Equal(t, 2, m.Count)
	assert.True(t, m.Total.Equal(dec("60")))
	assert.True(t, m.TotalDiscount.Equal(dec("2")))
	assert.True(t, m.AverageTicket.Equal(dec("30")))

	joana, m, err := f.history.List(f.ctx, billing.SalesFilter{Query: "joana"})
	require.NoError(t, err)
	assert.Len(t, joana, 2)
	assert.True(t, m.Total.Equal(dec("30")))
}

func TestMetrics_ListaVazia(t *testing.T) {
	m := billing.Metrics(nil)
	assert.Zero(t, m.Count)
	assert.True(t, m.AverageTicket.IsZero())
}
