package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/logos-estoque/internal/application/dto"
	"github.com/jhoicas/logos-estoque/internal/application/inventory"
	"github.com/jhoicas/logos-estoque/internal/domain"
	"github.com/jhoicas/logos-estoque/internal/domain/entity"
	"github.com/jhoicas/logos-estoque/internal/domain/repository"
	"github.com/jhoicas/logos-estoque/internal/domain/sales"
	"github.com/jhoicas/logos-estoque/pkg/logger"
)

// SaleUseCase cotización y liquidación de ventas del PDV.
type SaleUseCase struct {
	txRunner     SaleTxRunner
	engine       StockEngine
	itemRepo     repository.ItemRepository
	customerRepo repository.CustomerRepository
	settingsRepo repository.SettingsRepository
	calc         *sales.Calculator
	log          *logger.Logger
	now          func() time.Time
}

// NewSaleUseCase construye el caso de uso. calc nil usa intereses lineales.
func NewSaleUseCase(
	txRunner SaleTxRunner,
	engine StockEngine,
	itemRepo repository.ItemRepository,
	customerRepo repository.CustomerRepository,
	settingsRepo repository.SettingsRepository,
	calc *sales.Calculator,
	log *logger.Logger,
) *SaleUseCase {
	if calc == nil {
		calc = sales.NewCalculator(nil)
	}
	return &SaleUseCase{
		txRunner:     txRunner,
		engine:       engine,
		itemRepo:     itemRepo,
		customerRepo: customerRepo,
		settingsRepo: settingsRepo,
		calc:         calc,
		log:          logger.OrNop(log).Component("sale"),
		now:          time.Now,
	}
}

// Quote calcula el desglose con el catálogo y la configuración actuales, sin escribir nada.
// No exige cliente.
func (uc *SaleUseCase) Quote(ctx context.Context, in dto.SaleRequest) (*dto.SaleQuoteDTO, error) {
	installments, err := normalizePayment(in)
	if err != nil {
		return nil, err
	}
	if err := validateLines(in.Lines); err != nil {
		return nil, err
	}
	lines := make([]sales.Line, 0, len(in.Lines))
	for _, l := range in.Lines {
		item, err := uc.itemRepo.GetByID(ctx, l.ItemID)
		if err != nil {
			return nil, err
		}
		if item == nil {
			return nil, domain.ErrNotFound
		}
		lines = append(lines, sales.Line{Quantity: l.Quantity, UnitPrice: item.UnitPrice, SalePrice: item.SalePrice})
	}
	rates, err := uc.rates(ctx)
	if err != nil {
		return nil, err
	}
	q := uc.calc.Quote(lines, in.RequestedDiscount, in.PaymentMethod, installments, rates)
	return toQuoteDTO(q, installments), nil
}

// ProcessSale confirma la venta: exige cliente y al menos una línea (ErrInvalidInput).
// La demanda agregada por item se valida contra el saldo antes de emitir cualquier SAIDA;
// todas las salidas y el registro de la venta se confirman en una única transacción.
func (uc *SaleUseCase) ProcessSale(ctx context.Context, operatorID, operatorName string, in dto.SaleRequest) (*entity.Sale, error) {
	if in.CustomerID == "" {
		return nil, domain.ErrInvalidInput
	}
	installments, err := normalizePayment(in)
	if err != nil {
		return nil, err
	}
	if err := validateLines(in.Lines); err != nil {
		return nil, err
	}
	customer, err := uc.customerRepo.GetByUUID(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	rates, err := uc.rates(ctx)
	if err != nil {
		return nil, err
	}

	var sale *entity.Sale
	err = uc.txRunner.RunSale(ctx, func(
		itemRepo repository.ItemRepository,
		movRepo repository.MovementRepository,
		saleRepo repository.SaleRepository,
	) error {
		// 1. Resolver items y validar demanda agregada
		items := make(map[string]*entity.Item, len(in.Lines))
		demand := make(map[string]decimal.Decimal, len(in.Lines))
		for _, l := range in.Lines {
			if _, ok := items[l.ItemID]; !ok {
				item, err := itemRepo.GetByID(ctx, l.ItemID)
				if err != nil {
					return err
				}
				if item == nil {
					return domain.ErrNotFound
				}
				items[l.ItemID] = item
			}
			demand[l.ItemID] = demand[l.ItemID].Add(l.Quantity)
		}
		for id, qty := range demand {
			if items[id].CurrentQuantity.LessThan(qty) {
				return domain.ErrInsufficientStock
			}
		}

		// 2. Precio
		lines := make([]sales.Line, 0, len(in.Lines))
		saleItems := make([]entity.SaleItem, 0, len(in.Lines))
		for _, l := range in.Lines {
			item := items[l.ItemID]
			lines = append(lines, sales.Line{Quantity: l.Quantity, UnitPrice: item.UnitPrice, SalePrice: item.SalePrice})
			saleItems = append(saleItems, entity.SaleItem{
				ItemID:     item.ID,
				ItemName:   item.Name,
				EAN:        item.EAN,
				Quantity:   l.Quantity,
				UnitPrice:  item.UnitPrice,
				SalePrice:  item.SalePrice,
				TotalPrice: l.Quantity.Mul(item.SalePrice),
			})
		}
		q := uc.calc.Quote(lines, in.RequestedDiscount, in.PaymentMethod, installments, rates)

		// 3. Salidas de stock
		note := "Venda PDV para: " + customer.Name
		for _, l := range in.Lines {
			if _, err := uc.engine.RegisterInTx(ctx, itemRepo, movRepo, inventory.MovementInput{
				OperatorID:   operatorID,
				OperatorName: operatorName,
				ItemID:       l.ItemID,
				Type:         entity.MovementTypeSaida,
				Quantity:     l.Quantity,
				Notes:        note,
			}); err != nil {
				return err
			}
		}

		// 4. Registro de la venta
		sale = &entity.Sale{
			ID:              uuid.New().String(),
			CustomerID:      customer.UUID,
			CustomerName:    customer.Name,
			CustomerDoc:     customer.Doc,
			CustomerContact: customer.Contact,
			Items:           saleItems,
			Subtotal:        q.Subtotal,
			Discount:        q.Discount,
			TotalPrice:      q.Total,
			PaymentMethod:   in.PaymentMethod,
			Installments:    installments,
			InterestValue:   q.Interest,
			Timestamp:       uc.now(),
			UserID:          operatorID,
			UserName:        operatorName,
		}
		return saleRepo.Create(ctx, sale)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("sale_id", sale.ID).
		Str("customer", sale.CustomerName).
		Str("payment", sale.PaymentMethod).
		Str("total", sale.TotalPrice.StringFixed(2)).
		Int("lines", len(sale.Items)).
		Msg("venta registrada")
	return sale, nil
}

func (uc *SaleUseCase) rates(ctx context.Context) (sales.Rates, error) {
	s, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		return sales.Rates{}, err
	}
	return sales.Rates{InterestRate: s.Interest(), MaxDiscountRate: s.MaxDiscount()}, nil
}

// normalizePayment valida la forma de pago; cuotas 0 = 1, y solo CREDITO admite más de una.
func normalizePayment(in dto.SaleRequest) (int, error) {
	if !entity.ValidPaymentMethod(in.PaymentMethod) {
		return 0, domain.ErrInvalidInput
	}
	n := in.Installments
	if n <= 0 {
		n = 1
	}
	if n > 1 && in.PaymentMethod != entity.PaymentCredito {
		return 0, domain.ErrInvalidInput
	}
	if in.RequestedDiscount.IsNegative() {
		return 0, domain.ErrInvalidInput
	}
	return n, nil
}

func validateLines(lines []dto.SaleLineRequest) error {
	if len(lines) == 0 {
		return domain.ErrInvalidInput
	}
	for _, l := range lines {
		if l.ItemID == "" || !l.Quantity.IsPositive() {
			return domain.ErrInvalidInput
		}
	}
	return nil
}

func toQuoteDTO(q sales.Quote, installments int) *dto.SaleQuoteDTO {
	return &dto.SaleQuoteDTO{
		Subtotal:     q.Subtotal,
		TotalMargin:  q.TotalMargin,
		Discount:     q.Discount,
		Interest:     q.Interest,
		Total:        q.Total,
		Installments: installments,
		Installment:  q.Total.Div(decimal.NewFromInt(int64(installments))).Round(2),
	}
}
