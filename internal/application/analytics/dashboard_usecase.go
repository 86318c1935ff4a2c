// Package analytics contiene los casos de uso de indicadores del painel.
package analytics

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/logos-estoque/internal/application/dto"
	"github.com/jhoicas/logos-estoque/internal/domain/entity"
	"github.com/jhoicas/logos-estoque/internal/domain/repository"
)

const weeklyFlowDays = 7

// DashboardUseCase agrega catálogo, ledger, ventas y tareas en indicadores de solo lectura.
type DashboardUseCase struct {
	itemRepo     repository.ItemRepository
	movementRepo repository.MovementRepository
	saleRepo     repository.SaleRepository
	taskRepo     repository.TaskRepository
	now          func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	itemRepo repository.ItemRepository,
	movementRepo repository.MovementRepository,
	saleRepo repository.SaleRepository,
	taskRepo repository.TaskRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		itemRepo:     itemRepo,
		movementRepo: movementRepo,
		saleRepo:     saleRepo,
		taskRepo:     taskRepo,
		now:          time.Now,
	}
}

type snapshot struct {
	items     []*entity.Item
	movements []*entity.Movement
	sales     []*entity.Sale
	tasks     []*entity.KanbanTask
}

// load lee las cuatro colecciones en paralelo.
func (uc *DashboardUseCase) load(ctx context.Context) (*snapshot, error) {
	type itemsResult struct {
		v   []*entity.Item
		err error
	}
	type movementsResult struct {
		v   []*entity.Movement
		err error
	}
	type salesResult struct {
		v   []*entity.Sale
		err error
	}
	type tasksResult struct {
		v   []*entity.KanbanTask
		err error
	}

	itemsCh := make(chan itemsResult, 1)
	movCh := make(chan movementsResult, 1)
	salesCh := make(chan salesResult, 1)
	tasksCh := make(chan tasksResult, 1)

	go func() {
		v, err := uc.itemRepo.List(ctx)
		itemsCh <- itemsResult{v, err}
	}()
	go func() {
		v, err := uc.movementRepo.List(ctx)
		movCh <- movementsResult{v, err}
	}()
	go func() {
		v, err := uc.saleRepo.List(ctx)
		salesCh <- salesResult{v, err}
	}()
	go func() {
		v, err := uc.taskRepo.List(ctx)
		tasksCh <- tasksResult{v, err}
	}()

	items, movs, sales, tasks := <-itemsCh, <-movCh, <-salesCh, <-tasksCh
	if items.err != nil {
		return nil, fmt.Errorf("dashboard: items: %w", items.err)
	}
	if movs.err != nil {
		return nil, fmt.Errorf("dashboard: movimentos: %w", movs.err)
	}
	if sales.err != nil {
		return nil, fmt.Errorf("dashboard: vendas: %w", sales.err)
	}
	if tasks.err != nil {
		return nil, fmt.Errorf("dashboard: tarefas: %w", tasks.err)
	}
	return &snapshot{items: items.v, movements: movs.v, sales: sales.v, tasks: tasks.v}, nil
}

// Summary vista general: totales, valor en stock, ruptura y flujo de los últimos 7 días.
func (uc *DashboardUseCase) Summary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	snap, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.DashboardSummaryDTO{
		TotalItems:   len(snap.items),
		TotalUnits:   decimal.Zero,
		StockValue:   decimal.Zero,
		RuptureValue: decimal.Zero,
	}
	categories := make(map[string]struct{})
	for _, it := range snap.items {
		out.TotalUnits = out.TotalUnits.Add(it.CurrentQuantity)
		out.StockValue = out.StockValue.Add(it.StockValue())
		if it.Category != "" {
			categories[it.Category] = struct{}{}
		}
		if it.BelowMinimum() {
			out.LowStockCount++
			out.RuptureValue = out.RuptureValue.Add(ruptureOf(it))
		}
	}
	out.Categories = len(categories)
	out.WeeklyFlow = weeklyFlow(snap.movements, uc.now())
	return out, nil
}

// ManagementDay panel "gestión del día": ventas y flujo de hoy, items críticos y tareas urgentes.
func (uc *DashboardUseCase) ManagementDay(ctx context.Context) (*dto.ManagementDayDTO, error) {
	snap, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	start := startOfDay(now)
	end := start.AddDate(0, 0, 1)

	out := &dto.ManagementDayDTO{
		Date:          start.Format(time.DateOnly),
		SalesRevenue:  decimal.Zero,
		EntriesToday:  decimal.Zero,
		ExitsToday:    decimal.Zero,
		RuptureValue:  decimal.Zero,
		CriticalItems: []dto.CriticalItemDTO{},
		UrgentTasks:   []dto.UrgentTaskDTO{},
	}
	for _, s := range snap.sales {
		if inRange(s.Timestamp, start, end) {
			out.SalesCount++
			out.SalesRevenue = out.SalesRevenue.Add(s.TotalPrice)
		}
	}
	for _, m := range snap.movements {
		if !inRange(m.Timestamp, start, end) {
			continue
		}
		switch m.Type {
		case entity.MovementTypeEntrada:
			out.EntriesToday = out.EntriesToday.Add(m.Quantity)
		case entity.MovementTypeSaida:
			out.ExitsToday = out.ExitsToday.Add(m.Quantity)
		}
	}
	for _, it := range snap.items {
		if !it.BelowMinimum() {
			continue
		}
		out.RuptureValue = out.RuptureValue.Add(ruptureOf(it))
		out.CriticalItems = append(out.CriticalItems, dto.CriticalItemDTO{
			ItemID:          it.ID,
			SKU:             it.SKU,
			ItemName:        it.Name,
			CurrentQuantity: it.CurrentQuantity,
			MinQuantity:     it.MinQuantity,
		})
	}
	sort.SliceStable(out.CriticalItems, func(i, j int) bool {
		a, b := out.CriticalItems[i], out.CriticalItems[j]
		return a.MinQuantity.Sub(a.CurrentQuantity).GreaterThan(b.MinQuantity.Sub(b.CurrentQuantity))
	})
	for _, t := range snap.tasks {
		if t.Priority == entity.PriorityAlta && t.Status != entity.TaskResolvida {
			out.UrgentTasks = append(out.UrgentTasks, dto.UrgentTaskDTO{
				ID:         t.ID,
				Title:      t.Title,
				Status:     t.Status,
				AssignedTo: t.AssignedTo,
			})
		}
	}
	return out, nil
}

// weeklyFlow entradas y salidas por día, del más antiguo a hoy. Los AJUSTE no cuentan.
func weeklyFlow(movs []*entity.Movement, now time.Time) []dto.DailyFlowDTO {
	today := startOfDay(now)
	first := today.AddDate(0, 0, -(weeklyFlowDays - 1))
	out := make([]dto.DailyFlowDTO, weeklyFlowDays)
	for i := range out {
		out[i] = dto.DailyFlowDTO{
			Date:    first.AddDate(0, 0, i).Format(time.DateOnly),
			Entries: decimal.Zero,
			Exits:   decimal.Zero,
		}
	}
	for _, m := range movs {
		ts := m.Timestamp.In(now.Location())
		day := startOfDay(ts)
		if day.Before(first) || day.After(today) {
			continue
		}
		// Round absorbe los días de 23/25 h del horario de verano
		idx := int(math.Round(day.Sub(first).Hours() / 24))
		if idx < 0 || idx >= weeklyFlowDays {
			continue
		}
		switch m.Type {
		case entity.MovementTypeEntrada:
			out[idx].Entries = out[idx].Entries.Add(m.Quantity)
		case entity.MovementTypeSaida:
			out[idx].Exits = out[idx].Exits.Add(m.Quantity)
		}
	}
	return out
}

func ruptureOf(it *entity.Item) decimal.Decimal {
	return it.MinQuantity.Sub(it.CurrentQuantity).Mul(it.UnitPrice)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func inRange(t, start, end time.Time) bool {
	t = t.In(start.Location())
	return !t.Before(start) && t.Before(end)
}
