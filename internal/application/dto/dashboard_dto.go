package dto

import "github.com/shopspring/decimal"

// DailyFlowDTO entradas y salidas de un día.
type DailyFlowDTO struct {
	Date    string          `json:"date"` // YYYY-MM-DD
	Entries decimal.Decimal `json:"entries"`
	Exits   decimal.Decimal `json:"exits"`
}

// DashboardSummaryDTO vista general del stock.
type DashboardSummaryDTO struct {
	TotalItems    int             `json:"total_items"`
	TotalUnits    decimal.Decimal `json:"total_units"`
	StockValue    decimal.Decimal `json:"stock_value"` // Σ saldo × costo
	LowStockCount int             `json:"low_stock_count"`
	RuptureValue  decimal.Decimal `json:"rupture_value"` // Σ (mínimo − saldo) × costo de los items críticos
	Categories    int             `json:"categories"`
	WeeklyFlow    []DailyFlowDTO  `json:"weekly_flow"` // últimos 7 días, el más antiguo primero
}

// CriticalItemDTO item bajo el mínimo.
type CriticalItemDTO struct {
	ItemID          string          `json:"item_id"`
	SKU             string          `json:"sku"`
	ItemName        string          `json:"item_name"`
	CurrentQuantity decimal.Decimal `json:"current_quantity"`
	MinQuantity     decimal.Decimal `json:"min_quantity"`
}

// UrgentTaskDTO tarea ALTA aún sin resolver.
type UrgentTaskDTO struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Status     string `json:"status"`
	AssignedTo string `json:"assigned_to,omitempty"`
}

// ManagementDayDTO panel "gestión del día".
type ManagementDayDTO struct {
	Date          string            `json:"date"`
	SalesCount    int               `json:"sales_count"`
	SalesRevenue  decimal.Decimal   `json:"sales_revenue"`
	EntriesToday  decimal.Decimal   `json:"entries_today"`
	ExitsToday    decimal.Decimal   `json:"exits_today"`
	CriticalItems []CriticalItemDTO `json:"critical_items"`
	RuptureValue  decimal.Decimal   `json:"rupture_value"`
	UrgentTasks   []UrgentTaskDTO   `json:"urgent_tasks"`
}
