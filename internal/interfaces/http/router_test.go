package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/logos-estoque/internal/application/adjustment"
	appanalytics "github.com/jhoicas/logos-estoque/internal/application/analytics"
	"github.com/jhoicas/logos-estoque/internal/application/auth"
	"github.com/jhoicas/logos-estoque/internal/application/billing"
	"github.com/jhoicas/logos-estoque/internal/application/dto"
	"github.com/jhoicas/logos-estoque/internal/application/inventory"
	"github.com/jhoicas/logos-estoque/internal/application/usecase"
	"github.com/jhoicas/logos-estoque/internal/domain/entity"
	"github.com/jhoicas/logos-estoque/internal/infrastructure/kv"
	apphttp "github.com/jhoicas/logos-estoque/internal/interfaces/http"
)

const (
	adminUser = "gerencia"
	adminPass = "segredo-de-teste"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers: API completa sobre el almacén en memoria
// ──────────────────────────────────────────────────────────────────────────────

func buildAPI(t *testing.T) *fiber.App {
	t.Helper()
	store := kv.NewMemoryStore()
	itemRepo := kv.NewItemRepository(store)
	movRepo := kv.NewMovementRepository(store)
	userRepo := kv.NewUserRepository(store)
	saleRepo := kv.NewSaleRepository(store)
	customerRepo := kv.NewCustomerRepository(store)
	taskRepo := kv.NewTaskRepository(store)
	adjRepo := kv.NewAdjustmentRepository(store)
	settingsRepo := kv.NewSettingsRepository(store)
	txRunner := kv.NewTxRunner(store)

	engine := inventory.NewRegisterMovementUseCase(txRunner, nil)
	authUC := auth.NewAuthUseCase(userRepo,
		auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer},
		auth.BootstrapConfig{Username: adminUser, Password: adminPass}, nil)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:           authUC,
		UserUC:           usecase.NewUserUseCase(userRepo, authUC),
		ItemUC:           usecase.NewItemUseCase(itemRepo),
		TaskUC:           usecase.NewTaskUseCase(taskRepo),
		SettingsUC:       usecase.NewSettingsUseCase(settingsRepo),
		RegisterMovement: engine,
		History:          inventory.NewMovementHistoryUseCase(movRepo),
		Audit:            inventory.NewAuditUseCase(txRunner, engine, nil),
		Replenishment:    inventory.NewReplenishmentUseCase(itemRepo),
		AdjustmentUC:     adjustment.NewUseCase(txRunner, engine, itemRepo, adjRepo, userRepo, nil),
		SaleUC:           billing.NewSaleUseCase(txRunner, engine, itemRepo, customerRepo, settingsRepo, nil, nil),
		SalesHistory:     billing.NewSalesHistoryUseCase(saleRepo),
		CustomerUC:       billing.NewCustomerUseCase(customerRepo, "BR"),
		DashboardUC:      appanalytics.NewDashboardUseCase(itemRepo, movRepo, saleRepo, taskRepo),
		JWTSecret:        testJWTSecret,
	})
	return app
}

func call(t *testing.T, app *fiber.App, method, path, token string, body any, out any) int {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func login(t *testing.T, app *fiber.App, username, password string) string {
	t.Helper()
	var out dto.LoginResponse
	status := call(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Username: username, Password: password}, &out)
	require.Equal(t, http.StatusOK, status)
	require.NotEmpty(t, out.Token)
	return out.Token
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujos
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_LoginContaInicial(t *testing.T) {
	app := buildAPI(t)

	var out dto.LoginResponse
	status := call(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Username: adminUser, Password: adminPass}, &out)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, entity.RoleGerencia, out.User.Role)
	assert.Equal(t, auth.MasterUserID, out.User.ID)

	var errBody dto.ErrorResponse
	status = call(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Username: adminUser, Password: "errada"}, &errBody)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "UNAUTHORIZED", errBody.Code)
}

func TestRouter_SinTokenRetorna401(t *testing.T) {
	app := buildAPI(t)
	status := call(t, app, http.MethodGet, "/api/items", "", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestRouter_ItemMovimentoEHistorico(t *testing.T) {
	app := buildAPI(t)
	token := login(t, app, adminUser, adminPass)

	var item entity.Item
	status := call(t, app, http.MethodPost, "/api/items", token, map[string]any{
		"name":         "Caneta Azul",
		"category":     "Papelaria",
		"unit_price":   "2",
		"sale_price":   "5",
		"min_quantity": "10",
	}, &item)
	require.Equal(t, http.StatusCreated, status)
	require.NotEmpty(t, item.ID)
	assert.True(t, item.CurrentQuantity.IsZero())

	// SAIDA sem saldo
	var errBody dto.ErrorResponse
	status = call(t, app, http.MethodPost, "/api/inventory/movements", token, map[string]any{
		"item_id": item.ID, "type": "SAIDA", "quantity": "1",
	}, &errBody)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "INSUFFICIENT_STOCK", errBody.Code)

	status = call(t, app, http.MethodPost, "/api/inventory/movements", token, map[string]any{
		"item_id": item.ID, "type": "ENTRADA", "quantity": "15",
	}, nil)
	require.Equal(t, http.StatusCreated, status)

	var history []map[string]any
	status = call(t, app, http.MethodGet, "/api/inventory/movements", token, nil, &history)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, history, 1)
	assert.Equal(t, "ENTRADA", history[0]["type"])
	assert.Equal(t, "15", history[0]["balanceAfter"])

	var got entity.Item
	status = call(t, app, http.MethodGet, "/api/items/"+item.ID, token, nil, &got)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, got.CurrentQuantity.Equal(decimal.NewFromInt(15)))
}

func TestRouter_TipoDeMovimentoInvalidoRetorna400(t *testing.T) {
	app := buildAPI(t)
	token := login(t, app, adminUser, adminPass)

	var errBody dto.ErrorResponse
	status := call(t, app, http.MethodPost, "/api/inventory/movements", token, map[string]any{
		"item_id": "x", "type": "DEVOLUCAO", "quantity": "1",
	}, &errBody)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", errBody.Code)
}

func TestRouter_OperadorSemPermissaoDeAjustes(t *testing.T) {
	app := buildAPI(t)
	admin := login(t, app, adminUser, adminPass)

	status := call(t, app, http.MethodPost, "/api/users", admin, dto.CreateUserRequest{
		Username: "operador1", Password: "1234", Role: entity.RoleOperador,
	}, nil)
	require.Equal(t, http.StatusCreated, status)

	op := login(t, app, "operador1", "1234")
	assert.Equal(t, http.StatusForbidden, call(t, app, http.MethodGet, "/api/adjustments", op, nil, nil))
	assert.Equal(t, http.StatusForbidden, call(t, app, http.MethodGet, "/api/users", op, nil, nil))
	assert.Equal(t, http.StatusOK, call(t, app, http.MethodGet, "/api/items", op, nil, nil))
}

func TestRouter_VendaSemClienteRetorna400(t *testing.T) {
	app := buildAPI(t)
	token := login(t, app, adminUser, adminPass)

	status := call(t, app, http.MethodPost, "/api/sales", token, map[string]any{
		"lines":          []map[string]any{{"item_id": "x", "quantity": "1"}},
		"payment_method": "PIX",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestRouter_SettingsDefaults(t *testing.T) {
	app := buildAPI(t)
	token := login(t, app, adminUser, adminPass)

	var out dto.SettingsDTO
	require.Equal(t, http.StatusOK, call(t, app, http.MethodGet, "/api/settings", token, nil, &out))
	assert.True(t, out.InterestRate.Equal(decimal.NewFromFloat(2.5)))
	assert.True(t, out.MaxDiscountRate.Equal(decimal.NewFromInt(10)))

	require.Equal(t, http.StatusOK, call(t, app, http.MethodPut, "/api/settings/interest-rate", token, map[string]any{"rate": "3"}, &out))
	assert.True(t, out.InterestRate.Equal(decimal.NewFromInt(3)))
}

func TestRouter_OperadorNaoDefineSaldoAbsoluto(t *testing.T) {
	app := buildAPI(t)
	admin := login(t, app, adminUser, adminPass)

	var item entity.Item
	require.Equal(t, http.StatusCreated, call(t, app, http.MethodPost, "/api/items", admin, map[string]any{
		"name": "Resma A4", "category": "Papelaria", "unit_price": "20", "sale_price": "30", "min_quantity": "5",
	}, &item))
	require.Equal(t, http.StatusCreated, call(t, app, http.MethodPost, "/api/inventory/movements", admin, map[string]any{
		"item_id": item.ID, "type": "ENTRADA", "quantity": "100",
	}, nil))

	require.Equal(t, http.StatusCreated, call(t, app, http.MethodPost, "/api/users", admin, dto.CreateUserRequest{
		Username:    "operador2",
		Password:    "1234",
		Role:        entity.RoleOperador,
		Permissions: &entity.Permissions{Estoque: true, Movimentacoes: true},
	}, nil))
	op := login(t, app, "operador2", "1234")

	var errBody dto.ErrorResponse
	status := call(t, app, http.MethodPost, "/api/inventory/movements", op, map[string]any{
		"item_id": item.ID, "type": "AJUSTE", "quantity": "0",
	}, &errBody)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "FORBIDDEN", errBody.Code)

	// entradas y salidas siguen abiertas al operador
	require.Equal(t, http.StatusCreated, call(t, app, http.MethodPost, "/api/inventory/movements", op, map[string]any{
		"item_id": item.ID, "type": "SAIDA", "quantity": "1",
	}, nil))
	var got entity.Item
	require.Equal(t, http.StatusOK, call(t, app, http.MethodGet, "/api/items/"+item.ID, op, nil, &got))
	assert.True(t, got.CurrentQuantity.Equal(decimal.NewFromInt(99)))

	require.Equal(t, http.StatusCreated, call(t, app, http.MethodPost, "/api/inventory/movements", admin, map[string]any{
		"item_id": item.ID, "type": "AJUSTE", "quantity": "50",
	}, nil))
	require.Equal(t, http.StatusOK, call(t, app, http.MethodGet, "/api/items/"+item.ID, admin, nil, &got))
	assert.True(t, got.CurrentQuantity.Equal(decimal.NewFromInt(50)))
}

func TestRouter_GestaoDeAcessosExigePermissaoAdmin(t *testing.T) {
	app := buildAPI(t)
	admin := login(t, app, adminUser, adminPass)

	require.Equal(t, http.StatusCreated, call(t, app, http.MethodPost, "/api/users", admin, dto.CreateUserRequest{
		Username:    "gerente2",
		Password:    "1234",
		Role:        entity.RoleGerencia,
		Permissions: &entity.Permissions{Dashboard: true, Estoque: true},
	}, nil))
	g2 := login(t, app, "gerente2", "1234")

	assert.Equal(t, http.StatusForbidden, call(t, app, http.MethodGet, "/api/users", g2, nil, nil))
	// el resto de módulos sigue abierto para GERENCIA
	assert.Equal(t, http.StatusOK, call(t, app, http.MethodGet, "/api/items", g2, nil, nil))
	assert.Equal(t, http.StatusOK, call(t, app, http.MethodGet, "/api/users", admin, nil, nil))
}
