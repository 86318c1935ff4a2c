package usecase_test

import (
	"context"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/logos-estoque/internal/application/dto"
	"github.com/jhoicas/logos-estoque/internal/application/usecase"
	"github.com/jhoicas/logos-estoque/internal/domain"
	"github.com/jhoicas/logos-estoque/internal/domain/entity"
	"github.com/jhoicas/logos-estoque/internal/infrastructure/kv"
)

func newItemUC() *usecase.ItemUseCase {
	return usecase.NewItemUseCase(kv.NewItemRepository(kv.NewMemoryStore()))
}

func createItem(t *testing.T, uc *usecase.ItemUseCase, name, category, ean string, loc entity.Location) *entity.Item {
	t.Helper()
	it, err := uc.Create(context.Background(), dto.CreateItemRequest{
		Name: name, Category: category, EAN: ean, Location: loc,
		UnitPrice: decimal.NewFromInt(2), SalePrice: decimal.NewFromInt(5), MinQuantity: decimal.NewFromInt(3),
	})
	require.NoError(t, err)
	return it
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestItemCreate_SKUSequencialESaldoZero(t *testing.T) {
	uc := newItemUC()
	a := createItem(t, uc, "Parafuso", "Fixação", "", entity.Location{})
	b := createItem(t, uc, "Porca", "Fixação", "", entity.Location{})

	year := time.Now().Year()
	assert.Regexp(t, regexp.MustCompile(fmt.Sprintf(`^LGS-%d-0001-[0-9A-Z]{3}$`, year)), a.SKU)
	assert.Regexp(t, regexp.MustCompile(fmt.Sprintf(`^LGS-%d-0002-[0-9A-Z]{3}$`, year)), b.SKU)
	assert.True(t, a.CurrentQuantity.IsZero())
	assert.NotEqual(t, a.ID, b.ID)
}

func TestItemCreate_EANDuplicado(t *testing.T) {
	uc := newItemUC()
	createItem(t, uc, "Parafuso", "Fixação", "7891234567895", entity.Location{})

	_, err := uc.Create(context.Background(), dto.CreateItemRequest{Name: "Outro", Category: "Fixação", EAN: " 7891234567895 "})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestItemCreate_EntradasInvalidas(t *testing.T) {
	uc := newItemUC()
	ctx := context.Background()
	_, err := uc.Create(ctx, dto.CreateItemRequest{Name: " ", Category: "X"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Create(ctx, dto.CreateItemRequest{Name: "X", Category: "X", SalePrice: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / Delete / consultas
// ──────────────────────────────────────────────────────────────────────────────

func TestItemUpdate_NaoAlteraSaldo(t *testing.T) {
	uc := newItemUC()
	it := createItem(t, uc, "Parafuso", "Fixação", "", entity.Location{})

	name := "Parafuso sextavado"
	price := decimal.NewFromInt(9)
	up, err := uc.Update(context.Background(), it.ID, dto.UpdateItemRequest{Name: &name, SalePrice: &price})
	require.NoError(t, err)
	assert.Equal(t, name, up.Name)
	assert.True(t, up.SalePrice.Equal(price))
	assert.True(t, up.CurrentQuantity.IsZero())
	assert.Equal(t, it.SKU, up.SKU)

	neg := decimal.NewFromInt(-1)
	_, err = uc.Update(context.Background(), it.ID, dto.UpdateItemRequest{MinQuantity: &neg})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Update(context.Background(), "nao-existe", dto.UpdateItemRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItemDelete(t *testing.T) {
	uc := newItemUC()
	it := createItem(t, uc, "Parafuso", "Fixação", "", entity.Location{})

	require.NoError(t, uc.Delete(context.Background(), it.ID))
	_, err := uc.GetByID(context.Background(), it.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItemList_CategoriaEBuscaSemAcento(t *testing.T) {
	uc := newItemUC()
	createItem(t, uc, "Café em pó", "Mercearia", "", entity.Location{})
	createItem(t, uc, "Cabo flexível", "Elétrica", "", entity.Location{})
	createItem(t, uc, "Fita isolante", "Elétrica", "", entity.Location{})

	found, err := uc.List(context.Background(), "", "cafe")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Café em pó", found[0].Name)

	eletrica, err := uc.List(context.Background(), "Elétrica", "")
	require.NoError(t, err)
	assert.Len(t, eletrica, 2)

	cats, err := uc.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Elétrica", "Mercearia"}, cats)
}

// ──────────────────────────────────────────────────────────────────────────────
// Endereçamento
// ──────────────────────────────────────────────────────────────────────────────

func TestAddresses_OrdenadosEIgnoraSemLocal(t *testing.T) {
	uc := newItemUC()
	createItem(t, uc, "Broca", "Ferramentas", "", entity.Location{Corridor: "B", Shelf: "1", Floor: "1"})
	createItem(t, uc, "Parafuso", "Fixação", "", entity.Location{Corridor: "A", Shelf: "2", Floor: "1"})
	createItem(t, uc, "Porca", "Fixação", "", entity.Location{Corridor: "A", Shelf: "1", Floor: "3"})
	createItem(t, uc, "Sem lugar", "Fixação", "", entity.Location{})

	all, err := uc.Addresses(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Porca", all[0].ItemName)
	assert.Equal(t, "Parafuso", all[1].ItemName)
	assert.Equal(t, "Broca", all[2].ItemName)

	found, err := uc.Locate(context.Background(), "broca")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "B", found[0].Corridor)

	_, err = uc.Locate(context.Background(), "  ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
