package billing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/logos-estoque/internal/application/billing"
	"github.com/jhoicas/logos-estoque/internal/application/dto"
	"github.com/jhoicas/logos-estoque/internal/domain"
	"github.com/jhoicas/logos-estoque/internal/infrastructure/kv"
)

func newCustomerUC() *billing.CustomerUseCase {
	return billing.NewCustomerUseCase(kv.NewCustomerRepository(kv.NewMemoryStore()), "BR")
}

func TestCustomerCreate_IDSequencialEContatoNormalizado(t *testing.T) {
	uc := newCustomerUC()
	ctx := context.Background()

	a, err := uc.Create(ctx, dto.CreateCustomerRequest{Name: " Joana ", Contact: "(11) 98765-4321"})
	require.NoError(t, err)
	b, err := uc.Create(ctx, dto.CreateCustomerRequest{Name: "Pedro", Doc: "11.222.333/0001-81"})
	require.NoError(t, err)

	assert.Equal(t, "C-1001", a.ID)
	assert.Equal(t, "C-1002", b.ID)
	assert.Equal(t, "Joana", a.Name)
	assert.Equal(t, "+5511987654321", a.Contact)
	assert.NotEmpty(t, a.UUID)
}

func TestCustomerCreate_DocumentoInvalido(t *testing.T) {
	uc := newCustomerUC()
	_, err := uc.Create(context.Background(), dto.CreateCustomerRequest{Name: "Joana", Doc: "529.982.247-26"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Create(context.Background(), dto.CreateCustomerRequest{Name: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCustomerUpdate_MantemIdentificadores(t *testing.T) {
	uc := newCustomerUC()
	ctx := context.Background()
	c, err := uc.Create(ctx, dto.CreateCustomerRequest{Name: "Joana"})
	require.NoError(t, err)

	email := "joana@example.com"
	up, err := uc.Update(ctx, c.UUID, dto.UpdateCustomerRequest{Email: &email})
	require.NoError(t, err)
	assert.Equal(t, c.ID, up.ID)
	assert.Equal(t, email, up.Email)
	assert.Equal(t, "Joana", up.Name)

	_, err = uc.Update(ctx, "nao-existe", dto.UpdateCustomerRequest{Email: &email})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = uc.GetByUUID(ctx, "nao-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCustomerList_BuscaPorNomeOuDocumento(t *testing.T) {
	uc := newCustomerUC()
	ctx := context.Background()
	_, err := uc.Create(ctx, dto.CreateCustomerRequest{Name: "João Souza"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreateCustomerRequest{Name: "Maria", Doc: "529.982.247-25"})
	require.NoError(t, err)

	found, err := uc.List(ctx, "joao")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "João Souza", found[0].Name)

	byDoc, err := uc.List(ctx, "529.982")
	require.NoError(t, err)
	require.Len(t, byDoc, 1)
	assert.Equal(t, "Maria", byDoc[0].Name)

	all, err := uc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
