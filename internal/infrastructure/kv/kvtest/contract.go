// Package kvtest reúne las pruebas que todo driver de kv.Store debe pasar.
// Cada driver las ejecuta desde su propio _test.go con kvtest.Run.
package kvtest

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/logos-estoque/internal/application/inventory"
	"github.com/jhoicas/logos-estoque/internal/domain"
	"github.com/jhoicas/logos-estoque/internal/domain/entity"
	"github.com/jhoicas/logos-estoque/internal/infrastructure/kv"
)

// Factory devuelve un almacén vacío y aislado para cada subtest.
type Factory func(t *testing.T) kv.Store

// Run ejecuta el contrato completo contra los almacenes que crea newStore.
func Run(t *testing.T, newStore Factory) {
	t.Run("GetClaveInexistente", func(t *testing.T) { getMissing(t, newStore(t)) })
	t.Run("SobrescribeLaMismaClave", func(t *testing.T) { overwrite(t, newStore(t)) })
	t.Run("UpdateConfirmaTodo", func(t *testing.T) { updateCommits(t, newStore(t)) })
	t.Run("UpdateConErrorNoEscribeNada", func(t *testing.T) { updateRollsBack(t, newStore(t)) })
	t.Run("UpdateSinEscriturasNoFalla", func(t *testing.T) { updateReadOnly(t, newStore(t)) })
	t.Run("MotorDeEstoqueTodoONada", func(t *testing.T) { stockEngine(t, newStore(t)) })
}

func getMissing(t *testing.T, s kv.Store) {
	var v []string
	found, err := s.Get(context.Background(), "nada", &v)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, v)
}

func overwrite(t *testing.T, s kv.Store) {
	ctx := context.Background()
	for i := 1; i <= 3; i++ {
		require.NoError(t, s.Set(ctx, "contador", i), "escritura %d", i)
	}
	for i := 4; i <= 5; i++ {
		n := i
		require.NoError(t, s.Update(ctx, func(tx kv.Querier) error {
			return tx.Set(ctx, "contador", n)
		}), "escritura %d", i)
	}
	var got int
	found, err := s.Get(ctx, "contador", &got)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 5, got)
}

func updateCommits(t *testing.T, s kv.Store) {
	ctx := context.Background()
	require.NoError(t, s.Set(ctx, "a", 1))

	err := s.Update(ctx, func(tx kv.Querier) error {
		var a int
		if _, err := tx.Get(ctx, "a", &a); err != nil {
			return err
		}
		if err := tx.Set(ctx, "a", a+10); err != nil {
			return err
		}
		// lee lo escrito aún sin confirmar
		var again int
		found, err := tx.Get(ctx, "a", &again)
		if err != nil {
			return err
		}
		if !found || again != 11 {
			return errors.New("la transacción no ve su propia escritura")
		}
		return tx.Set(ctx, "b", []string{"x", "y"})
	})
	require.NoError(t, err)

	var a int
	var b []string
	_, err = s.Get(ctx, "a", &a)
	require.NoError(t, err)
	_, err = s.Get(ctx, "b", &b)
	require.NoError(t, err)
	assert.Equal(t, 11, a)
	assert.Equal(t, []string{"x", "y"}, b)
}

func updateRollsBack(t *testing.T, s kv.Store) {
	ctx := context.Background()
	require.NoError(t, s.Set(ctx, "a", 1))
	boom := errors.New("boom")

	err := s.Update(ctx, func(tx kv.Querier) error {
		if err := tx.Set(ctx, "a", 99); err != nil {
			return err
		}
		if err := tx.Set(ctx, "b", 2); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	var a int
	_, err = s.Get(ctx, "a", &a)
	require.NoError(t, err)
	assert.Equal(t, 1, a)
	found, err := s.Get(ctx, "b", new(int))
	require.NoError(t, err)
	assert.False(t, found)
}

func updateReadOnly(t *testing.T, s kv.Store) {
	ctx := context.Background()
	require.NoError(t, s.Set(ctx, "a", 7))
	var a int
	require.NoError(t, s.Update(ctx, func(tx kv.Querier) error {
		_, err := tx.Get(ctx, "a", &a)
		return err
	}))
	assert.Equal(t, 7, a)
}

// stockEngine: una SAIDA sin saldo no deja rastro ni en el catálogo ni en el ledger.
func stockEngine(t *testing.T, s kv.Store) {
	ctx := context.Background()
	items := kv.NewItemRepository(s)
	movs := kv.NewMovementRepository(s)
	engine := inventory.NewRegisterMovementUseCase(kv.NewTxRunner(s), nil)

	require.NoError(t, items.Create(ctx, &entity.Item{ID: "i1", SKU: "LGS-2026-0001-ABC", Name: "Parafuso"}))

	_, err := engine.RegisterMovement(ctx, inventory.MovementInput{
		OperatorID: "u-1", OperatorName: "ana", ItemID: "i1",
		Type: entity.MovementTypeEntrada, Quantity: decimal.NewFromInt(15),
	})
	require.NoError(t, err)

	_, err = engine.RegisterMovement(ctx, inventory.MovementInput{
		OperatorID: "u-1", OperatorName: "ana", ItemID: "i1",
		Type: entity.MovementTypeSaida, Quantity: decimal.NewFromInt(20),
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	it, err := items.GetByID(ctx, "i1")
	require.NoError(t, err)
	require.NotNil(t, it)
	assert.True(t, it.CurrentQuantity.Equal(decimal.NewFromInt(15)), "saldo=%s", it.CurrentQuantity)

	list, err := movs.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, entity.MovementTypeEntrada, list[0].Type)
}
