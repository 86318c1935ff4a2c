package main

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/logos-estoque/internal/application/usecase"
	"github.com/jhoicas/logos-estoque/internal/infrastructure/kv"
	"github.com/jhoicas/logos-estoque/pkg/logger"
)

func TestImportCSV_CriaItensEIgnoraDuplicados(t *testing.T) {
	csvData := "ean;nome;categoria;corredor;prateleira;andar;preco_custo;preco_venda;minimo\n" +
		"7891234567895;Parafuso 6mm;Fixação;A;3;2;0,10;0,25;100\n" +
		"7891234567895;Parafuso repetido;Fixação;A;3;1;0,10;0,25;100\n" +
		"7890000000001;Broca 8mm;Ferramentas;B;1;1;abc;5;2\n" +
		";Fita isolante;Elétrica;;;;3.5;7;10\n"

	repo := kv.NewItemRepository(kv.NewMemoryStore())
	items := usecase.NewItemUseCase(repo)

	created, skipped, err := importCSV(context.Background(), strings.NewReader(csvData), items, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, 2, created)
	assert.Equal(t, 2, skipped)

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, it := range list {
		assert.True(t, it.CurrentQuantity.IsZero())
		assert.True(t, strings.HasPrefix(it.SKU, "LGS-"))
	}
}

func TestImportCSV_LinhaComColunasErradasEIgnorada(t *testing.T) {
	csvData := "ean;nome;categoria;corredor;prateleira;andar;preco_custo;preco_venda;minimo\n" +
		"7891234567895;Parafuso 6mm;Fixação;A;3\n" +
		"7890000000001;Broca 8mm;Ferramentas;B;1;1;2;5;2;extra\n" +
		"7890000000002;Serrote;Ferramentas;B;2;1;20;45;3\n"

	repo := kv.NewItemRepository(kv.NewMemoryStore())
	items := usecase.NewItemUseCase(repo)

	created, skipped, err := importCSV(context.Background(), strings.NewReader(csvData), items, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, 1, created)
	assert.Equal(t, 2, skipped)

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Serrote", list[0].Name)
}

func TestParseRecord_NumeroDeColunas(t *testing.T) {
	_, err := parseRecord([]string{"", "Cabo", "Elétrica"})
	assert.Error(t, err)
}

func TestParseRecord_DecimalComVirgula(t *testing.T) {
	req, err := parseRecord([]string{"", "Cabo", "Elétrica", "C", "2", "1", "1,50", "3,00", ""})
	require.NoError(t, err)
	assert.Equal(t, "1.5", req.UnitPrice.String())
	assert.Equal(t, "3", req.SalePrice.String())
	assert.True(t, req.MinQuantity.IsZero())
	assert.Equal(t, "C", req.Location.Corridor)
}
