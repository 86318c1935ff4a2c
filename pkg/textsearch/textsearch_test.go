package textsearch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/logos-estoque/pkg/textsearch"
)

func TestFold(t *testing.T) {
	assert.Equal(t, "acucar refinado", textsearch.Fold("Açúcar Refinado"))
	assert.Equal(t, "sao joao", textsearch.Fold("SÃO JOÃO"))
}

func TestContains(t *testing.T) {
	assert.True(t, textsearch.Contains("cafe", "Café Torrado", "LGS-2026-0001-ABC"))
	assert.True(t, textsearch.Contains("0001", "Café Torrado", "LGS-2026-0001-ABC"))
	assert.True(t, textsearch.Contains("  ", "qualquer"))
	assert.False(t, textsearch.Contains("arroz", "Feijão"))
}
