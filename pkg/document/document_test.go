package document_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/logos-estoque/pkg/document"
)

func TestValidateCPF(t *testing.T) {
	assert.NoError(t, document.ValidateCPF("529.982.247-25"))
	assert.NoError(t, document.ValidateCPF("52998224725"))
	assert.Error(t, document.ValidateCPF("529.982.247-26"), "segundo dígito errado")
	assert.Error(t, document.ValidateCPF("111.111.111-11"), "dígitos repetidos")
	assert.Error(t, document.ValidateCPF("123"))
}

func TestValidateCNPJ(t *testing.T) {
	assert.NoError(t, document.ValidateCNPJ("11.222.333/0001-81"))
	assert.Error(t, document.ValidateCNPJ("11.222.333/0001-82"))
	assert.Error(t, document.ValidateCNPJ("00.000.000/0000-00"))
}

func TestValidate_DespachaPorTamanho(t *testing.T) {
	assert.Equal(t, document.KindCPF, document.Classify("529.982.247-25"))
	assert.Equal(t, document.KindCNPJ, document.Classify("11222333000181"))
	assert.Equal(t, document.KindOther, document.Classify("MG-12.345.678"))

	assert.NoError(t, document.Validate("MG-12.345.678"), "outros documentos são aceitos")
	assert.Error(t, document.Validate("52998224724"))
}
