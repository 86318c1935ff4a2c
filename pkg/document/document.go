// Package document valida documentos fiscales brasileños (CPF y CNPJ) por el dígito verificador módulo 11.
package document

import (
	"fmt"
	"unicode"
)

// pesos del CNPJ (Receita Federal) para el primer y segundo dígito verificador.
var (
	cnpjWeights1 = [12]int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeights2 = [13]int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// Kind tipo de documento reconocido.
type Kind string

const (
	KindCPF   Kind = "CPF"
	KindCNPJ  Kind = "CNPJ"
	KindOther Kind = "OTHER"
)

// Classify decide por la cantidad de dígitos: 11 = CPF, 14 = CNPJ, resto = OTHER.
func Classify(doc string) Kind {
	switch len(Digits(doc)) {
	case 11:
		return KindCPF
	case 14:
		return KindCNPJ
	}
	return KindOther
}

// Validate valida CPF o CNPJ según la cantidad de dígitos. Otros formatos (RG, pasaporte) se aceptan.
func Validate(doc string) error {
	switch Classify(doc) {
	case KindCPF:
		return ValidateCPF(doc)
	case KindCNPJ:
		return ValidateCNPJ(doc)
	}
	return nil
}

// ValidateCPF acepta "529.982.247-25" o "52998224725".
func ValidateCPF(doc string) error {
	d := Digits(doc)
	if len(d) != 11 {
		return fmt.Errorf("document: CPF deve ter 11 dígitos, encontrados %d", len(d))
	}
	if repeated(d) {
		return fmt.Errorf("document: CPF inválido")
	}
	for pos := 9; pos <= 10; pos++ {
		var sum int
		for i := 0; i < pos; i++ {
			sum += int(d[i]-'0') * (pos + 1 - i)
		}
		expected := (sum * 10) % 11
		if expected == 10 {
			expected = 0
		}
		if int(d[pos]-'0') != expected {
			return fmt.Errorf("document: dígito verificador do CPF inválido: esperado %d, recebido %c", expected, d[pos])
		}
	}
	return nil
}

// ValidateCNPJ acepta "11.222.333/0001-81" o "11222333000181".
func ValidateCNPJ(doc string) error {
	d := Digits(doc)
	if len(d) != 14 {
		return fmt.Errorf("document: CNPJ deve ter 14 dígitos, encontrados %d", len(d))
	}
	if repeated(d) {
		return fmt.Errorf("document: CNPJ inválido")
	}
	if dv := cnpjDigit(d[:12], cnpjWeights1[:]); int(d[12]-'0') != dv {
		return fmt.Errorf("document: primeiro dígito verificador do CNPJ inválido: esperado %d, recebido %c", dv, d[12])
	}
	if dv := cnpjDigit(d[:13], cnpjWeights2[:]); int(d[13]-'0') != dv {
		return fmt.Errorf("document: segundo dígito verificador do CNPJ inválido: esperado %d, recebido %c", dv, d[13])
	}
	return nil
}

func cnpjDigit(base []byte, weights []int) int {
	var sum int
	for i, c := range base {
		sum += int(c-'0') * weights[i]
	}
	r := sum % 11
	if r < 2 {
		return 0
	}
	return 11 - r
}

// Digits devuelve solo los dígitos de s.
func Digits(s string) []byte {
	var out []byte
	for _, r := range s {
		if unicode.IsDigit(r) && r < unicode.MaxASCII {
			out = append(out, byte(r))
		}
	}
	return out
}

func repeated(d []byte) bool {
	for _, c := range d[1:] {
		if c != d[0] {
			return false
		}
	}
	return true
}
