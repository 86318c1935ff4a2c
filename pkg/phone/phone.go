// Package phone normaliza contactos telefónicos a E.164 con libphonenumber.
package phone

import (
	"strings"

	"github.com/ttacon/libphonenumber"
)

// Normalize devuelve el número en E.164 (+5511987654321) cuando es válido para la región.
// Contactos que no son teléfono (e-mail, texto libre) se devuelven recortados y sin cambios.
func Normalize(contact, region string) string {
	raw := strings.TrimSpace(contact)
	if raw == "" {
		return raw
	}
	num, err := libphonenumber.Parse(raw, region)
	if err != nil || !libphonenumber.IsValidNumber(num) {
		return raw
	}
	return libphonenumber.Format(num, libphonenumber.E164)
}

// Valid reporta si contact es un teléfono válido para la región.
func Valid(contact, region string) bool {
	num, err := libphonenumber.Parse(strings.TrimSpace(contact), region)
	if err != nil {
		return false
	}
	return libphonenumber.IsValidNumber(num)
}
