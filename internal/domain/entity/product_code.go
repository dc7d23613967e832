package entity

import (
	"strings"

	"github.com/jhoicas/spares-manager/internal/domain"
)

// ProductCodePrefixes prefijos admitidos para el código de producto.
var ProductCodePrefixes = []string{"P", "T", "TS"}

// DefaultProductCodePrefix prefijo preseleccionado en el formulario de alta.
const DefaultProductCodePrefix = "P"

// ComposeProductCode arma el código <prefijo><número> validando ambas partes.
func ComposeProductCode(prefix, number string) (string, error) {
	prefix = strings.ToUpper(strings.TrimSpace(prefix))
	number = strings.TrimSpace(number)
	if prefix == "" {
		prefix = DefaultProductCodePrefix
	}
	if !validPrefix(prefix) {
		return "", domain.NewValidationError("codePrefix", "debe ser uno de P, T, TS")
	}
	if !positiveInteger(number) {
		return "", domain.NewValidationError("codeNumber", "debe ser un entero positivo")
	}
	return prefix + number, nil
}

// ParseProductCode separa un código en prefijo y número. "TS" se evalúa antes que "T".
func ParseProductCode(code string) (prefix, number string, err error) {
	code = strings.TrimSpace(code)
	for _, p := range []string{"TS", "P", "T"} {
		if strings.HasPrefix(code, p) && positiveInteger(code[len(p):]) {
			return p, code[len(p):], nil
		}
	}
	return "", "", domain.NewValidationError("productCode", "formato esperado <P|T|TS><número>")
}

func validPrefix(prefix string) bool {
	for _, p := range ProductCodePrefixes {
		if p == prefix {
			return true
		}
	}
	return false
}

// positiveInteger acepta solo dígitos ASCII con al menos uno distinto de cero.
func positiveInteger(s string) bool {
	if s == "" {
		return false
	}
	nonZero := false
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
		if r != '0' {
			nonZero = true
		}
	}
	return nonZero
}
