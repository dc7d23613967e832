package main

import (
	"errors"

	"github.com/jhoicas/spares-manager/internal/domain"
)

// userMessage aviso breve para el usuario; el detalle técnico queda en el log.
func userMessage(err error) string {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		return vErr.Error()
	case errors.Is(err, domain.ErrNotFound):
		return "no existe"
	case errors.Is(err, domain.ErrDecode):
		return "los datos guardados están dañados y no se pueden leer"
	case errors.Is(err, domain.ErrStorage):
		return "no se pudo acceder al almacenamiento"
	default:
		return err.Error()
	}
}
