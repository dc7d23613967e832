package usecase

import (
	"errors"

	"github.com/jhoicas/spares-manager/internal/domain"
	"github.com/jhoicas/spares-manager/pkg/logger"
)

// logFailure registra fallos de almacenamiento/decodificación (diagnóstico para desarrollo).
// Validaciones y not-found son errores de usuario y no se registran.
func logFailure(log *logger.Logger, op, key string, err error) {
	if errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, domain.ErrNotFound) {
		return
	}
	log.Error().Err(err).Str("op", op).Str("key", key).Msg("operación sobre colección fallida")
}
