package collection

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/spares-manager/internal/domain/entity"
)

// Search devuelve, en el orden original, los registros donde algún campo de búsqueda
// contiene query sin distinguir mayúsculas. Query vacía => colección completa.
// No lee almacenamiento: es una proyección pura sobre records.
func Search[T entity.Record[T]](records []T, query string) []T {
	out := make([]T, 0, len(records))
	if query == "" {
		return append(out, records...)
	}
	// cases.Caser no es seguro entre goroutines; uno por llamada.
	lower := cases.Lower(language.Und)
	needle := lower.String(query)
	for _, r := range records {
		for _, field := range r.SearchFields() {
			if strings.Contains(lower.String(field), needle) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}
