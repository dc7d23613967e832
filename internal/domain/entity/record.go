package entity

// Record contrato común de Customer y Product para el servicio genérico de colecciones.
// T es el propio tipo concreto (Customer o Product).
type Record[T any] interface {
	// RecordID identificador generado; vacío en datos heredados sin id.
	RecordID() string
	// WithID devuelve una copia con el id indicado.
	WithID(id string) T
	// IdentityValue campo visible usado como clave de búsqueda para update/delete por nombre.
	IdentityValue() string
	// SearchFields campos sobre los que se aplica la búsqueda por subcadena.
	SearchFields() []string
	// Validate verifica campos requeridos y formatos.
	Validate() error
}
