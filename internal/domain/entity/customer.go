package entity

import (
	"strings"

	"github.com/jhoicas/spares-manager/internal/domain"
)

// CustomersKey clave de almacenamiento de la colección de clientes.
const CustomersKey = "customers"

// Customer representa un cliente del negocio de repuestos.
// Los tags JSON coinciden con los datos guardados por la app móvil original.
type Customer struct {
	ID            string `json:"id,omitempty"`
	CompanyName   string `json:"companyName"` // campo de identidad
	ContactPerson string `json:"contactPerson"`
	City          string `json:"city"`
	MobileNumber  string `json:"mobileNumber"`
}

var _ Record[Customer] = Customer{}

func (c Customer) RecordID() string { return c.ID }

func (c Customer) WithID(id string) Customer {
	c.ID = id
	return c
}

func (c Customer) IdentityValue() string { return c.CompanyName }

func (c Customer) SearchFields() []string {
	return []string{c.CompanyName, c.ContactPerson, c.City}
}

// Validate exige los cuatro campos; mobileNumber solo se valida como no vacío.
func (c Customer) Validate() error {
	switch {
	case strings.TrimSpace(c.CompanyName) == "":
		return domain.NewValidationError("companyName", "es requerido")
	case strings.TrimSpace(c.ContactPerson) == "":
		return domain.NewValidationError("contactPerson", "es requerido")
	case strings.TrimSpace(c.City) == "":
		return domain.NewValidationError("city", "es requerido")
	case strings.TrimSpace(c.MobileNumber) == "":
		return domain.NewValidationError("mobileNumber", "es requerido")
	}
	return nil
}
