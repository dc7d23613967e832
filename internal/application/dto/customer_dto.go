package dto

// CustomerRequest cuerpo para crear o editar un cliente (el formulario envía el registro completo).
type CustomerRequest struct {
	CompanyName   string `json:"companyName"`
	ContactPerson string `json:"contactPerson"`
	City          string `json:"city"`
	MobileNumber  string `json:"mobileNumber"`
}

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	ID            string `json:"id,omitempty"`
	CompanyName   string `json:"companyName"`
	ContactPerson string `json:"contactPerson"`
	City          string `json:"city"`
	MobileNumber  string `json:"mobileNumber"`
}

// CustomerListResponse listado (posiblemente filtrado) de clientes.
type CustomerListResponse struct {
	Items []CustomerResponse `json:"items"`
	Meta  ListMeta           `json:"meta"`
}
