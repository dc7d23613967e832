package dto

// ProductRequest cuerpo para crear o editar un producto.
// Si ProductCode va vacío se compone con CodePrefix + CodeNumber.
type ProductRequest struct {
	ProductType  string `json:"productType"`
	ProductName  string `json:"productName"`
	ProductCode  string `json:"productCode,omitempty"`
	CodePrefix   string `json:"codePrefix,omitempty"`
	CodeNumber   string `json:"codeNumber,omitempty"`
	ProductImage string `json:"productImage,omitempty"`
	Description  string `json:"description,omitempty"`
	Price        string `json:"price,omitempty"`
}

// ProductResponse producto en respuestas.
type ProductResponse struct {
	ID           string `json:"id,omitempty"`
	ProductType  string `json:"productType"`
	ProductName  string `json:"productName"`
	ProductCode  string `json:"productCode"`
	ProductImage string `json:"productImage,omitempty"`
	Description  string `json:"description,omitempty"`
	Price        string `json:"price,omitempty"`
}

// ProductListResponse listado (posiblemente filtrado) de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Meta  ListMeta          `json:"meta"`
}
