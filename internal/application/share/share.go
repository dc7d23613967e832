// Package share arma el texto legible de un registro y el URI de la app de mensajería.
package share

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/jhoicas/spares-manager/internal/domain/entity"
)

// Kind tipo de registro compartido.
type Kind string

const (
	KindCustomer Kind = "customer"
	KindProduct  Kind = "product"
)

// Opener colaborador del sistema operativo que abre un URI externo.
type Opener interface {
	Open(ctx context.Context, uri string) error
}

// Message texto + URI listo para entregar al sistema operativo.
type Message struct {
	Kind Kind   `json:"kind"`
	Text string `json:"text"`
	URI  string `json:"uri"`
}

// FormatCustomer texto de un cliente.
func FormatCustomer(c entity.Customer) string {
	return fmt.Sprintf("Company: %s\nContact: %s\nCity: %s\nMobile: %s",
		c.CompanyName, c.ContactPerson, c.City, c.MobileNumber)
}

// FormatProduct texto de un producto. Sin descripción se muestra N/A.
func FormatProduct(p entity.Product) string {
	description := p.Description
	if description == "" {
		description = "N/A"
	}
	return fmt.Sprintf("*Product Details*\nName: %s\nType: %s\nPrice: $%s\n\nDescription: %s",
		p.ProductName, p.ProductType, p.Price, description)
}

// BuildURI devuelve <scheme>://send?text=<texto codificado>.
// Los espacios van como %20 (equivalente a encodeURIComponent), no como '+'.
func BuildURI(scheme, text string) string {
	return scheme + "://send?text=" + EncodeComponent(text)
}

// componentReplacer deja sin escapar los mismos caracteres que encodeURIComponent.
var componentReplacer = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeComponent codifica text para un componente de URI.
func EncodeComponent(text string) string {
	return componentReplacer.Replace(url.QueryEscape(text))
}

// Service arma mensajes y, si se pide, los entrega al Opener.
type Service struct {
	scheme string
	opener Opener
}

// NewService construye el servicio. opener puede ser nil si solo se arman mensajes.
func NewService(scheme string, opener Opener) *Service {
	return &Service{scheme: scheme, opener: opener}
}

// Customer mensaje para un cliente.
func (s *Service) Customer(c entity.Customer) Message {
	text := FormatCustomer(c)
	return Message{Kind: KindCustomer, Text: text, URI: BuildURI(s.scheme, text)}
}

// Product mensaje para un producto.
func (s *Service) Product(p entity.Product) Message {
	text := FormatProduct(p)
	return Message{Kind: KindProduct, Text: text, URI: BuildURI(s.scheme, text)}
}

// Open entrega el URI al sistema operativo. El error se informa, nunca se reintenta.
func (s *Service) Open(ctx context.Context, msg Message) error {
	if s.opener == nil {
		return fmt.Errorf("share: sin opener configurado")
	}
	if err := s.opener.Open(ctx, msg.URI); err != nil {
		return fmt.Errorf("share: abrir %s: %w", s.scheme, err)
	}
	return nil
}
