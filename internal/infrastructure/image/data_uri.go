// Package image convierte archivos de imagen en data URIs para Product.ProductImage.
package image

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"strings"
)

// DefaultMIME tipo usado cuando el contenido no se reconoce como imagen.
const DefaultMIME = "image/jpeg"

// DataURI arma data:<mime>;base64,<payload>. Sin validación de tamaño ni formato.
func DataURI(mime string, data []byte) string {
	if mime == "" {
		mime = DefaultMIME
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// DataURIFromFile lee path y detecta el tipo por contenido.
func DataURIFromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("leer imagen: %w", err)
	}
	return DataURI(DetectMIME(data), data), nil
}

// DetectMIME devuelve el tipo image/* detectado o DefaultMIME.
func DetectMIME(data []byte) string {
	mime := http.DetectContentType(data)
	if strings.HasPrefix(mime, "image/") {
		return mime
	}
	return DefaultMIME
}
