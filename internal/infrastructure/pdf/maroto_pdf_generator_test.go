package pdf_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/spares-manager/internal/domain/entity"
	"github.com/jhoicas/spares-manager/internal/infrastructure/pdf"
)

func TestMarotoGenerator_ProductCatalog(t *testing.T) {
	g := pdf.NewMarotoGenerator()
	products := []entity.Product{
		{ProductType: "Hardware", ProductName: "Bolt", ProductCode: "P1", Price: "2.5"},
		{ProductType: "Loom", ProductName: "Shuttle", ProductCode: "TS4", Description: "acero"},
	}
	b, err := g.ProductCatalog(context.Background(), "RKM LOOM SPARES", products)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")))
}

func TestMarotoGenerator_CustomerDirectoryVacio(t *testing.T) {
	g := pdf.NewMarotoGenerator()
	b, err := g.CustomerDirectory(context.Background(), "RKM LOOM SPARES", nil)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")))
}
