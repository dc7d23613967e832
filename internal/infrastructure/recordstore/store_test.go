package recordstore_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/spares-manager/internal/domain"
	"github.com/jhoicas/spares-manager/internal/domain/entity"
	"github.com/jhoicas/spares-manager/internal/infrastructure/memory"
	"github.com/jhoicas/spares-manager/internal/infrastructure/recordstore"
)

// brokenKV backend que siempre falla.
type brokenKV struct{ err error }

func (b brokenKV) Get(context.Context, string) (string, bool, error) { return "", false, b.err }
func (b brokenKV) Set(context.Context, string, string) error         { return b.err }

func TestLoad_ClaveAusenteDevuelveVacio(t *testing.T) {
	store := recordstore.New[entity.Customer](memory.NewKVStore(nil), entity.CustomersKey)
	got, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestLoad_NullDevuelveVacio(t *testing.T) {
	kv := memory.NewKVStore(map[string]string{entity.ProductsKey: "null"})
	got, err := recordstore.New[entity.Product](kv, entity.ProductsKey).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoad_ValorVacioEquivaleAClaveAusente(t *testing.T) {
	for _, raw := range []string{"", "   ", "\n"} {
		kv := memory.NewKVStore(map[string]string{entity.CustomersKey: raw})
		got, err := recordstore.New[entity.Customer](kv, entity.CustomersKey).Load(context.Background())
		require.NoError(t, err, "%q", raw)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	}
}

func TestLoad_ContenidoMalFormadoEsDecodeError(t *testing.T) {
	for _, raw := range []string{"{not json", `{"companyName":"Acme"}`, `"texto"`, "[{"} {
		kv := memory.NewKVStore(map[string]string{entity.CustomersKey: raw})
		_, err := recordstore.New[entity.Customer](kv, entity.CustomersKey).Load(context.Background())
		var dErr *domain.DecodeError
		require.ErrorAs(t, err, &dErr, raw)
		assert.Equal(t, entity.CustomersKey, dErr.Key)
		assert.ErrorIs(t, err, domain.ErrDecode)
	}
}

// Datos escritos por la app original (sin id) se leen tal cual.
func TestLoad_FormatoOriginal(t *testing.T) {
	raw := `[{"companyName":"Acme","contactPerson":"Jo","city":"NY","mobileNumber":"555"}]`
	kv := memory.NewKVStore(map[string]string{entity.CustomersKey: raw})
	got, err := recordstore.New[entity.Customer](kv, entity.CustomersKey).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, entity.Customer{CompanyName: "Acme", ContactPerson: "Jo", City: "NY", MobileNumber: "555"}, got[0])
}

func TestSave_RoundTripConservaOrden(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKVStore(nil)
	store := recordstore.New[entity.Product](kv, entity.ProductsKey)
	in := []entity.Product{
		{ID: "b", ProductType: "Hardware", ProductName: "Bolt", ProductCode: "P1"},
		{ID: "a", ProductType: "Loom", ProductName: "Shuttle", ProductCode: "TS2", Price: "10"},
	}
	require.NoError(t, store.Save(ctx, in))
	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, got)

	raw, _, _ := kv.Get(ctx, entity.ProductsKey)
	assert.NotContains(t, raw, "productImage", "los opcionales vacíos se omiten")
}

func TestSave_NilGuardaArregloVacio(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKVStore(nil)
	require.NoError(t, recordstore.New[entity.Customer](kv, entity.CustomersKey).Save(ctx, nil))
	raw, found, err := kv.Get(ctx, entity.CustomersKey)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "[]", raw)
}

func TestStore_FallosDelBackendSonStorageError(t *testing.T) {
	cause := errors.New("sin espacio")
	store := recordstore.New[entity.Customer](brokenKV{err: cause}, entity.CustomersKey)

	_, err := store.Load(context.Background())
	var sErr *domain.StorageError
	require.ErrorAs(t, err, &sErr)
	assert.Equal(t, "load", sErr.Op)
	assert.ErrorIs(t, err, cause)

	err = store.Save(context.Background(), []entity.Customer{})
	require.ErrorAs(t, err, &sErr)
	assert.Equal(t, "save", sErr.Op)
	assert.ErrorIs(t, err, domain.ErrStorage)
}

func TestStore_ClavesIndependientes(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKVStore(nil)
	customers := recordstore.New[entity.Customer](kv, entity.CustomersKey)
	products := recordstore.New[entity.Product](kv, entity.ProductsKey)

	require.NoError(t, customers.Save(ctx, []entity.Customer{{CompanyName: "Acme"}}))
	got, err := products.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, entity.ProductsKey, products.Key())
}
