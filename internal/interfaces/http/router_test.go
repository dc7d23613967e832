package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/spares-manager/internal/application/dto"
	"github.com/jhoicas/spares-manager/internal/application/share"
	"github.com/jhoicas/spares-manager/internal/bootstrap"
	"github.com/jhoicas/spares-manager/internal/domain/entity"
	"github.com/jhoicas/spares-manager/internal/infrastructure/memory"
	apihttp "github.com/jhoicas/spares-manager/internal/interfaces/http"
	"github.com/jhoicas/spares-manager/pkg/config"
	"github.com/jhoicas/spares-manager/pkg/jwt"
	"github.com/jhoicas/spares-manager/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func newTestApp(t *testing.T, token config.TokenConfig, seed map[string]string) *fiber.App {
	t.Helper()
	return newTestAppWithLog(t, token, seed, logger.Nop())
}

func newTestAppWithLog(t *testing.T, token config.TokenConfig, seed map[string]string, log *logger.Logger) *fiber.App {
	t.Helper()
	cfg := &config.Config{
		App:   config.AppConfig{Env: "test", BusinessName: "RKM LOOM SPARES"},
		Token: token,
		Share: config.ShareConfig{Scheme: "whatsapp"},
	}
	deps := bootstrap.Wire(cfg, log, memory.NewKVStore(seed), share.NewService("whatsapp", nil))
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	deps.LoadSession(ctx)

	app := fiber.New()
	apihttp.Router(app, apihttp.RouterDeps{
		CustomerUC: deps.Customers,
		ProductUC:  deps.Products,
		ExportUC:   deps.Export,
		Token:      token,
		Log:        log,
	})
	return app
}

func do(t *testing.T, app *fiber.App, method, path string, body any, headers ...string) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

func decode[T any](t *testing.T, b []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(b, &v), string(b))
	return v
}

var acme = dto.CustomerRequest{CompanyName: "Acme", ContactPerson: "Jo", City: "NY", MobileNumber: "555"}

// ──────────────────────────────────────────────────────────────────────────────
// Clientes
// ──────────────────────────────────────────────────────────────────────────────

func TestCustomers_CRUD(t *testing.T) {
	app := newTestApp(t, config.TokenConfig{}, nil)

	status, body := do(t, app, fiber.MethodPost, "/api/customers", acme)
	require.Equal(t, fiber.StatusCreated, status, string(body))
	created := decode[dto.CustomerResponse](t, body)
	require.NotEmpty(t, created.ID)

	status, body = do(t, app, fiber.MethodGet, "/api/customers?q=acm", nil)
	require.Equal(t, fiber.StatusOK, status)
	list := decode[dto.CustomerListResponse](t, body)
	assert.Len(t, list.Items, 1)
	assert.Equal(t, 1, list.Meta.Total)

	edited := acme
	edited.City = "LA"
	status, body = do(t, app, fiber.MethodPut, "/api/customers/"+created.ID, edited)
	require.Equal(t, fiber.StatusOK, status, string(body))
	assert.Equal(t, "LA", decode[dto.CustomerResponse](t, body).City)

	status, body = do(t, app, fiber.MethodGet, "/api/customers/"+created.ID+"/share", nil)
	require.Equal(t, fiber.StatusOK, status)
	msg := decode[share.Message](t, body)
	assert.Equal(t, "Company: Acme\nContact: Jo\nCity: LA\nMobile: 555", msg.Text)
	assert.True(t, strings.HasPrefix(msg.URI, "whatsapp://send?text="))

	status, _ = do(t, app, fiber.MethodDelete, "/api/customers/"+created.ID, nil)
	assert.Equal(t, fiber.StatusNoContent, status)
	status, _ = do(t, app, fiber.MethodGet, "/api/customers/"+created.ID, nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestCustomers_ValidacionDevuelve400(t *testing.T) {
	app := newTestApp(t, config.TokenConfig{}, nil)

	status, body := do(t, app, fiber.MethodPost, "/api/customers", dto.CustomerRequest{CompanyName: "Acme"})
	require.Equal(t, fiber.StatusBadRequest, status)
	errResp := decode[dto.ErrorResponse](t, body)
	assert.Equal(t, "VALIDATION", errResp.Code)
	assert.Equal(t, "contactPerson", errResp.Field)

	req := httptest.NewRequest(fiber.MethodPost, "/api/customers", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCustomers_PorNombreAfectaHomonimos(t *testing.T) {
	app := newTestApp(t, config.TokenConfig{}, nil)
	twin := acme
	twin.CompanyName = "Acme Ltd"
	for _, c := range []dto.CustomerRequest{twin, twin, acme} {
		status, _ := do(t, app, fiber.MethodPost, "/api/customers", c)
		require.Equal(t, fiber.StatusCreated, status)
	}

	edited := twin
	edited.City = "Pune"
	path := "/api/customers/by-name/" + url.PathEscape("Acme Ltd")
	status, body := do(t, app, fiber.MethodPut, path, edited)
	require.Equal(t, fiber.StatusOK, status, string(body))
	assert.Equal(t, 2, decode[dto.MutationResponse](t, body).Affected)

	status, body = do(t, app, fiber.MethodDelete, path, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, 2, decode[dto.MutationResponse](t, body).Affected)

	_, body = do(t, app, fiber.MethodGet, "/api/customers", nil)
	list := decode[dto.CustomerListResponse](t, body)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "Acme", list.Items[0].CompanyName)

	status, body = do(t, app, fiber.MethodDelete, "/api/customers/by-name/Nadie", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Zero(t, decode[dto.MutationResponse](t, body).Affected)
}

func TestCustomers_DatoIlegibleDevuelve500(t *testing.T) {
	app := newTestApp(t, config.TokenConfig{}, map[string]string{entity.CustomersKey: "{roto"})

	status, body := do(t, app, fiber.MethodPost, "/api/customers", acme)
	require.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "DECODE_ERROR", decode[dto.ErrorResponse](t, body).Code)

	status, _ = do(t, app, fiber.MethodGet, "/api/customers?refresh=true", nil)
	assert.Equal(t, fiber.StatusInternalServerError, status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos y exportación
// ──────────────────────────────────────────────────────────────────────────────

func TestProducts_CodigoCompuesto(t *testing.T) {
	app := newTestApp(t, config.TokenConfig{}, nil)

	in := dto.ProductRequest{ProductType: "Hardware", ProductName: "Bolt", CodePrefix: "ts", CodeNumber: "12", Price: "2.50"}
	status, body := do(t, app, fiber.MethodPost, "/api/products", in)
	require.Equal(t, fiber.StatusCreated, status, string(body))
	created := decode[dto.ProductResponse](t, body)
	assert.Equal(t, "TS12", created.ProductCode)

	status, body = do(t, app, fiber.MethodGet, "/api/products/"+created.ID+"/share", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, decode[share.Message](t, body).Text, "Price: $2.50")

	bad := dto.ProductRequest{ProductType: "Hardware", ProductName: "Nut", CodePrefix: "P", CodeNumber: "0"}
	status, body = do(t, app, fiber.MethodPost, "/api/products", bad)
	require.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "codeNumber", decode[dto.ErrorResponse](t, body).Field)
}

func TestProducts_UpdatePorIDInexistente(t *testing.T) {
	app := newTestApp(t, config.TokenConfig{}, nil)
	in := dto.ProductRequest{ProductType: "Hardware", ProductName: "Bolt", ProductCode: "P1"}

	status, _ := do(t, app, fiber.MethodPut, "/api/products/no-existe", in)
	assert.Equal(t, fiber.StatusNotFound, status)
	status, _ = do(t, app, fiber.MethodDelete, "/api/products/no-existe", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestExport_PDF(t *testing.T) {
	app := newTestApp(t, config.TokenConfig{}, nil)
	status, _ := do(t, app, fiber.MethodPost, "/api/products", dto.ProductRequest{ProductType: "Hardware", ProductName: "Bolt", ProductCode: "P1"})
	require.Equal(t, fiber.StatusCreated, status)

	req := httptest.NewRequest(fiber.MethodGet, "/api/products/catalog.pdf", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware(t *testing.T) {
	token := config.TokenConfig{Secret: "s3cret", Issuer: "spares-manager", Expiration: 60}
	app := newTestApp(t, token, nil)

	status, body := do(t, app, fiber.MethodGet, "/api/customers", nil)
	require.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "MISSING_TOKEN", decode[dto.ErrorResponse](t, body).Code)

	status, _ = do(t, app, fiber.MethodGet, "/api/customers", nil, "Authorization", "Basic abc")
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, _ = do(t, app, fiber.MethodGet, "/api/customers", nil, "Authorization", "Bearer basura")
	assert.Equal(t, fiber.StatusUnauthorized, status)

	tok, err := jwt.Generate(token.Secret, "tablet", token.Issuer, token.Expiration)
	require.NoError(t, err)
	status, _ = do(t, app, fiber.MethodGet, "/api/customers", nil, "Authorization", "Bearer "+tok)
	assert.Equal(t, fiber.StatusOK, status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Datos heredados de la app móvil (sin id)
// ──────────────────────────────────────────────────────────────────────────────

func TestLegacy_RegistrosSinIDSonAlcanzables(t *testing.T) {
	app := newTestApp(t, config.TokenConfig{}, map[string]string{
		entity.CustomersKey: `[{"companyName":"Acme","contactPerson":"Jo","city":"NY","mobileNumber":"555"}]`,
		entity.ProductsKey:  `[{"productType":"Hardware","productName":"Bolt","productCode":"P1","price":"2"}]`,
	})

	status, body := do(t, app, fiber.MethodGet, "/api/customers", nil)
	require.Equal(t, fiber.StatusOK, status)
	list := decode[dto.CustomerListResponse](t, body)
	require.Len(t, list.Items, 1)
	id := list.Items[0].ID
	require.NotEmpty(t, id, "el registro heredado recibe id al cargar la sesión")

	status, body = do(t, app, fiber.MethodGet, "/api/customers/"+id+"/share", nil)
	require.Equal(t, fiber.StatusOK, status, string(body))
	assert.Equal(t, "Company: Acme\nContact: Jo\nCity: NY\nMobile: 555", decode[share.Message](t, body).Text)

	edited := acme
	edited.City = "LA"
	status, _ = do(t, app, fiber.MethodPut, "/api/customers/"+id, edited)
	assert.Equal(t, fiber.StatusOK, status)

	status, body = do(t, app, fiber.MethodGet, "/api/customers/by-name/Acme/share", nil)
	require.Equal(t, fiber.StatusOK, status, string(body))
	assert.Contains(t, decode[share.Message](t, body).Text, "City: LA")

	status, body = do(t, app, fiber.MethodGet, "/api/products/by-name/Bolt/share", nil)
	require.Equal(t, fiber.StatusOK, status, string(body))
	assert.Contains(t, decode[share.Message](t, body).Text, "Name: Bolt")

	status, _ = do(t, app, fiber.MethodGet, "/api/products/by-name/Nada/share", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestRequestLog_RegistraDevice(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "debug", Output: &buf})
	token := config.TokenConfig{Secret: "s3cret", Issuer: "spares-manager", Expiration: 60}
	app := newTestAppWithLog(t, token, nil, log)

	tok, err := jwt.Generate(token.Secret, "tablet-7", token.Issuer, token.Expiration)
	require.NoError(t, err)
	status, _ := do(t, app, fiber.MethodGet, "/api/products", nil, "Authorization", "Bearer "+tok)
	require.Equal(t, fiber.StatusOK, status)

	assert.Contains(t, buf.String(), `"device":"tablet-7"`)
	assert.Contains(t, buf.String(), `"path":"/api/products"`)
}
