package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/asoadmin-api/internal/application/auth"
	"github.com/jhoicas/asoadmin-api/internal/application/ledger"
	"github.com/jhoicas/asoadmin-api/internal/application/usecase"
	"github.com/jhoicas/asoadmin-api/internal/domain/entity"
	"github.com/jhoicas/asoadmin-api/internal/infrastructure/memory"
	"github.com/jhoicas/asoadmin-api/internal/infrastructure/pdf"
	"github.com/jhoicas/asoadmin-api/internal/pkg/clock"
	apphttp "github.com/jhoicas/asoadmin-api/internal/interfaces/http"
	"github.com/jhoicas/asoadmin-api/pkg/logger"
)

type envelope struct {
	Success bool            `json:"success"`
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors"`
}

type testServer struct {
	app *fiber.App
}

// newTestServer monta la API completa sobre el store en memoria con un super-admin "root".
func newTestServer(t *testing.T) *testServer {
	t.Helper()
	store := memory.NewStore()
	clk := clock.NewRealClock()
	principals := store.EmployeePrincipals()

	hash, err := bcrypt.GenerateFromPassword([]byte("super123"), bcrypt.MinCost)
	require.NoError(t, err)
	now := time.Now()
	require.NoError(t, principals.Upsert(context.Background(), &entity.Principal{
		ID: uuid.NewString(), Username: "root", Name: "Super Admin", PasswordHash: string(hash),
		Role: entity.RoleSuperAdmin, Active: true, CreatedAt: now, UpdatedAt: now,
	}))

	log := logger.Nop()
	metrics := apphttp.NewMetrics("asoadmin")
	app := apphttp.NewApp(apphttp.AppConfig{Name: "test", Env: "test", CORSOrigin: "*"}, log, metrics)
	apphttp.Router(app, apphttp.RouterDeps{
		Env:        "test",
		AuthUC:     auth.NewAuthUseCase(principals, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: 60, Issuer: testIssuer}, clk),
		Verifier:   auth.NewTokenVerifier(testJWTSecret),
		PartnerUC:  usecase.NewPartnerUseCase(store.Partners, clk),
		ProductUC:  usecase.NewProductUseCase(store.Products, clk),
		EmployeeUC: usecase.NewEmployeeUseCase(store.Employees, clk),
		LedgerUC: ledger.NewUseCase(store.Tx, store.Records, pdf.NewMarotoReceiptGenerator("Club"), clk, ledger.Config{
			EmployeeIsPrincipal: true,
		}),
		Metrics: metrics,
		DocJSON: func() (string, error) { return `{"swagger":"2.0"}`, nil },
	})
	return &testServer{app: app}
}

func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) (*http.Response, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	var env envelope
	if bytes.HasPrefix(raw, []byte("{")) {
		require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	}
	return resp, env
}

func (s *testServer) login(t *testing.T, username, password string) string {
	t.Helper()
	resp, env := s.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"username": username, "password": password})
	require.Equal(t, http.StatusOK, resp.StatusCode, env.Message)
	var out struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &out))
	return out.Token
}

func decode[T any](t *testing.T, env envelope) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(env.Data, &v))
	return v
}

func TestRouter_EndToEndLedger(t *testing.T) {
	s := newTestServer(t)
	root := s.login(t, "root", "super123")

	resp, env := s.do(t, http.MethodPost, "/api/auth/register", root, map[string]string{
		"username": "Recepcion", "password": "admin123", "name": "Recepción", "role": "admin",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, env.Message)
	admin := s.login(t, "recepcion", "admin123")

	resp, env = s.do(t, http.MethodPost, "/api/partners", admin, map[string]string{"name": "Ana", "type": "Regular"})
	require.Equal(t, http.StatusCreated, resp.StatusCode, env.Message)
	assert.Equal(t, "Socio creado exitosamente", env.Message)
	partner := decode[map[string]interface{}](t, env)

	resp, env = s.do(t, http.MethodPost, "/api/products", admin, map[string]interface{}{"name": "Soda", "credits": 10})
	require.Equal(t, http.StatusCreated, resp.StatusCode, env.Message)
	product := decode[map[string]interface{}](t, env)

	resp, env = s.do(t, http.MethodPost, "/api/records", admin, map[string]interface{}{
		"partner": partner["id"], "product": product["id"], "quantity": 3, "totalCredits": 1,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, env.Message)
	assert.Equal(t, "Registro creado exitosamente", env.Message)
	rec := decode[map[string]interface{}](t, env)
	assert.Equal(t, "30", rec["totalCredits"])
	assert.Equal(t, "Ana", rec["partnerName"])
	assert.Equal(t, "Recepción", rec["employeeName"])

	resp, env = s.do(t, http.MethodGet, "/api/records/stats", admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	stats := decode[map[string]interface{}](t, env)
	assert.EqualValues(t, 1, stats["totalRecords"])
	assert.Equal(t, "30", stats["totalCredits"])

	resp, env = s.do(t, http.MethodGet, "/api/records?page=1&limit=10", admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[struct {
		Records    []map[string]interface{} `json:"records"`
		Pagination map[string]interface{}   `json:"pagination"`
	}](t, env)
	assert.Len(t, list.Records, 1)
	assert.EqualValues(t, 1, list.Pagination["totalPages"])
	assert.Equal(t, false, list.Pagination["hasNext"])

	resp, env = s.do(t, http.MethodGet, "/api/records/partner/"+partner["id"].(string), admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Registros del socio", env.Message)

	resp, env = s.do(t, http.MethodGet, "/api/records/"+rec["id"].(string), admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Registro encontrado", env.Message)

	resp, _ = s.do(t, http.MethodGet, "/api/records/"+rec["id"].(string)+"/receipt", admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
}

func TestRouter_Authorization(t *testing.T) {
	s := newTestServer(t)
	root := s.login(t, "root", "super123")
	resp, _ := s.do(t, http.MethodPost, "/api/auth/register", root, map[string]string{
		"username": "admin", "password": "admin123", "name": "Admin",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	admin := s.login(t, "admin", "admin123")

	resp, env := s.do(t, http.MethodPost, "/api/auth/register", admin, map[string]string{
		"username": "otro", "password": "admin123", "name": "Otro",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, apphttp.CodeForbidden, env.Code)
	assert.False(t, env.Success)

	resp, _ = s.do(t, http.MethodGet, "/api/auth/users", admin, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, env = s.do(t, http.MethodGet, "/api/auth/users", root, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	users := decode[[]map[string]interface{}](t, env)
	assert.Len(t, users, 2)

	resp, _ = s.do(t, http.MethodPost, "/api/partners", "", map[string]string{"name": "Ana"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = s.do(t, http.MethodGet, "/api/records", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, env = s.do(t, http.MethodGet, "/api/auth/profile", admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	profile := decode[map[string]interface{}](t, env)
	assert.Equal(t, "admin", profile["username"])
}

func TestRouter_LoginFailure(t *testing.T) {
	s := newTestServer(t)
	for _, body := range []map[string]string{
		{"username": "root", "password": "mal"},
		{"username": "fantasma", "password": "super123"},
	} {
		resp, env := s.do(t, http.MethodPost, "/api/auth/login", "", body)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "Credenciales inválidas", env.Message)
	}
}

func TestRouter_ErrorEnvelopes(t *testing.T) {
	s := newTestServer(t)
	root := s.login(t, "root", "super123")

	resp, env := s.do(t, http.MethodPost, "/api/records", root, map[string]interface{}{
		"partner": uuid.NewString(), "product": uuid.NewString(), "quantity": 0,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, apphttp.CodeValidation, env.Code)
	assert.Equal(t, "Datos de entrada inválidos", env.Message)
	require.NotEmpty(t, env.Errors)
	assert.Equal(t, "quantity", env.Errors[0].Field)

	resp, env = s.do(t, http.MethodPost, "/api/records", root, map[string]interface{}{
		"partner": uuid.NewString(), "product": uuid.NewString(), "quantity": 1,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, apphttp.CodeNotFound, env.Code)

	resp, env = s.do(t, http.MethodGet, "/api/partners/no-uuid", "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, apphttp.CodeValidation, env.Code)

	resp, env = s.do(t, http.MethodGet, "/api/records?date=ayer", root, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "date", env.Errors[0].Field)

	resp, _ = s.do(t, http.MethodPost, "/api/products", root, map[string]interface{}{"name": "Soda", "credits": 1})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp, env = s.do(t, http.MethodPost, "/api/products", root, map[string]interface{}{"name": "Soda", "credits": 2})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, apphttp.CodeDuplicate, env.Code)

	resp, env = s.do(t, http.MethodGet, "/api/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Ruta no encontrada: /api/nope", env.Message)

	resp, env = s.do(t, http.MethodGet, "/api/records/x/y", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, apphttp.CodeNotFound, env.Code)
	assert.Equal(t, "Ruta no encontrada: /api/records/x/y", env.Message)

	for _, path := range []string{"/api/records", "/api/records/stats", "/api/records/" + uuid.NewString()} {
		resp, env = s.do(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
		assert.Equal(t, apphttp.CodeMissingToken, env.Code, path)
	}

	resp, env = s.do(t, http.MethodGet, "/api/records?page=9223372036854775807", root, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode, env.Message)
}

func TestRouter_PublicCatalogAndSearch(t *testing.T) {
	s := newTestServer(t)
	root := s.login(t, "root", "super123")
	for _, n := range []string{"Ana", "Mariana", "Luis"} {
		resp, _ := s.do(t, http.MethodPost, "/api/partners", root, map[string]string{"name": n})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp, env := s.do(t, http.MethodGet, "/api/partners", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Lista de socios", env.Message)
	assert.Len(t, decode[[]map[string]interface{}](t, env), 3)

	resp, env = s.do(t, http.MethodGet, "/api/partners?search=ana", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	found := decode[[]map[string]interface{}](t, env)
	require.Len(t, found, 2)
	assert.Equal(t, "Ana", found[0]["name"])
}

func TestRouter_HealthMetricsDocs(t *testing.T) {
	s := newTestServer(t)

	for _, p := range []string{"/health", "/api/health", "/"} {
		resp, env := s.do(t, http.MethodGet, p, "", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode, p)
		assert.True(t, env.Success, p)
	}

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), "asoadmin_http_requests_total")

	req = httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil)
	resp, err = s.app.Test(req, -1)
	require.NoError(t, err)
	raw, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.JSONEq(t, `{"swagger":"2.0"}`, string(raw))
}
