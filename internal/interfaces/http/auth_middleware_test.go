package http_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/atelieplus/atelie-api/internal/interfaces/http"
	pkgjwt "github.com/atelieplus/atelie-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de teste
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testEmpresaID = "00000000-0000-0000-0000-000000000002"
	testIssuer    = "atelie-auth-test"
	testExpMin    = 60
)

// fakeModuleChecker devolve os módulos fixados (ou erro, se configurado).
type fakeModuleChecker struct {
	modules map[string]bool
	err     error
}

func (f *fakeModuleChecker) HasActiveModule(empresaID, moduleName string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.modules[moduleName], nil
}

// buildTestApp constrói uma aplicação Fiber mínima com AuthMiddleware e
// RequireModule, mais um handler dummy que devolve 200 se passar.
func buildTestApp(moduleName string, checker *fakeModuleChecker) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireModule(moduleName, checker),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":         true,
				"empresa_id": apphttp.GetEmpresaID(c),
			})
		},
	)
	return app
}

// bearerToken gera um JWT válido com o papel indicado.
func bearerToken(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testEmpresaID, role, testIssuer, testExpMin)
	require.NoError(t, err, "deve gerar um token JWT válido")
	return "Bearer " + tok
}

// doRequest lança um GET /protected e devolve a resposta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Testes AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtraiClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":    apphttp.GetUserID(c),
			"empresa_id": apphttp.GetEmpresaID(c),
			"role":       apphttp.GetRole(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", bearerToken(t, "admin"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, testEmpresaID, body["empresa_id"])
	assert.Equal(t, "admin", body["role"])
}

func TestAuthMiddleware_SemHeader_Retorna401(t *testing.T) {
	app := buildTestApp("orders", &fakeModuleChecker{modules: map[string]bool{"orders": true}})
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp("orders", &fakeModuleChecker{modules: map[string]bool{"orders": true}})
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FormatoErrado_Retorna401(t *testing.T) {
	app := buildTestApp("orders", &fakeModuleChecker{modules: map[string]bool{"orders": true}})
	resp := doRequest(t, app, "Basic abc123")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

// ──────────────────────────────────────────────────────────────────────────────
// Testes RequireModule
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireModule_ModuloAtivoPassa(t *testing.T) {
	app := buildTestApp("orders", &fakeModuleChecker{modules: map[string]bool{"orders": true}})
	resp := doRequest(t, app, bearerToken(t, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"empresa com o módulo ativo deve acessar a rota")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testEmpresaID, body["empresa_id"])
}

func TestRequireModule_ModuloInativo_Retorna403(t *testing.T) {
	app := buildTestApp("fiscal", &fakeModuleChecker{modules: map[string]bool{"orders": true}})
	resp := doRequest(t, app, bearerToken(t, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"empresa sem o módulo deve receber 403")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MODULE_DISABLED")
}

func TestRequireModule_FalhaDeInfra_Retorna503(t *testing.T) {
	app := buildTestApp("orders", &fakeModuleChecker{err: errors.New("db fora do ar")})
	resp := doRequest(t, app, bearerToken(t, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode,
		"falha ao consultar módulos não deve virar 403")
}

// ──────────────────────────────────────────────────────────────────────────────
// Testes do pkg jwt — integridade do generate/parse
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testEmpresaID, "costureira", testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, empresaID, role, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, userID)
	assert.Equal(t, testEmpresaID, empresaID)
	assert.Equal(t, "costureira", role)
}

func TestJWT_TokenExpirado_RetornaErro(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testEmpresaID, "admin", testIssuer, -1)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado deve retornar erro")
}

func TestJWT_SecretIncorreto_RetornaErro(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testEmpresaID, "admin", testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("outro-secret-completamente-diferente", tok)
	assert.Error(t, err, "secret incorreto deve invalidar o token")
}
