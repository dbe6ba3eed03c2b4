package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/Bodega-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/Bodega-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "bodega-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con AuthMiddleware y un
// handler dummy que devuelve el ámbito cargado a locals.
func buildTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		func(c *fiber.Ctx) error {
			scope := apphttp.GetScope(c)
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"user_id":    apphttp.GetUserID(c),
				"businesses": scope.Businesses,
				"is_admin":   scope.IsAdmin,
			})
		},
	)
	return app
}

// tokenFor genera un JWT con los negocios indicados.
func tokenFor(t *testing.T, businesses []string, isAdmin bool) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, businesses, isAdmin, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
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
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Un token válido carga el ámbito de negocios del llamador a locals.
func TestAuthMiddleware_TokenValido(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, tokenFor(t, []string{"Unica", "HDN Integrated Farm"}, false))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		UserID     string   `json:"user_id"`
		Businesses []string `json:"businesses"`
		IsAdmin    bool     `json:"is_admin"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body.UserID)
	assert.Equal(t, []string{"Unica", "HDN Integrated Farm"}, body.Businesses)
	assert.False(t, body.IsAdmin)
}

// El claim is_admin llega intacto al ámbito.
func TestAuthMiddleware_Admin(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, tokenFor(t, nil, true))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		IsAdmin bool `json:"is_admin"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.IsAdmin)
}

// Sin header Authorization → 401.
func TestAuthMiddleware_SinToken(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Header sin el prefijo Bearer → 401.
func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "Token abc123")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Token firmado con otro secreto → 401.
func TestAuthMiddleware_FirmaIncorrecta(t *testing.T) {
	app := buildTestApp()
	tok, err := pkgjwt.Generate("otro-secreto", testUserID, []string{"Unica"}, false, testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
