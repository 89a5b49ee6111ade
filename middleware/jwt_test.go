package middleware

import (
	"net/http/httptest"
	"testing"
	"tms/config"
	"tms/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJWTTestApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{JWTKey: "test-secret"}

	app := fiber.New()
	app.Get("/protected", JWTMiddleware, func(c *fiber.Ctx) error {
		userID, _ := c.Locals("userId").(uint)
		role, _ := c.Locals("role").(string)
		return JsonResponse(c, fiber.StatusOK, true, "ok", fiber.Map{
			"userId": userID,
			"role":   role,
		})
	})
	return app
}

func TestJWTMiddlewareAcceptsValidToken(t *testing.T) {
	app := newJWTTestApp(t)

	token, err := GenerateJWT(42, "Instructor", models.RoleInstructor, "i@example.com", "")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestJWTMiddlewareRejectsMissingHeader(t *testing.T) {
	app := newJWTTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTMiddlewareRejectsMalformedToken(t *testing.T) {
	app := newJWTTestApp(t)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTMiddlewareRejectsTokenSignedWithWrongKey(t *testing.T) {
	config.AppConfig = &config.Config{JWTKey: "other-secret"}
	token, err := GenerateJWT(42, "Instructor", models.RoleInstructor, "i@example.com", "")
	require.NoError(t, err)

	app := newJWTTestApp(t) // resets key to test-secret

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
