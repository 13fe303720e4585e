package Controllers_test

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"Taller/Controllers"
	"Taller/FiberConfig"
	"Taller/Identity"
	"Taller/Models"
	"Taller/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupApp builds a fresh in-memory store and mounts the production route
// table on a bare app.
func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, Models.Migrate(db))

	Models.DB = db
	middleware.SecretKey = []byte("secreto-de-prueba")
	Controllers.Provider = Identity.NewLocalProvider(db)

	app := fiber.New()
	FiberConfig.SetupRoutes(app)
	return app
}

func seedUsuario(t *testing.T, correo, rol string) Models.Usuario {
	t.Helper()
	usuario := Models.Usuario{Correo: correo, Nombre: "Prueba", Rol: rol}
	require.NoError(t, Models.DB.Create(&usuario).Error)
	return usuario
}

// sessionCookie issues a signed session token for the given email.
func sessionCookie(t *testing.T, correo string) *http.Cookie {
	t.Helper()
	claims := &jwt.RegisteredClaims{
		Issuer:    correo,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(middleware.SecretKey)
	require.NoError(t, err)
	return &http.Cookie{Name: middleware.SessionCookie, Value: token}
}

func doForm(t *testing.T, app *fiber.App, method, path string, form url.Values, cookie *http.Cookie) *http.Response {
	t.Helper()
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func doGet(t *testing.T, app *fiber.App, path string, cookie *http.Cookie) *http.Response {
	t.Helper()
	return doForm(t, app, fiber.MethodGet, path, nil, cookie)
}

func readBody(t *testing.T, resp *http.Response) []byte {
	t.Helper()
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return data
}
