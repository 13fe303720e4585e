package Controllers_test

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"Taller/Controllers"
	"Taller/Models"
	"Taller/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProvider records calls so tests can observe the compensating delete.
type fakeProvider struct {
	signInErr error
	signUpErr error
	deleted   []string
}

func (p *fakeProvider) SignIn(email, password string) error { return p.signInErr }
func (p *fakeProvider) SignUp(email, password string) error { return p.signUpErr }
func (p *fakeProvider) DeleteIdentity(email string) error {
	p.deleted = append(p.deleted, email)
	return nil
}

func registerForm(email string) url.Values {
	return url.Values{
		"email":    {email},
		"password": {"secreto123"},
		"nombre":   {"Juan"},
		"rol":      {Models.RolMecanico},
	}
}

func TestRegisterThenLogin(t *testing.T) {
	app := setupApp(t)

	resp := doForm(t, app, fiber.MethodPost, "/register", registerForm("juan@taller.mx"), nil)
	require.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	login := url.Values{"email": {"juan@taller.mx"}, "password": {"secreto123"}}
	resp = doForm(t, app, fiber.MethodPost, "/login", login, nil)
	require.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/ordenes", resp.Header.Get("Location"))

	var sesion string
	for _, c := range resp.Cookies() {
		if c.Name == middleware.SessionCookie {
			sesion = c.Value
		}
	}
	require.NotEmpty(t, sesion, "login must set the session cookie")

	resp = doGet(t, app, "/api/usuario", &http.Cookie{Name: middleware.SessionCookie, Value: sesion})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var identidad Models.SesionUsuario
	require.NoError(t, json.Unmarshal(readBody(t, resp), &identidad))
	assert.Equal(t, "juan@taller.mx", identidad.Correo)
	assert.Equal(t, Models.RolMecanico, identidad.Rol)
}

func TestLoginInvalidCredentials(t *testing.T) {
	app := setupApp(t)
	doForm(t, app, fiber.MethodPost, "/register", registerForm("juan@taller.mx"), nil)

	login := url.Values{"email": {"juan@taller.mx"}, "password": {"incorrecta"}}
	resp := doForm(t, app, fiber.MethodPost, "/login", login, nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestLoginUpstreamFailure(t *testing.T) {
	app := setupApp(t)
	Controllers.Provider = &fakeProvider{
		signInErr: &Models.UpstreamError{Service: "identidad", Err: assert.AnError},
	}

	login := url.Values{"email": {"juan@taller.mx"}, "password": {"secreto123"}}
	resp := doForm(t, app, fiber.MethodPost, "/login", login, nil)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestRegisterCompensatesFailedRowInsert(t *testing.T) {
	app := setupApp(t)
	provider := &fakeProvider{}
	Controllers.Provider = provider

	resp := doForm(t, app, fiber.MethodPost, "/register", registerForm("juan@taller.mx"), nil)
	require.Equal(t, fiber.StatusFound, resp.StatusCode)

	// Same correo again: the identity is created, the row insert hits the
	// unique index, and the identity must be deleted again.
	resp = doForm(t, app, fiber.MethodPost, "/register", registerForm("juan@taller.mx"), nil)
	require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, []string{"juan@taller.mx"}, provider.deleted)

	var count int64
	Models.DB.Model(&Models.Usuario{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestLogoutClearsSession(t *testing.T) {
	app := setupApp(t)

	resp := doGet(t, app, "/logout", nil)
	require.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	var cleared bool
	for _, c := range resp.Cookies() {
		if c.Name == middleware.SessionCookie && c.Value == "" {
			cleared = true
		}
	}
	assert.True(t, cleared, "logout must expire the session cookie")
}

func TestFetchUsersRequiresAdministrador(t *testing.T) {
	app := setupApp(t)
	seedUsuario(t, "dueno@taller.mx", Models.RolDueno)
	seedUsuario(t, "admin@taller.mx", Models.RolAdministrador)

	resp := doGet(t, app, "/api/usuarios", sessionCookie(t, "dueno@taller.mx"))
	require.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	resp = doGet(t, app, "/api/usuarios", sessionCookie(t, "admin@taller.mx"))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var usuarios []Models.Usuario
	require.NoError(t, json.Unmarshal(readBody(t, resp), &usuarios))
	assert.Len(t, usuarios, 2)
}
