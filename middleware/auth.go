package middleware

import (
	"Taller/Models"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/exp/slices"
)

// SecretKey signs the session cookie. Populated from SESSION_SECRET at
// startup; there is deliberately no fallback value.
var SecretKey []byte

const SessionCookie = "sesion"

// LoadSecret reads SESSION_SECRET and fails hard when it is missing.
func LoadSecret() {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		log.Fatal("SESSION_SECRET is required")
	}
	SecretKey = []byte(secret)
}

// Verify gates a route group behind a set of permitted roles. It resolves
// the session cookie to a user row and stores it in c.Locals("usuario").
// A missing/invalid session or a role outside the set redirects to /login;
// the wrapped handler is never reached. Once the role check passes the
// handler runs with full access.
func Verify(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cookie := c.Cookies(SessionCookie)
		if cookie == "" {
			return c.Redirect("/login", fiber.StatusFound)
		}

		token, err := jwt.ParseWithClaims(cookie, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
			return SecretKey, nil
		})
		if err != nil {
			return c.Redirect("/login", fiber.StatusFound)
		}

		claims, ok := token.Claims.(*jwt.RegisteredClaims)
		if !ok {
			return c.Redirect("/login", fiber.StatusFound)
		}

		var usuario Models.Usuario
		if err := Models.DB.Where("correo = ?", claims.Issuer).First(&usuario).Error; err != nil {
			return c.Redirect("/login", fiber.StatusFound)
		}

		c.Locals("usuario", usuario)

		if !slices.Contains(roles, usuario.Rol) {
			return c.Redirect("/login", fiber.StatusFound)
		}
		return c.Next()
	}
}
