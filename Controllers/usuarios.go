package Controllers

import (
	"errors"
	"log"
	"time"

	"Taller/Identity"
	"Taller/Models"
	"Taller/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// Provider is the configured identity backend. Set in main; tests swap in
// a double.
var Provider Identity.Provider

type loginRequest struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

type registerRequest struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=6"`
	Nombre   string `form:"nombre" validate:"required"`
	Rol      string `form:"rol" validate:"required,oneof=administrador dueno mecanico hojalatero"`
}

// Login verifies credentials with the identity provider and establishes the
// session cookie
// POST /login
func Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Datos incompletos",
			"campos": translateErrors(err),
		})
	}

	if err := Provider.SignIn(req.Email, req.Password); err != nil {
		if errors.Is(err, Models.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Usuario o contraseña incorrectos",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	// The provider only holds credentials; the role lives on our row.
	var usuario Models.Usuario
	if err := Models.DB.Where("correo = ?", req.Email).First(&usuario).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	claims := &jwt.RegisteredClaims{
		Issuer:    usuario.Correo,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(middleware.SecretKey)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
	})

	return c.Redirect("/ordenes", fiber.StatusFound)
}

// Register creates the provider identity and the user row. The two writes
// are not transactional: when the row insert fails the provider identity is
// deleted again so no orphan is left behind.
// POST /register
func Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Datos incompletos",
			"campos": translateErrors(err),
		})
	}

	if err := Provider.SignUp(req.Email, req.Password); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	usuario := Models.Usuario{Correo: req.Email, Nombre: req.Nombre, Rol: req.Rol}
	if err := Models.DB.Create(&usuario).Error; err != nil {
		if delErr := Provider.DeleteIdentity(req.Email); delErr != nil {
			log.Println("compensating identity delete failed:", delErr)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Redirect("/login", fiber.StatusFound)
}

// Logout clears the session unconditionally
// GET /logout
func Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return c.Redirect("/login", fiber.StatusFound)
}

// User returns the current session identity
// GET /api/usuario
func User(c *fiber.Ctx) error {
	usuario, ok := c.Locals("usuario").(Models.Usuario)
	if !ok {
		return c.Redirect("/login", fiber.StatusFound)
	}
	return c.Status(fiber.StatusOK).JSON(Models.SesionUsuario{
		Correo: usuario.Correo,
		Nombre: usuario.Nombre,
		Rol:    usuario.Rol,
	})
}

// FetchUsers lists every registered user
// GET /api/usuarios
func FetchUsers(c *fiber.Ctx) error {
	usuarios := []Models.Usuario{}
	if err := Models.DB.Order("correo ASC").Find(&usuarios).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(usuarios)
}
