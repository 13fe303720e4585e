package Controllers

import (
	"Taller/Models"

	"github.com/gofiber/fiber/v2"
)

// GetCatalogo returns the service catalog that feeds the order form
// GET /api/catalogo
func GetCatalogo(c *fiber.Ctx) error {
	categorias := []Models.CategoriaServicio{}
	if err := Models.DB.Preload("Servicios").Order("id ASC").Find(&categorias).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(categorias)
}
