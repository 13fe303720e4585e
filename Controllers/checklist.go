package Controllers

import (
	"fmt"
	"strconv"
	"strings"

	"Taller/Models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateChecklist attaches an inspection checklist to an order. An order may
// accumulate several checklists; the detail view surfaces the earliest one.
// POST /checklist/:id
func CreateChecklist(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "El id debe ser numérico"})
	}

	var orden Models.OrdenServicio
	if err := Models.DB.First(&orden, uint(id)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Orden no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var req Models.ChecklistRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Datos incompletos",
			"campos": translateErrors(err),
		})
	}

	checklist := Models.Checklist{
		OrdenID:  orden.ID,
		Mecanico: req.Mecanico,

		Motor:       strings.Join(req.Motor, ", "),
		Frenos:      strings.Join(req.Frenos, ", "),
		Transmision: strings.Join(req.Transmision, ", "),
		Llantas:     strings.Join(req.Llantas, ", "),
		Luces:       strings.Join(req.Luces, ", "),
		Electrico:   strings.Join(req.Electrico, ", "),
		Tablero:     strings.Join(req.Tablero, ", "),
		Seguridad:   strings.Join(req.Seguridad, ", "),

		ObservacionesMotor:       req.ObservacionesMotor,
		ObservacionesFrenos:      req.ObservacionesFrenos,
		ObservacionesTransmision: req.ObservacionesTransmision,
		ObservacionesLlantas:     req.ObservacionesLlantas,
		ObservacionesLuces:       req.ObservacionesLuces,
		ObservacionesElectrico:   req.ObservacionesElectrico,
		ObservacionesSeguridad:   req.ObservacionesSeguridad,
	}

	if err := Models.DB.Create(&checklist).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Redirect(fmt.Sprintf("/orden/%d", orden.ID), fiber.StatusFound)
}
