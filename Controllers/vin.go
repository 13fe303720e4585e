package Controllers

import (
	"encoding/json"
	"errors"
	"log"
	"strings"

	"Taller/Models"
	"Taller/Vin"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Decoder is the configured VIN registry client. Set in main; tests point it
// at a stub server. Left unauthenticated: the order form queries it before a
// session necessarily exists.
var Decoder *Vin.Decoder

// GetVin decodes a VIN, serving repeated lookups from the vin_cache table
// GET /api/vin/:vin
func GetVin(c *fiber.Ctx) error {
	vin := strings.ToUpper(strings.TrimSpace(c.Params("vin")))
	if vin == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Debes indicar un VIN"})
	}

	var cached Models.VinCache
	err := Models.DB.Where("vin = ?", vin).First(&cached).Error
	if err == nil {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Status(fiber.StatusOK).Send(cached.Payload)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	resultado, err := Decoder.Decode(vin)
	if err != nil {
		if errors.Is(err, Vin.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "No se encontró información para este VIN",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	payload, err := json.Marshal(resultado)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	// A cache miss on write is not worth failing the lookup over.
	cache := Models.VinCache{Vin: vin, Payload: datatypes.JSON(payload)}
	if err := Models.DB.Create(&cache).Error; err != nil {
		log.Println("vin cache write failed:", err)
	}

	return c.Status(fiber.StatusOK).JSON(resultado)
}
