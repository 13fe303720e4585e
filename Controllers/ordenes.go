package Controllers

import (
	"strconv"
	"strings"

	"Taller/Models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetOrdenes lists every order, newest first
// GET /ordenes
func GetOrdenes(c *fiber.Ctx) error {
	ordenes := []Models.OrdenServicio{}
	if err := Models.DB.Order("id DESC").Find(&ordenes).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(ordenes)
}

// CreateOrden records a vehicle entering the shop
// POST /orden
func CreateOrden(c *fiber.Ctx) error {
	var req Models.OrdenRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	// The intake date is the one hard requirement; nothing is written
	// without it.
	if req.Ingreso == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Debes ingresar la fecha de ingreso",
		})
	}

	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Datos incompletos",
			"campos": translateErrors(err),
		})
	}

	orden := Models.OrdenServicio{
		Marca:         req.Marca,
		Modelo:        req.Modelo,
		Ano:           req.Ano,
		Kilometraje:   req.Kilometraje,
		Placas:        req.Placas,
		IngresoGrua:   req.IngresoGrua,
		Vin:           req.Vin,
		Ingreso:       req.Ingreso,
		Salida:        nullableSalida(req.Salida),
		Nombre:        req.Nombre,
		Telefono:      req.Telefono,
		Servicios:     strings.Join(req.Servicios, ", "),
		Danos:         req.Danos,
		Observaciones: req.Observaciones,
		Realizados:    req.Realizados,
		Presupuesto:   req.Presupuesto,
	}
	if orden.IngresoGrua == "" {
		orden.IngresoGrua = "No"
	}

	if err := Models.DB.Create(&orden).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Redirect("/ordenes", fiber.StatusFound)
}

// GetOrden fetches one order with its checklist
// GET /orden/:id
func GetOrden(c *fiber.Ctx) error {
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

	// The earliest submitted inspection is the canonical one.
	var checklists []Models.Checklist
	if err := Models.DB.Where("orden_id = ?", orden.ID).Order("id ASC").Find(&checklists).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var checklist *Models.Checklist
	if len(checklists) > 0 {
		checklist = &checklists[0]
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"orden":     orden,
		"checklist": checklist,
	})
}

// EditOrden replaces the full row for an order
// POST /orden/:id/editar
func EditOrden(c *fiber.Ctx) error {
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

	var req Models.OrdenEditRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Datos incompletos",
			"campos": translateErrors(err),
		})
	}

	orden.Marca = req.Marca
	orden.Modelo = req.Modelo
	orden.Ano = req.Ano
	orden.Kilometraje = req.Kilometraje
	orden.Placas = req.Placas
	orden.IngresoGrua = req.IngresoGrua
	if orden.IngresoGrua == "" {
		orden.IngresoGrua = "No"
	}
	orden.Vin = req.Vin
	if req.Ingreso != "" {
		orden.Ingreso = req.Ingreso
	}
	orden.Salida = nullableSalida(req.Salida)
	orden.Nombre = req.Nombre
	orden.Telefono = req.Telefono
	orden.Servicios = strings.Join(req.Servicios, ", ")
	orden.Danos = req.Danos
	orden.Observaciones = req.Observaciones
	orden.Realizados = req.Realizados
	orden.Presupuesto = req.Presupuesto

	if err := Models.DB.Save(&orden).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Redirect("/ordenes", fiber.StatusFound)
}

// DeleteOrden removes an order by id; deleting an id that does not exist is
// not an error
// GET /borrar/:id
func DeleteOrden(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "El id debe ser numérico"})
	}

	if err := Models.DB.Where("id = ?", uint(id)).Delete(&Models.OrdenServicio{}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Redirect("/ordenes", fiber.StatusFound)
}

// nullableSalida keeps an empty departure date out of the store so "still in
// shop" stays queryable as salida IS NULL.
func nullableSalida(salida string) *string {
	if salida == "" {
		return nil
	}
	return &salida
}
