package Controllers

import (
	"fmt"

	"Taller/Models"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

// GetOrdenesExport generates the orders report as a spreadsheet
// GET /api/ordenes/export
func GetOrdenesExport(c *fiber.Ctx) error {
	var ordenes []Models.OrdenServicio
	if err := Models.DB.Order("id DESC").Find(&ordenes).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Ordenes"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{
		"ID", "Marca", "Modelo", "Año", "Kilometraje", "Placas", "Grúa",
		"VIN", "Ingreso", "Salida", "Cliente", "Teléfono", "Servicios",
		"Daños", "Observaciones", "Realizados", "Presupuesto",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, orden := range ordenes {
		salida := ""
		if orden.Salida != nil {
			salida = *orden.Salida
		}
		values := []interface{}{
			orden.ID, orden.Marca, orden.Modelo, orden.Ano, orden.Kilometraje,
			orden.Placas, orden.IngresoGrua, orden.Vin, orden.Ingreso, salida,
			orden.Nombre, orden.Telefono, orden.Servicios, orden.Danos,
			orden.Observaciones, orden.Realizados, orden.Presupuesto,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", "ordenes.xlsx"))
	return c.SendStream(buf)
}
