package Controllers_test

import (
	"encoding/json"
	"net/url"
	"testing"

	"Taller/Models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checklistForm(mecanico string) url.Values {
	return url.Values{
		"mecanico":                  {mecanico},
		"motor":                     {"Ok", "Fuga"},
		"frenos":                    {"Balatas gastadas"},
		"transmision":               {"Ok"},
		"llantas":                   {"Ok"},
		"luces":                     {"Foco fundido"},
		"electrico":                 {"Ok"},
		"tablero":                   {"Testigo de motor"},
		"seguridad":                 {"Ok"},
		"observaciones_motor":       {"Fuga leve de aceite"},
		"observaciones_frenos":      {""},
		"observaciones_transmision": {""},
		"observaciones_llantas":     {""},
		"observaciones_luces":       {"Faro derecho"},
		"observaciones_electrico":   {""},
		"observaciones_seguridad":   {""},
	}
}

func TestCreateChecklistFlattens(t *testing.T) {
	app := setupApp(t)
	seedUsuario(t, "mecanico@taller.mx", Models.RolMecanico)
	seedUsuario(t, "admin@taller.mx", Models.RolAdministrador)
	admin := sessionCookie(t, "admin@taller.mx")
	mecanico := sessionCookie(t, "mecanico@taller.mx")

	doForm(t, app, fiber.MethodPost, "/orden", ordenForm(), admin)

	resp := doForm(t, app, fiber.MethodPost, "/checklist/1", checklistForm("Pedro"), mecanico)
	require.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/orden/1", resp.Header.Get("Location"))

	var checklist Models.Checklist
	require.NoError(t, Models.DB.First(&checklist).Error)
	assert.Equal(t, uint(1), checklist.OrdenID)
	assert.Equal(t, "Ok, Fuga", checklist.Motor)
	assert.Equal(t, "Testigo de motor", checklist.Tablero)
	assert.Equal(t, "Fuga leve de aceite", checklist.ObservacionesMotor)
}

func TestDetailSurfacesEarliestChecklist(t *testing.T) {
	app := setupApp(t)
	seedUsuario(t, "admin@taller.mx", Models.RolAdministrador)
	cookie := sessionCookie(t, "admin@taller.mx")

	doForm(t, app, fiber.MethodPost, "/orden", ordenForm(), cookie)
	doForm(t, app, fiber.MethodPost, "/checklist/1", checklistForm("Pedro"), cookie)
	doForm(t, app, fiber.MethodPost, "/checklist/1", checklistForm("Luis"), cookie)

	resp := doGet(t, app, "/orden/1", cookie)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var detalle struct {
		Checklist *Models.Checklist `json:"checklist"`
	}
	require.NoError(t, json.Unmarshal(readBody(t, resp), &detalle))
	require.NotNil(t, detalle.Checklist)
	assert.Equal(t, "Pedro", detalle.Checklist.Mecanico, "the earliest inspection is canonical")

	var count int64
	Models.DB.Model(&Models.Checklist{}).Count(&count)
	assert.EqualValues(t, 2, count, "an order may hold several checklists")
}

func TestCreateChecklistOrderNotFound(t *testing.T) {
	app := setupApp(t)
	seedUsuario(t, "mecanico@taller.mx", Models.RolMecanico)
	cookie := sessionCookie(t, "mecanico@taller.mx")

	resp := doForm(t, app, fiber.MethodPost, "/checklist/99", checklistForm("Pedro"), cookie)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCreateChecklistRequiresMecanicoRole(t *testing.T) {
	app := setupApp(t)
	seedUsuario(t, "admin@taller.mx", Models.RolAdministrador)
	seedUsuario(t, "hojalatero@taller.mx", Models.RolHojalatero)
	admin := sessionCookie(t, "admin@taller.mx")
	hojalatero := sessionCookie(t, "hojalatero@taller.mx")

	doForm(t, app, fiber.MethodPost, "/orden", ordenForm(), admin)

	resp := doForm(t, app, fiber.MethodPost, "/checklist/1", checklistForm("Pedro"), hojalatero)
	require.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	var count int64
	Models.DB.Model(&Models.Checklist{}).Count(&count)
	assert.Zero(t, count)
}
