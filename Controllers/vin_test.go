package Controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"Taller/Controllers"
	"Taller/Models"
	"Taller/Vin"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const vpicBody = `{"Results":[{"Make":"TOYOTA","Model":"Corolla","ModelYear":"2020",
"BodyClass":"Sedan","Doors":"4","EngineModel":"2ZR-FE","DisplacementL":"1.8",
"EngineCylinders":"4","FuelTypePrimary":"Gasoline","TransmissionStyle":"CVT",
"PlantCity":"Blue Springs","PlantCountry":"United States (USA)"}]}`

func TestGetVinDecodesAndCaches(t *testing.T) {
	app := setupApp(t)

	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		fmt.Fprint(w, vpicBody)
	}))
	defer server.Close()
	Controllers.Decoder = Vin.NewDecoder(server.URL)

	resp := doGet(t, app, "/api/vin/1NXBR32E85Z505904", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var resultado Vin.Resultado
	require.NoError(t, json.Unmarshal(readBody(t, resp), &resultado))
	assert.Equal(t, "TOYOTA", resultado.Marca)
	assert.Equal(t, "Blue Springs, United States (USA)", resultado.Ensamblaje)

	// Second lookup is served from vin_cache without touching the registry.
	resp = doGet(t, app, "/api/vin/1NXBR32E85Z505904", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(readBody(t, resp), &resultado))
	assert.Equal(t, "TOYOTA", resultado.Marca)
	assert.Equal(t, 1, hits)

	var count int64
	Models.DB.Model(&Models.VinCache{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestGetVinNotFound(t *testing.T) {
	app := setupApp(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"Results":[]}`)
	}))
	defer server.Close()
	Controllers.Decoder = Vin.NewDecoder(server.URL)

	resp := doGet(t, app, "/api/vin/XXXXXXXXXXXXXXXXX", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// Failed lookups are never cached.
	var count int64
	Models.DB.Model(&Models.VinCache{}).Count(&count)
	assert.Zero(t, count)
}

func TestGetVinUpstreamFailure(t *testing.T) {
	app := setupApp(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()
	Controllers.Decoder = Vin.NewDecoder(server.URL)

	resp := doGet(t, app, "/api/vin/1NXBR32E85Z505904", nil)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
