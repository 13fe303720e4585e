package Vin

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const DefaultBaseURL = "https://vpic.nhtsa.dot.gov/api"

// ErrNotFound means the registry answered but had no data for the VIN.
var ErrNotFound = errors.New("no se encontró información para este VIN")

// UpstreamError wraps a transport or parse failure talking to the registry.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("error al consultar el registro vehicular: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Resultado is the normalized decode payload handed to the order form.
type Resultado struct {
	Marca       string `json:"marca"`
	Modelo      string `json:"modelo"`
	Ano         string `json:"ano"`
	Carroceria  string `json:"carroceria"`
	Puertas     string `json:"puertas"`
	Motor       string `json:"motor"`
	Cilindrada  string `json:"cilindrada"`
	Cilindros   string `json:"cilindros"`
	Combustible string `json:"combustible"`
	Transmision string `json:"transmision"`
	Ensamblaje  string `json:"ensamblaje"`
}

type vpicEntry struct {
	Make              string `json:"Make"`
	Model             string `json:"Model"`
	ModelYear         string `json:"ModelYear"`
	BodyClass         string `json:"BodyClass"`
	Doors             string `json:"Doors"`
	EngineModel       string `json:"EngineModel"`
	DisplacementL     string `json:"DisplacementL"`
	EngineCylinders   string `json:"EngineCylinders"`
	FuelTypePrimary   string `json:"FuelTypePrimary"`
	TransmissionStyle string `json:"TransmissionStyle"`
	PlantCity         string `json:"PlantCity"`
	PlantCountry      string `json:"PlantCountry"`
}

type vpicResponse struct {
	Results []vpicEntry `json:"Results"`
}

// Decoder queries the NHTSA vPIC registry. BaseURL is overridable for tests.
type Decoder struct {
	BaseURL string
	Client  *http.Client
}

func NewDecoder(baseURL string) *Decoder {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Decoder{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// Decode looks up a VIN and reshapes the first Results entry. An empty
// Results array, or an entry without make and model, maps to ErrNotFound;
// any transport or parse problem maps to an UpstreamError.
func (d *Decoder) Decode(vin string) (*Resultado, error) {
	url := fmt.Sprintf("%s/vehicles/decodevinvaluesextended/%s?format=json", d.BaseURL, vin)
	resp, err := d.Client.Get(url)
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	var parsed vpicResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, &UpstreamError{Err: err}
	}

	if len(parsed.Results) == 0 {
		return nil, ErrNotFound
	}
	entry := parsed.Results[0]
	if entry.Make == "" && entry.Model == "" {
		// vPIC answers invalid VINs with a single all-empty entry.
		return nil, ErrNotFound
	}

	return &Resultado{
		Marca:       entry.Make,
		Modelo:      entry.Model,
		Ano:         entry.ModelYear,
		Carroceria:  entry.BodyClass,
		Puertas:     entry.Doors,
		Motor:       entry.EngineModel,
		Cilindrada:  entry.DisplacementL,
		Cilindros:   entry.EngineCylinders,
		Combustible: entry.FuelTypePrimary,
		Transmision: entry.TransmissionStyle,
		Ensamblaje:  joinEnsamblaje(entry.PlantCity, entry.PlantCountry),
	}, nil
}

// joinEnsamblaje builds the "city, country" composite, skipping empty parts
// so a half-known plant never renders as ", ".
func joinEnsamblaje(city, country string) string {
	parts := make([]string, 0, 2)
	if city != "" {
		parts = append(parts, city)
	}
	if country != "" {
		parts = append(parts, country)
	}
	return strings.Join(parts, ", ")
}
