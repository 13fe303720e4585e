package Models

// OrdenServicio is one vehicle's intake record through the shop.
// Salida stays NULL while the vehicle is still in the shop, so it must be a
// pointer: an empty string would break the "still in shop" queries.
type OrdenServicio struct {
	ID            uint    `json:"id" gorm:"primaryKey"`
	Marca         string  `json:"marca"`
	Modelo        string  `json:"modelo"`
	Ano           string  `json:"ano"`
	Kilometraje   string  `json:"kilometraje"`
	Placas        string  `json:"placas"`
	IngresoGrua   string  `json:"ingreso_grua" gorm:"default:No"`
	Vin           string  `json:"vin"`
	Ingreso       string  `json:"ingreso"`
	Salida        *string `json:"salida"`
	Nombre        string  `json:"nombre"`
	Telefono      string  `json:"telefono"`
	Servicios     string  `json:"servicios"`
	Danos         string  `json:"danos"`
	Observaciones string  `json:"observaciones"`
	Realizados    string  `json:"realizados"`
	Presupuesto   string  `json:"presupuesto"`
}

func (OrdenServicio) TableName() string {
	return "orden_servicio"
}

// OrdenRequest is the inbound field set for creating or replacing an order.
// Servicios arrives as a multi-select; the handler flattens it before writing.
type OrdenRequest struct {
	Marca         string   `form:"marca" validate:"required"`
	Modelo        string   `form:"modelo" validate:"required"`
	Ano           string   `form:"ano"`
	Kilometraje   string   `form:"kilometraje" validate:"required"`
	Placas        string   `form:"placas" validate:"required"`
	IngresoGrua   string   `form:"ingreso_grua"`
	Vin           string   `form:"vin"`
	Ingreso       string   `form:"ingreso" validate:"required"`
	Salida        string   `form:"salida"`
	Nombre        string   `form:"nombre" validate:"required"`
	Telefono      string   `form:"telefono" validate:"required"`
	Servicios     []string `form:"servicios"`
	Danos         string   `form:"danos"`
	Observaciones string   `form:"observaciones"`
	Realizados    string   `form:"realizados"`
	Presupuesto   string   `form:"presupuesto"`
}

// OrdenEditRequest replaces the full row. Ano, Vin, IngresoGrua, Kilometraje,
// Ingreso and Salida are the optional fields; a blank Ingreso keeps the stored
// value (an order never loses its intake date) and a blank Salida nulls the
// column out.
type OrdenEditRequest struct {
	Marca         string   `form:"marca" validate:"required"`
	Modelo        string   `form:"modelo" validate:"required"`
	Ano           string   `form:"ano"`
	Kilometraje   string   `form:"kilometraje"`
	Placas        string   `form:"placas" validate:"required"`
	IngresoGrua   string   `form:"ingreso_grua"`
	Vin           string   `form:"vin"`
	Ingreso       string   `form:"ingreso"`
	Salida        string   `form:"salida"`
	Nombre        string   `form:"nombre" validate:"required"`
	Telefono      string   `form:"telefono" validate:"required"`
	Servicios     []string `form:"servicios"`
	Danos         string   `form:"danos"`
	Observaciones string   `form:"observaciones"`
	Realizados    string   `form:"realizados"`
	Presupuesto   string   `form:"presupuesto"`
}
