package Models

// Checklist is one inspection pass's findings tied to an order. Several rows
// may reference the same order; the detail view surfaces the earliest one.
// Each category column is a ", "-joined flattening of the multi-select form.
// Tablero has no observations column; the inspection sheet never had one.
type Checklist struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	OrdenID  uint   `json:"orden_id" gorm:"index;not null"`
	Mecanico string `json:"mecanico"`

	Motor       string `json:"motor"`
	Frenos      string `json:"frenos"`
	Transmision string `json:"transmision"`
	Llantas     string `json:"llantas"`
	Luces       string `json:"luces"`
	Electrico   string `json:"electrico"`
	Tablero     string `json:"tablero"`
	Seguridad   string `json:"seguridad"`

	ObservacionesMotor       string `json:"observaciones_motor"`
	ObservacionesFrenos      string `json:"observaciones_frenos"`
	ObservacionesTransmision string `json:"observaciones_transmision"`
	ObservacionesLlantas     string `json:"observaciones_llantas"`
	ObservacionesLuces       string `json:"observaciones_luces"`
	ObservacionesElectrico   string `json:"observaciones_electrico"`
	ObservacionesSeguridad   string `json:"observaciones_seguridad"`
}

func (Checklist) TableName() string {
	return "checklist"
}

// ChecklistRequest mirrors the inspection form. Category findings arrive as
// repeated form values.
type ChecklistRequest struct {
	Mecanico string `form:"mecanico" validate:"required"`

	Motor       []string `form:"motor"`
	Frenos      []string `form:"frenos"`
	Transmision []string `form:"transmision"`
	Llantas     []string `form:"llantas"`
	Luces       []string `form:"luces"`
	Electrico   []string `form:"electrico"`
	Tablero     []string `form:"tablero"`
	Seguridad   []string `form:"seguridad"`

	ObservacionesMotor       string `form:"observaciones_motor"`
	ObservacionesFrenos      string `form:"observaciones_frenos"`
	ObservacionesTransmision string `form:"observaciones_transmision"`
	ObservacionesLlantas     string `form:"observaciones_llantas"`
	ObservacionesLuces       string `form:"observaciones_luces"`
	ObservacionesElectrico   string `form:"observaciones_electrico"`
	ObservacionesSeguridad   string `form:"observaciones_seguridad"`
}
