package Models

// CategoriaServicio groups the services the shop offers. Read-only for the
// API; the order form renders its services as the multi-select choices.
type CategoriaServicio struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	Nombre    string     `json:"nombre" gorm:"uniqueIndex;not null"`
	Servicios []Servicio `json:"servicios" gorm:"foreignKey:CategoriaID"`
}

func (CategoriaServicio) TableName() string {
	return "categorias_servicio"
}

type Servicio struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	CategoriaID uint   `json:"categoria_id" gorm:"index;not null"`
	Nombre      string `json:"nombre" gorm:"not null"`
}

func (Servicio) TableName() string {
	return "servicios"
}
