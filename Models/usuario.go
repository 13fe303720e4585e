package Models

// Roles recognized by the authorization middleware.
const (
	RolAdministrador = "administrador"
	RolDueno         = "dueno"
	RolMecanico      = "mecanico"
	RolHojalatero    = "hojalatero"
)

// Usuario is a system user. Correo acts as identity; Rol drives every
// authorization decision. Credentials live with the identity provider,
// never on this row.
type Usuario struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	Correo string `json:"correo" gorm:"uniqueIndex;not null"`
	Nombre string `json:"nombre"`
	Rol    string `json:"rol" gorm:"type:varchar(20);not null"`
}

func (Usuario) TableName() string {
	return "usuarios"
}

// SesionUsuario is the session identity established at login.
type SesionUsuario struct {
	Correo string `json:"correo"`
	Nombre string `json:"nombre"`
	Rol    string `json:"rol"`
}
