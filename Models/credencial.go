package Models

// CredencialLocal backs the local identity provider used in development and
// tests. Production deployments keep credentials with the external provider
// and this table stays empty.
type CredencialLocal struct {
	ID        uint   `gorm:"primaryKey"`
	Correo    string `gorm:"uniqueIndex;not null"`
	ClaveHash []byte `gorm:"not null"`
}

func (CredencialLocal) TableName() string {
	return "credenciales_locales"
}
