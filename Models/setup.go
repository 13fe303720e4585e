package Models

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Connect opens the store connection and runs migrations. DB_DIALECT selects
// the driver: "postgres" (DATABASE_URL) against the remote store, anything
// else falls back to a local sqlite file for development.
func Connect() {
	var dialector gorm.Dialector
	switch os.Getenv("DB_DIALECT") {
	case "postgres":
		dsn := os.Getenv("DATABASE_URL")
		if dsn == "" {
			log.Fatal("DATABASE_URL is required when DB_DIALECT=postgres")
		}
		dialector = postgres.Open(dsn)
	default:
		path := os.Getenv("SQLITE_PATH")
		if path == "" {
			path = "database.db"
		}
		dialector = sqlite.Open(path)
	}

	connection, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to the store:", err)
	}
	DB = connection

	if err := Migrate(DB); err != nil {
		log.Fatal("migration failed:", err)
	}
	if err := SeedCatalogo(DB); err != nil {
		log.Println("catalog seed failed:", err)
	}
}

// Migrate runs AutoMigrate in dependency order: base tables first, then
// rows that reference them.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&Usuario{},
		&CredencialLocal{},
		&CategoriaServicio{},
		&VinCache{},
	); err != nil {
		return err
	}
	return db.AutoMigrate(
		&Servicio{},
		&OrdenServicio{},
		&Checklist{},
	)
}

// SeedCatalogo inserts the shop's fixed service catalog on first run. The
// catalog is read-only afterwards, so a non-empty table means nothing to do.
func SeedCatalogo(db *gorm.DB) error {
	var count int64
	if err := db.Model(&CategoriaServicio{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	catalogo := []CategoriaServicio{
		{Nombre: "Mantenimiento", Servicios: []Servicio{
			{Nombre: "Afinación"},
			{Nombre: "Cambio de aceite"},
			{Nombre: "Cambio de filtros"},
			{Nombre: "Rotación de llantas"},
		}},
		{Nombre: "Frenos", Servicios: []Servicio{
			{Nombre: "Cambio de balatas"},
			{Nombre: "Rectificado de discos"},
			{Nombre: "Purga de frenos"},
		}},
		{Nombre: "Suspensión y dirección", Servicios: []Servicio{
			{Nombre: "Cambio de amortiguadores"},
			{Nombre: "Alineación y balanceo"},
			{Nombre: "Cambio de rótulas"},
		}},
		{Nombre: "Eléctrico", Servicios: []Servicio{
			{Nombre: "Diagnóstico eléctrico"},
			{Nombre: "Cambio de batería"},
			{Nombre: "Reparación de alternador"},
		}},
		{Nombre: "Motor", Servicios: []Servicio{
			{Nombre: "Diagnóstico por escáner"},
			{Nombre: "Cambio de banda de distribución"},
			{Nombre: "Reparación de fugas"},
		}},
		{Nombre: "Hojalatería y pintura", Servicios: []Servicio{
			{Nombre: "Enderezado"},
			{Nombre: "Pintura general"},
			{Nombre: "Pulido y encerado"},
		}},
	}
	return db.Create(&catalogo).Error
}
