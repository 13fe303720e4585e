package main

import (
	"Taller/Controllers"
	"Taller/FiberConfig"
	"Taller/Identity"
	"Taller/Models"
	"Taller/Vin"
	"Taller/middleware"
	"log"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("no .env file, using process environment")
	}

	middleware.LoadSecret()
	Models.Connect()

	// Identity provider: the hosted service when configured, the local
	// bcrypt table otherwise (development).
	identityURL := os.Getenv("IDENTITY_URL")
	if identityURL != "" {
		Controllers.Provider = Identity.NewHTTPProvider(identityURL, os.Getenv("IDENTITY_KEY"))
	} else {
		log.Println("IDENTITY_URL not set, using local credentials table")
		Controllers.Provider = Identity.NewLocalProvider(Models.DB)
	}

	Controllers.Decoder = Vin.NewDecoder(os.Getenv("VIN_API_URL"))

	FiberConfig.FiberConfig()
}
