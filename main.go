package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/gatherly/gatherly-api/cmd/app"
)

// @contact.name   API Support
// @contact.url    https://github.com/gatherly/gatherly-api/issues
//
// @license.name  MIT
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
