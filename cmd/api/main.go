package main

import (
	_ "arthub_checkout/docs"
	"arthub_checkout/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Art Hub Checkout API
// @version         1.0
// @description     Checkout sessions (card and Pix) and the checkout log sink.

// @contact.name   Studio Art Hub

// @host localhost:8080

// @BasePath  /

func main() {
	routes.Run()
}
