package main

import (
	"log"

	approuters "github.com/jmario91/GeneracionWidget-Back/internal/app_routers"
	"github.com/jmario91/GeneracionWidget-Back/internal/configuration"
)

func main() {
	container, err := configuration.BuildContainer()
	if err != nil {
		log.Fatalf("Failed to build container: %v", err)
	}

	// Ensure cleanup on shutdown
	defer container.Close()

	approuters.StartServer(container)
}
