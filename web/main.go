package main

import (
	"flag"
	"log"
	"os"

	"github.com/df07/go-recursive-raytracer/web/server"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 8080, "Port to serve on")
	assets := flag.String("assets", "scenes", "Directory for texture files referenced by uploaded scenes")
	flag.Parse()

	webServer := server.NewServer(*port, *assets)

	log.Printf("Recursive Raytracer Web Server")
	log.Printf("POST a scene file to http://localhost:%d/api/render to render it", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
