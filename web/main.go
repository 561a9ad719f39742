package main

import (
	"flag"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/df07/go-pathtracer/web/server"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 8080, "Port to serve on")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "web",
	})

	// Create and start web server
	webServer := server.NewServer(*port, logger)
	if err := webServer.Start(); err != nil {
		logger.Fatal("Error starting server", "err", err)
	}
}
