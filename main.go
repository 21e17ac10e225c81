package main

import (
	"os"

	"github.com/hartlabs/hourtrack/cmd"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func init() {
	// A .env file is optional; environment wins either way.
	_ = godotenv.Load()

	level := os.Getenv("LOG_LEVEL")
	if level != "" {
		logrusLevel, err := log.ParseLevel(level)
		if err != nil {
			log.Fatal(err)
		}
		log.SetLevel(logrusLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

func main() {
	cmd.Execute()
}
