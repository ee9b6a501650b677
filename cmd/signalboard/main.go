package main

import (
	"log"
	"os"

	"SignalBoard/internal/cli"
	"SignalBoard/internal/config"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("[WARN] %v", err)
	}

	if err := cli.NewRootCmd().Execute(); err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
}
