package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/rcliao/bio-browser/internal/cli"
)

func main() {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
