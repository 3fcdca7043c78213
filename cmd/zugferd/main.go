package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/rezonia/zugferd/cmd/zugferd/cmd"
	"github.com/rezonia/zugferd/internal/logger"
)

func main() {
	// .env is optional; real environment variables win
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env: %v\n", err)
	}

	err := cmd.Execute()
	if cerr := logger.Close(); cerr != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to close log file: %v\n", cerr)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
