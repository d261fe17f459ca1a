package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"wld/internal/di"
	"wld/internal/structures"
)

func main() {
	configPath := flag.String("c", "config.yaml", "path to the yaml config file")
	debugMode := flag.Bool("d", false, "debug mode: console logging and error detail in responses")
	flag.Parse()

	// Optional .env for local development; deployments set env directly.
	_ = godotenv.Load()

	_, err := di.InitApp(&structures.CliFlags{
		ConfigPath: *configPath,
		DebugMode:  *debugMode,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "wld: %s\n", err)
		os.Exit(1)
	}
}
