package main

import (
	"fmt"
	"os"

	"github.com/Skale-Club/xtimator/internal/cli"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
