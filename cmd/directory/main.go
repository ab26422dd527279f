package main

import (
	"fmt"
	"os"

	"go-workforce/internal/cli"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		if !cli.IsReported(err) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
