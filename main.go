package main

import (
	"os"

	"github.com/abhisek/thermoviz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
