package main

import (
	"os"

	"github.com/es-debug/nginx-json-stats/internal/application/analyzer"
)

func main() {
	if err := analyzer.Execute(); err != nil {
		os.Exit(1)
	}
}
