package main

import (
	"log"

	"github.com/ymatsumoto/startpage/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ startpage failed to start: %v", err)
	}
}
