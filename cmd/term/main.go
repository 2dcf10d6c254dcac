package main

import (
	"log"
	"os"

	"github.com/Garsondee/Absorb/internal/config"
	"github.com/Garsondee/Absorb/internal/term"
)

func main() {
	cfg, err := config.Load("term", ".env", os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if err := term.Run(cfg); err != nil {
		log.Fatal(err)
	}
}
