package main

import (
	"fmt"

	"qubic/config"
	"qubic/engine"
)

func main() {
	cfg, err := config.Load("qubic.toml")
	if err != nil {
		fmt.Printf("Warning: %v (using defaults)\n", err)
	}
	engine.Play(cfg)
}
