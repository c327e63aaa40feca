package main

import (
	"os"

	"inspoboard/internal/config"
	"inspoboard/internal/logger"
	"inspoboard/internal/server"
)

// @title           Inspiration Board API
// @version         1.0
// @description     API for managing boards and the short message cards pinned to them.

// @host      localhost:8080
// @BasePath  /

// @schemes http
func main() {
	cfg := config.Load()
	log := logger.Setup(os.Stdout, cfg.LogLevel)

	s, err := server.Init(cfg)
	if err != nil {
		log.Error("server initialization failed", "error", err)
		os.Exit(1)
	}

	if err := s.Run(); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
