package main

import (
	_ "taskboard/docs"
	"taskboard/internal/config"
	"taskboard/internal/logging"
	"taskboard/internal/server"
)

// @title           Task Board API
// @version         1.0
// @description     API for a single-user Kanban task board with drag-and-drop reordering.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @schemes http
func main() {
	cfg := config.Load()
	logging.Init(logging.Options{
		Level:   cfg.LogLevel,
		File:    cfg.LogFile,
		Service: "taskboard",
	})

	s, err := server.Init(cfg)
	if err != nil {
		logging.Logger.Fatalf("❌ Server initialization failed: %v", err)
	}

	s.Run()
}
