package main

import (
	"fmt"
	"os"

	"meeting-planner/core/logger"
	"meeting-planner/core/server"
)

//go:generate swag init -g main.go -o docs

// @title Meeting Planner API
// @version 1.0
// @description Collects participant availability and recommends meeting times.

// @host localhost:7070
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token. Example: "Bearer {token}"

func main() {
	if err := server.Run(); err != nil {
		// the logger is still a no-op when config fails to load
		fmt.Fprintln(os.Stderr, "run server error:", err)
		logger.Error("run server error", err)
		os.Exit(1)
	}
}
