package main

import (
	"team-scheduler/core/logger"
	"team-scheduler/core/server"
)

// @title Team Scheduler API
// @version 1.0
// @description API backend for coordinating recurring team meetings across time zones

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:7070
// @BasePath /api/v1

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
	}
}
