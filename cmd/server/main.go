package main

import (
	"github.com/teskilat/backend/internal/server"
	"github.com/teskilat/backend/internal/util"
	"github.com/teskilat/backend/pkg/logger"
	"github.com/teskilat/backend/pkg/logger/console"

	_ "github.com/lib/pq"
)

func main() {
	util.LoadEnv()

	debug := util.GetEnvBool("DEBUG", false)

	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug: debug,
	})
	logger.Init(consoleLogger)

	server.Init()
}
