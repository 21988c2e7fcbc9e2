package main

import (
	"smartreview/cmd/handlers"
	"smartreview/internal/logger"
)

func main() {
	logger.Init()
	handlers.Execute()
}
