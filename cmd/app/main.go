package main

import (
	"ProjectBlog/pkg/log"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	logger := log.NewLogger()
	if err := godotenv.Load(); err != nil {
		logger.Debugf("No .env file loaded: %v", err)
	}

	if err := NewRootCmd().Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
