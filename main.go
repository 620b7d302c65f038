package main

import (
	"fmt"
	"os"
	"strings"

	"bankstmt/cmd/category"
	"bankstmt/cmd/load"
	"bankstmt/cmd/root"
	"bankstmt/cmd/summarize"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// Load environment variables silently before any logging happens.
	loadEnvSilently()

	// Set the global log level so every logger created later inherits it.
	// The configured level from the config file is applied again in the
	// root command's PersistentPreRun.
	configureLogLevelDirectly()

	root.Init()

	root.Cmd.AddCommand(load.Cmd)
	root.Cmd.AddCommand(summarize.Cmd)
	root.Cmd.AddCommand(category.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		return
	}
	_ = godotenv.Load(envFile)
}

// configureLogLevelDirectly sets the global log level for all logrus instances
func configureLogLevelDirectly() {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}

	logrus.SetLevel(logLevel)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
