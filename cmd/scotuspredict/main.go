// Command scotuspredict runs predictions and inspects the model from the terminal
package main

import (
	"os"

	"scotuspredict/internal/platform/config"
	"scotuspredict/internal/platform/logger"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		logger.Get().Fatal().Err(err).Msg("load .env")
	}
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
