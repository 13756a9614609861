package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/meghashyamc/finder/api"
	"github.com/meghashyamc/finder/config"
	"github.com/meghashyamc/finder/logger"
)

func main() {
	dotenvErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %s\n", err)
		os.Exit(1)
	}

	reportDotenv(logger.New(cfg.GetLogLevel()), dotenvErr)

	if err := api.Run(context.Background(), cfg); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

func reportDotenv(log logger.Logger, err error) {
	if err != nil {
		log.Debug("no .env file loaded", "err", err.Error())
	}
}
