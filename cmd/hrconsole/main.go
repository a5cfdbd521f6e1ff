package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"hrconsole/internal/cli"
	"hrconsole/internal/config"
	"hrconsole/internal/logging"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewDefault(os.Stderr, slog.LevelWarn)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
