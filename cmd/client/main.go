package main

import (
	"context"

	"github.com/alinaagnistova/TestTask/internal/client/cli"
	"github.com/alinaagnistova/TestTask/internal/client/config"
)

func main() {
	cfg := config.LoadConfig()
	app := cli.NewApp(cfg)
	app.Run(context.Background())
}
