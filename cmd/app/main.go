package main

import (
	"os"

	"deliveryapp/cmd"

	"github.com/labstack/gommon/log"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "delivery",
		Usage: "walk through customers, delivery variants and an order collection",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "env-file",
				Value: ".env",
				Usage: "dotenv file providing LOG_LEVEL and LOG_PREFIX",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	config, err := cmd.LoadConfig(c.String("env-file"))
	if err != nil {
		return err
	}

	app := cmd.NewCompositionRoot(config, os.Stdout)
	return app.CreateShowcase().Run()
}
