package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "tangtang",
		Usage: "Terminal client for the TangTang donation platform",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "env-prefix",
				Aliases: []string{"p"},
				Usage:   "Environment variable prefix",
				Value:   "TANGTANG",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Dump raw API responses",
			},
		},
		Commands: []*cli.Command{
			casesCommand,
			supportCommand,
			chatCommand,
			adminCommand,
			whoamiCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("application failed")
	}
}
