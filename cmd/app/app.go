package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"exusiai.dev/trialstats/cmd/app/server"
	"exusiai.dev/trialstats/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        "trialstats",
		Description: "Trial statistics and rankings backend. Built with Go, fiber, bun and go.uber.org/fx. Publishes trial events to NATS JetStream and shares rate limits through Redis.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			server.Command(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
