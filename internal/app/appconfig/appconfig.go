package appconfig

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"

	"exusiai.dev/trialstats/internal/app/appcontext"
)

const envPrefix = "trialstats"

func Parse(ctx appcontext.Ctx) (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Warn().Err(err).Msg("failed to load .env file")
	}

	var config ConfigSpec
	err = envconfig.Process(envPrefix, &config)
	if err != nil {
		_ = envconfig.Usage(envPrefix, &config)
		return nil, fmt.Errorf("failed to parse configuration: %w. More info on how to configure this backend is located at https://pkg.go.dev/exusiai.dev/trialstats/internal/app/appconfig#ConfigSpec", err)
	}

	loc, err := time.LoadLocation(config.ReportTimezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load report timezone %q: %w", config.ReportTimezone, err)
	}

	return &Config{
		ConfigSpec: config,
		AppContext: ctx,
		Location:   loc,
	}, nil
}
