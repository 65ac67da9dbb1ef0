package service

import (
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module("service",
		bindStores(),
		fx.Provide(
			NewClock,
			NewHealth,
			NewTrial,
			NewLeaderboard,
			NewTrialEvents,
			NewPersonalReport,
		),
	)
}
