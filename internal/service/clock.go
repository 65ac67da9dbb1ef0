package service

import (
	"time"

	"exusiai.dev/trialstats/internal/app/appconfig"
)

// Clock returns the current time in the report timezone.
type Clock func() time.Time

func NewClock(conf *appconfig.Config) Clock {
	return func() time.Time {
		return time.Now().In(conf.Location)
	}
}
