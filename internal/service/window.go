package service

import (
	"time"

	"github.com/pkg/errors"

	"exusiai.dev/trialstats/internal/constant"
	modelv1 "exusiai.dev/trialstats/internal/model/v1"
	"exusiai.dev/trialstats/internal/pkg/pgerr"
	"exusiai.dev/trialstats/internal/util/period"
)

// resolveWindow turns a period query into the range to load trials in and the
// window echoed back to clients.
func resolveWindow(q period.Query, now time.Time) (period.Range, modelv1.Window, error) {
	rng, err := q.Resolve(now)
	if err != nil {
		switch {
		case errors.Is(err, period.ErrInvalidDateFormat):
			return period.Range{}, modelv1.Window{}, pgerr.ErrInvalidDateFormat.Msg("invalid date format: %s", err.Error())
		case errors.Is(err, period.ErrInvertedRange):
			return period.Range{}, modelv1.Window{}, pgerr.ErrInvalidReq.Msg("invalid request: `from` must not be after `to`")
		default:
			return period.Range{}, modelv1.Window{}, err
		}
	}

	label := string(q.Normalized())
	if q.HasExplicitBounds() {
		label = constant.PeriodLabelCustom
	}

	return rng, modelv1.Window{Period: label, From: rng.From, To: rng.To}, nil
}
