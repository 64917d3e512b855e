package entity

import (
	"time"

	"github.com/pkg/errors"
)

// SkipReason explains why a user did not receive a push in a dispatch run.
type SkipReason string

const (
	SkipNone             SkipReason = ""
	SkipNoSettings       SkipReason = "no_settings"
	SkipDisabled         SkipReason = "disabled"
	SkipMissingTimezone  SkipReason = "missing_timezone"
	SkipInvalidTimezone  SkipReason = "invalid_timezone"
	SkipInvalidTime      SkipReason = "invalid_time"
	SkipNotPreferredHour SkipReason = "not_preferred_hour"
	SkipAlreadySent      SkipReason = "already_sent"
	SkipNoTokens         SkipReason = "no_tokens"
	SkipStoreError       SkipReason = "store_error"
)

// DispatchDecision is the per-user, per-run eligibility verdict. It is derived
// from the current instant and the user's settings and never persisted.
type DispatchDecision struct {
	LocalTime     time.Time  // Now in the user's zone; zero when the zone is unusable.
	Today         LocalDate  // Calendar date of LocalTime.
	PreferredHour int        // Parsed from the settings' "HH:MM".
	LastSentDate  *LocalDate // Dedup marker reinterpreted in the current zone.
	Reason        SkipReason // SkipNone when the user should be sent to.
}

// ShouldSend reports whether the decision allows a push.
func (d DispatchDecision) ShouldSend() bool {
	return d.Reason == SkipNone
}

// Decide evaluates eligibility for one user at nowUTC. Minutes are deliberately
// not compared: the evaluator runs hourly, so the hour alone selects the run.
func Decide(nowUTC time.Time, settings *NotificationSettings) DispatchDecision {
	if settings == nil {
		return DispatchDecision{Reason: SkipNoSettings}
	}
	if !settings.Enabled {
		return DispatchDecision{Reason: SkipDisabled}
	}

	loc, err := settings.Location()
	if err != nil {
		if errors.Is(err, ErrMissingTimezone) {
			return DispatchDecision{Reason: SkipMissingTimezone}
		}

		return DispatchDecision{Reason: SkipInvalidTimezone}
	}

	hour, _, err := settings.PreferredTime()
	if err != nil {
		return DispatchDecision{Reason: SkipInvalidTime}
	}

	local := nowUTC.In(loc)
	decision := DispatchDecision{
		LocalTime:     local,
		Today:         DateOf(local),
		PreferredHour: hour,
	}

	if last, ok := settings.LastSentLocalDate(loc); ok {
		decision.LastSentDate = &last
	}

	switch {
	case local.Hour() != hour:
		decision.Reason = SkipNotPreferredHour
	case decision.LastSentDate != nil && *decision.LastSentDate == decision.Today:
		decision.Reason = SkipAlreadySent
	}

	return decision
}
