package entity

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Parse errors for notification settings.
var (
	// ErrMissingTimezone is returned when the settings carry no timezone.
	ErrMissingTimezone = errors.New("timezone is not set")
	// ErrInvalidTimezone is returned when the timezone is not a known IANA zone.
	ErrInvalidTimezone = errors.New("timezone is not a valid IANA zone")
	// ErrInvalidNotificationTime is returned when the "HH:MM" string cannot be parsed.
	ErrInvalidNotificationTime = errors.New("notification time must be HH:MM")
)

// NotificationSettings holds a user's daily notification preferences.
type NotificationSettings struct {
	UserID            string     // Owner of the settings record.
	Enabled           bool       // Whether the user opted in to the daily push.
	NotificationTime  string     // Preferred delivery time as "HH:MM" in the user's zone.
	Timezone          string     // IANA zone identifier, e.g. "America/Bogota".
	PreferredLanguage string     // Optional language code for the push content.
	LastSentAt        *time.Time // Absolute instant of the last successful push (dedup marker).
	UpdatedAt         *time.Time // Last-modified marker written by the client.
}

// PreferredTime parses NotificationTime into hour and minute.
func (s *NotificationSettings) PreferredTime() (hour, minute int, err error) {
	return ParseNotificationTime(s.NotificationTime)
}

// Location resolves the user's timezone. An empty zone and the process-local
// pseudo zone are both rejected.
func (s *NotificationSettings) Location() (*time.Location, error) {
	tz := strings.TrimSpace(s.Timezone)
	if tz == "" {
		return nil, ErrMissingTimezone
	}
	if tz == "Local" {
		return nil, errors.Wrapf(ErrInvalidTimezone, "%q", tz)
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidTimezone, "%q: %v", tz, err)
	}

	return loc, nil
}

// LastSentLocalDate reinterprets the stored dedup instant in loc and returns its
// calendar date. ok is false when nothing has been sent yet.
func (s *NotificationSettings) LastSentLocalDate(loc *time.Location) (date LocalDate, ok bool) {
	if s.LastSentAt == nil || s.LastSentAt.IsZero() {
		return LocalDate{}, false
	}

	return DateOf(s.LastSentAt.In(loc)), true
}

// IsStale reports whether the settings were last modified before now-window.
// Settings without a modification marker are treated as stale.
func (s *NotificationSettings) IsStale(now time.Time, window time.Duration) bool {
	if s.UpdatedAt == nil || s.UpdatedAt.IsZero() {
		return true
	}

	return s.UpdatedAt.Before(now.Add(-window))
}

// ParseNotificationTime parses "HH:MM" (hour may be a single digit).
func ParseNotificationTime(value string) (hour, minute int, err error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 2 {
		return 0, 0, errors.Wrapf(ErrInvalidNotificationTime, "%q", value)
	}

	hour, ok := parseBoundedDigits(parts[0], 23)
	if !ok {
		return 0, 0, errors.Wrapf(ErrInvalidNotificationTime, "hour out of range in %q", value)
	}

	minute, ok = parseBoundedDigits(parts[1], 59)
	if !ok || len(parts[1]) != 2 {
		return 0, 0, errors.Wrapf(ErrInvalidNotificationTime, "minute out of range in %q", value)
	}

	return hour, minute, nil
}

func parseBoundedDigits(s string, maxValue int) (int, bool) {
	if s == "" || len(s) > 2 {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}

	n, err := strconv.Atoi(s)
	if err != nil || n > maxValue {
		return 0, false
	}

	return n, true
}
