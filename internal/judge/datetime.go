package judge

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// DefaultTimezone matches the synthetic patient's home area
// (Hermitage, TN).
const DefaultTimezone = "America/Chicago"

// PatientTimezone returns the IANA timezone for the synthetic patient,
// from PATIENT_TIMEZONE or the default.
func PatientTimezone() string {
	if tz := os.Getenv("PATIENT_TIMEZONE"); tz != "" {
		return tz
	}
	return DefaultTimezone
}

// DatetimeContext renders "today" for prompt injection, e.g.
// "Today is Monday, February 17, 2026. Current time is 3:45 PM CST."
// Both the caller prompt and the judge's ground truth use it so
// relative dates like "this Thursday" resolve consistently.
func DatetimeContext(now time.Time, tzName string) string {
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		loc = time.UTC
	}
	local := now.In(loc)

	dateStr := local.Format("Monday, January 2, 2006")
	timeStr := local.Format("3:04 PM")
	zone, _ := local.Zone()
	if zone == "" {
		parts := strings.Split(tzName, "/")
		zone = strings.ReplaceAll(parts[len(parts)-1], "_", " ")
	}
	return fmt.Sprintf("Today is %s. Current time is %s %s.", dateStr, timeStr, zone)
}

// DatetimeContextNow is DatetimeContext for the current wall clock in
// the patient's timezone.
func DatetimeContextNow() string {
	return DatetimeContext(time.Now(), PatientTimezone())
}
