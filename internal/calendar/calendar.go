// Package calendar turns medication records into calendar entries shaped
// like the ones the prescription server pushes to a user's calendar.
package calendar

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/GrigorasVictor/HealthCare-AI/internal/model"
)

const (
	dateTimeLayout = "2006-01-02T15:04:05"
	eventDuration  = time.Hour
)

type EventTime struct {
	DateTime string `json:"dateTime"`
	TimeZone string `json:"timeZone"`
}

type Event struct {
	Summary     string    `json:"summary"`
	Description string    `json:"description"`
	Start       EventTime `json:"start"`
	End         EventTime `json:"end"`
}

// FromMedications builds one hour-long event per record, starting at the
// record's date and time in loc. The summary drops any "#n" suffix.
func FromMedications(records []model.MedicationRecord, loc *time.Location) ([]Event, error) {
	if loc == nil {
		loc = time.Local
	}
	zone := ZoneName(loc)
	events := make([]Event, 0, len(records))
	for i, r := range records {
		if r.Date.IsZero() {
			return nil, fmt.Errorf("medicine %d (%s): missing date", i, r.Name)
		}
		hour, minute, err := parseClock(r.Time)
		if err != nil {
			return nil, fmt.Errorf("medicine %d (%s): %w", i, r.Name, err)
		}
		start := r.Date.At(hour, minute, loc)
		end := start.Add(eventDuration)
		events = append(events, Event{
			Summary:     strings.TrimSpace(strings.SplitN(r.Name, "#", 2)[0]),
			Description: r.Name,
			Start:       EventTime{DateTime: start.Format(dateTimeLayout), TimeZone: zone},
			End:         EventTime{DateTime: end.In(loc).Format(dateTimeLayout), TimeZone: zone},
		})
	}
	return events, nil
}

// DecodeMedicines converts a loosely typed JSON value (as found inside a
// decoded calendar payload) into medication records.
func DecodeMedicines(v any) ([]model.MedicationRecord, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode medicines: %w", err)
	}
	var records []model.MedicationRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode medicines: %w", err)
	}
	return records, nil
}

// ZoneName returns the IANA name of loc. For time.Local, whose String is
// "Local", it reads $TZ and then the /etc/localtime link.
func ZoneName(loc *time.Location) string {
	if loc != time.Local {
		return loc.String()
	}
	if tz := strings.TrimPrefix(os.Getenv("TZ"), ":"); tz != "" {
		if _, err := time.LoadLocation(tz); err == nil {
			return tz
		}
	}
	if target, err := os.Readlink("/etc/localtime"); err == nil {
		if _, name, ok := strings.Cut(filepath.ToSlash(target), "zoneinfo/"); ok && name != "" {
			return name
		}
	}
	if name, offset := time.Now().In(loc).Zone(); offset == 0 && name == "UTC" {
		return "UTC"
	}
	return loc.String()
}

func parseClock(s string) (int, int, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time %q, want HH:MM", s)
	}
	return t.Hour(), t.Minute(), nil
}
